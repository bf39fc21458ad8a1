// Package jsoncatalog serves the course dataset from an embedded or
// on-disk JSON file. The dataset is parsed and validated eagerly at
// construction: malformed reference data is a defect, not a runtime
// user-facing error, so it aborts loading instead of being swallowed.
package jsoncatalog

import (
	"context"
	"encoding/json"
	_ "embed"
	"fmt"
	"os"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

//go:embed courses.json
var defaultDataset []byte

type Catalog struct {
	courses []domain.Course
	byCode  map[domain.CourseCode]int
}

var _ ports.Catalog = (*Catalog)(nil)

func New(data []byte, logger zerolog.Logger) (*Catalog, error) {
	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	courses := make([]domain.Course, 0, len(file.Courses))
	byCode := make(map[domain.CourseCode]int, len(file.Courses))
	sectionCount := 0

	for _, rawCourse := range file.Courses {
		course, err := toDomain(rawCourse)
		if err != nil {
			return nil, err
		}

		if _, exists := byCode[course.Code]; exists {
			return nil, fmt.Errorf("catalog: duplicate course code %s", course.Code)
		}

		byCode[course.Code] = len(courses)
		courses = append(courses, course)
		sectionCount += len(course.Sections)
	}

	logger.Debug().
		Int("courses", len(courses)).
		Int("sections", sectionCount).
		Msg("catalog loaded")

	return &Catalog{courses: courses, byCode: byCode}, nil
}

func NewFromFile(path string, logger zerolog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return New(data, logger)
}

// NewDefault loads the embedded dataset. It panics on error: the
// embedded data ships with the binary, so a failure here is a build
// defect.
func NewDefault(logger zerolog.Logger) *Catalog {
	catalog, err := New(defaultDataset, logger)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is corrupt: %v", err))
	}

	return catalog
}

func toDomain(raw courseSchema) (domain.Course, error) {
	sections := make([]domain.Section, 0, len(raw.Sections))
	seen := make(map[domain.SectionID]struct{}, len(raw.Sections))

	for _, rawSection := range raw.Sections {
		meeting, err := domain.NewMeeting(rawSection.Days, rawSection.Time)
		if err != nil {
			return domain.Course{}, fmt.Errorf("catalog: course %s section %s: %w", raw.Code, rawSection.SectionID, err)
		}

		id := domain.SectionID(rawSection.SectionID)
		if _, exists := seen[id]; exists {
			return domain.Course{}, fmt.Errorf("catalog: course %s: duplicate section id %s", raw.Code, id)
		}
		seen[id] = struct{}{}

		sections = append(sections, domain.Section{
			ID:         id,
			Kind:       domain.SectionKind(rawSection.Type),
			Instructor: rawSection.Instructor,
			Room:       rawSection.Room,
			Meeting:    meeting,
		})
	}

	prereqs := make([]domain.CourseCode, 0, len(raw.Prereq))
	for _, prereq := range raw.Prereq {
		prereqs = append(prereqs, domain.CourseCode(prereq))
	}

	return domain.Course{
		Code:          domain.CourseCode(raw.Code),
		Title:         raw.Title,
		Credits:       raw.Credits,
		HasLab:        raw.HasLab,
		Prerequisites: prereqs,
		Sections:      sections,
	}, nil
}

func (c *Catalog) FindCourse(ctx context.Context, code domain.CourseCode) (domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return domain.Course{}, err
	}

	index, ok := c.byCode[code]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound
	}

	return c.courses[index], nil
}

func (c *Catalog) FindSection(ctx context.Context, code domain.CourseCode, sectionID domain.SectionID) (domain.Course, domain.Section, error) {
	course, err := c.FindCourse(ctx, code)
	if err != nil {
		return domain.Course{}, domain.Section{}, err
	}

	for _, section := range course.Sections {
		if section.ID == sectionID {
			return course, section, nil
		}
	}

	return domain.Course{}, domain.Section{}, domain.ErrSectionNotFound
}

func (c *Catalog) Courses(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	courses := make([]domain.Course, len(c.courses))
	copy(courses, c.courses)

	return courses, nil
}
