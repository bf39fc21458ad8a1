package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/stretchr/testify/require"
)

type memCatalog struct {
	courses []domain.Course
}

var _ ports.Catalog = (*memCatalog)(nil)

func (c *memCatalog) FindCourse(_ context.Context, code domain.CourseCode) (domain.Course, error) {
	for _, course := range c.courses {
		if course.Code == code {
			return course, nil
		}
	}

	return domain.Course{}, domain.ErrCourseNotFound
}

func (c *memCatalog) FindSection(ctx context.Context, code domain.CourseCode, sectionID domain.SectionID) (domain.Course, domain.Section, error) {
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

func (c *memCatalog) Courses(_ context.Context) ([]domain.Course, error) {
	courses := make([]domain.Course, len(c.courses))
	copy(courses, c.courses)
	return courses, nil
}

type memLedgerRepo struct {
	ledger domain.Ledger
	saves  int
}

var _ ports.LedgerRepository = (*memLedgerRepo)(nil)

func (r *memLedgerRepo) Load(_ context.Context) (domain.Ledger, error) {
	sections := make([]domain.RegisteredSection, len(r.ledger.RegisteredSections))
	copy(sections, r.ledger.RegisteredSections)
	completed := make([]domain.CourseCode, len(r.ledger.CompletedCourses))
	copy(completed, r.ledger.CompletedCourses)

	return domain.Ledger{RegisteredSections: sections, CompletedCourses: completed}, nil
}

func (r *memLedgerRepo) Save(_ context.Context, ledger domain.Ledger) error {
	r.ledger = ledger
	r.saves++
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testMeeting(t *testing.T, days, interval string) domain.Meeting {
	t.Helper()

	meeting, err := domain.NewMeeting(days, interval)
	require.NoError(t, err)
	return meeting
}

func lecture(t *testing.T, id, days, interval string) domain.Section {
	t.Helper()

	return domain.Section{
		ID:         domain.SectionID(id),
		Kind:       domain.SectionKindLecture,
		Instructor: "Dr. Test",
		Room:       "RM-100",
		Meeting:    testMeeting(t, days, interval),
	}
}

func lab(t *testing.T, id, days, interval string) domain.Section {
	t.Helper()

	section := lecture(t, id, days, interval)
	section.Kind = domain.SectionKindLab
	return section
}

// demoCatalog mirrors the embedded dataset closely enough for the
// planner scenarios: two prerequisite-unlocking courses, a lab course,
// and a spread of credit values.
func demoCatalog(t *testing.T) *memCatalog {
	t.Helper()

	return &memCatalog{courses: []domain.Course{
		{
			Code: "SOEN2351", Title: "Software Engineering Fundamentals", Credits: 3, HasLab: true,
			Prerequisites: []domain.CourseCode{"MATH1101"},
			Sections: []domain.Section{
				lecture(t, "SOEN2351-01", "MW", "10:00-11:15"),
				lecture(t, "SOEN2351-02", "TR", "13:00-14:15"),
				lab(t, "SOEN2351-L1", "R", "14:30-16:30"),
			},
		},
		{
			Code: "COMP1201", Title: "Introduction to Programming", Credits: 3, HasLab: true,
			Sections: []domain.Section{
				lecture(t, "COMP1201-01", "MW", "08:30-09:45"),
				lab(t, "COMP1201-L1", "T", "14:00-16:00"),
			},
		},
		{
			Code: "COMP2202", Title: "Data Structures and Algorithms", Credits: 3, HasLab: false,
			Prerequisites: []domain.CourseCode{"COMP1201"},
			Sections: []domain.Section{
				lecture(t, "COMP2202-01", "MW", "14:00-15:15"),
			},
		},
		{
			Code: "MATH1102", Title: "Calculus II", Credits: 3, HasLab: false,
			Prerequisites: []domain.CourseCode{"MATH1101"},
			Sections: []domain.Section{
				lecture(t, "MATH1102-01", "MWF", "12:00-12:50"),
			},
		},
		{
			Code: "MATH2201", Title: "Linear Algebra", Credits: 3, HasLab: false,
			Prerequisites: []domain.CourseCode{"MATH1102"},
			Sections: []domain.Section{
				lecture(t, "MATH2201-01", "TR", "11:30-12:45"),
			},
		},
		{
			Code: "ENG1102", Title: "Academic Writing II", Credits: 3, HasLab: false,
			Prerequisites: []domain.CourseCode{"ENG1101"},
			Sections: []domain.Section{
				lecture(t, "ENG1102-01", "TR", "08:30-09:45"),
			},
		},
		{
			Code: "PHYS1101", Title: "General Physics I", Credits: 4, HasLab: true,
			Prerequisites: []domain.CourseCode{"MATH1101"},
			Sections: []domain.Section{
				lecture(t, "PHYS1101-01", "MWF", "13:00-13:50"),
				lab(t, "PHYS1101-L1", "W", "15:30-17:30"),
			},
		},
		{
			Code: "CHEM1101", Title: "General Chemistry I", Credits: 3, HasLab: false,
			Sections: []domain.Section{
				lecture(t, "CHEM1101-01", "TR", "16:00-17:15"),
			},
		},
	}}
}

func newTestServices(t *testing.T, catalog *memCatalog, repo *memLedgerRepo) (*RegistrationService, *PlannerService) {
	t.Helper()

	registration := NewRegistrationService(catalog, repo, fixedClock{now: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)})
	planner := NewPlannerService(catalog, repo, registration)
	return registration, planner
}

func seededRepo(completed ...domain.CourseCode) *memLedgerRepo {
	return &memLedgerRepo{ledger: domain.NewLedger(completed)}
}
