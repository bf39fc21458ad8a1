package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/samber/lo"
)

// RegistrationService is the single entry point for ledger mutation. It
// validates one section enrollment at a time against the catalog and the
// current ledger; the ledger itself performs no validation.
type RegistrationService struct {
	catalog ports.Catalog
	ledger  ports.LedgerRepository
	clock   ports.Clock
}

func NewRegistrationService(catalog ports.Catalog, ledger ports.LedgerRepository, clock ports.Clock) *RegistrationService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &RegistrationService{
		catalog: catalog,
		ledger:  ledger,
		clock:   clock,
	}
}

// Register validates and commits a single section enrollment. Exactly
// one ledger mutation happens on success, none on any rejection path.
func (s *RegistrationService) Register(ctx context.Context, courseCode domain.CourseCode, sectionID domain.SectionID) (RegistrationResult, error) {
	course, section, err := s.catalog.FindSection(ctx, courseCode, sectionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCourseNotFound):
			return failure(OutcomeCourseNotFound, "Course not found"), nil
		case errors.Is(err, domain.ErrSectionNotFound):
			return failure(OutcomeSectionNotFound, "Section not found"), nil
		default:
			return RegistrationResult{}, fmt.Errorf("find section: %w", err)
		}
	}

	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return RegistrationResult{}, fmt.Errorf("load ledger: %w", err)
	}

	if rejection, rejected := evaluate(ledger, course, section); rejected {
		return rejection, nil
	}

	ledger.Add(domain.RegisteredSection{
		CourseCode:   course.Code,
		CourseTitle:  course.Title,
		SectionID:    section.ID,
		Kind:         section.Kind,
		Instructor:   section.Instructor,
		Room:         section.Room,
		Meeting:      section.Meeting,
		Credits:      course.Credits,
		RegisteredAt: s.clock.Now(),
	})

	if err := s.ledger.Save(ctx, ledger); err != nil {
		return RegistrationResult{}, fmt.Errorf("save ledger: %w", err)
	}

	return RegistrationResult{
		Success: true,
		Code:    OutcomeRegistered,
		Message: fmt.Sprintf("Successfully registered for %s - %s", course.Code, section.ID),
	}, nil
}

// evaluate runs the validation chain against a fixed ledger state. The
// check order is part of the contract: the first failing check decides
// the reported outcome.
func evaluate(ledger domain.Ledger, course domain.Course, section domain.Section) (RegistrationResult, bool) {
	if ledger.IsRegistered(section.ID) {
		return failure(OutcomeAlreadyRegistered, "You are already registered in this section"), true
	}

	if missing := ledger.MissingPrerequisites(course); len(missing) > 0 {
		codes := lo.Map(missing, func(code domain.CourseCode, _ int) string { return string(code) })
		return failure(
			OutcomeMissingPrerequisites,
			fmt.Sprintf("Missing prerequisites: %s. Please complete these courses first.", strings.Join(codes, ", ")),
		), true
	}

	if section.Kind == domain.SectionKindLecture && ledger.IsCourseRegistered(course.Code) {
		return failure(
			OutcomeDuplicateCourse,
			fmt.Sprintf("You are already registered in another section of %s", course.Code),
		), true
	}

	if section.Kind == domain.SectionKindLab && !ledger.HasLectureFor(course.Code) {
		return failure(OutcomeLabRequiresLecture, "You must register for a lecture section before registering for a lab"), true
	}

	if ledger.HasConflict(section.Meeting) {
		return failure(OutcomeScheduleConflict, "This section conflicts with your current schedule"), true
	}

	// A lab for an already-counted course adds no credits.
	current := ledger.TotalCredits()
	projected := current
	if !ledger.IsCourseRegistered(course.Code) {
		projected += course.Credits
	}
	if projected > domain.MaxCredits {
		return failure(
			OutcomeCreditLimitExceeded,
			fmt.Sprintf("Registering for this course would exceed the %d credit limit (current: %d, new: %d)", domain.MaxCredits, current, projected),
		), true
	}

	return RegistrationResult{}, false
}

// Drop removes a registered section. Unknown section ids are reported as
// a failure outcome rather than silently ignored.
func (s *RegistrationService) Drop(ctx context.Context, sectionID domain.SectionID) (RegistrationResult, error) {
	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return RegistrationResult{}, fmt.Errorf("load ledger: %w", err)
	}

	entry, found := lo.Find(ledger.RegisteredSections, func(entry domain.RegisteredSection) bool {
		return entry.SectionID == sectionID
	})
	if !found {
		return failure(
			OutcomeSectionNotRegistered,
			fmt.Sprintf("You are not registered in section %s", sectionID),
		), nil
	}

	ledger.Remove(sectionID)

	if err := s.ledger.Save(ctx, ledger); err != nil {
		return RegistrationResult{}, fmt.Errorf("save ledger: %w", err)
	}

	return RegistrationResult{
		Success: true,
		Code:    OutcomeDropped,
		Message: fmt.Sprintf("Successfully dropped %s", entry.CourseTitle),
	}, nil
}

// MarkComplete moves a course into the completed set.
func (s *RegistrationService) MarkComplete(ctx context.Context, courseCode domain.CourseCode) error {
	if _, err := s.catalog.FindCourse(ctx, courseCode); err != nil {
		return fmt.Errorf("find course: %w", err)
	}

	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	ledger.MarkComplete(courseCode)

	if err := s.ledger.Save(ctx, ledger); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	return nil
}

// Schedule returns the current registrations and derived totals.
func (s *RegistrationService) Schedule(ctx context.Context) (ScheduleView, error) {
	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return ScheduleView{}, fmt.Errorf("load ledger: %w", err)
	}

	return ScheduleView{
		Entries:          ledger.RegisteredSections,
		TotalCredits:     ledger.TotalCredits(),
		CompletedCourses: ledger.CompletedCourses,
	}, nil
}

// ListCourses returns catalog courses matching the filter, preserving
// catalog order.
func (s *RegistrationService) ListCourses(ctx context.Context, filter CourseFilter) ([]domain.Course, error) {
	courses, err := s.catalog.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	department := strings.ToUpper(strings.TrimSpace(filter.Department))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	return lo.Filter(courses, func(course domain.Course, _ int) bool {
		if department != "" && departmentOf(course.Code) != department {
			return false
		}
		if query == "" {
			return true
		}

		return strings.Contains(strings.ToLower(string(course.Code)), query) ||
			strings.Contains(strings.ToLower(course.Title), query)
	}), nil
}

// Departments returns the distinct leading-letter prefixes of catalog
// course codes, sorted.
func (s *RegistrationService) Departments(ctx context.Context) ([]string, error) {
	courses, err := s.catalog.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	departments := lo.Uniq(lo.Map(courses, func(course domain.Course, _ int) string {
		return departmentOf(course.Code)
	}))
	sort.Strings(departments)

	return departments, nil
}

func departmentOf(code domain.CourseCode) string {
	raw := string(code)
	end := 0
	for end < len(raw) && raw[end] >= 'A' && raw[end] <= 'Z' {
		end++
	}

	return raw[:end]
}

func failure(code OutcomeCode, message string) RegistrationResult {
	return RegistrationResult{Success: false, Code: code, Message: message}
}
