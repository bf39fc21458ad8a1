package application

import (
	"context"
	"fmt"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/samber/lo"
)

// PlannerService builds conflict-free, prerequisite-satisfying,
// credit-bounded section sets. Planning is a read-only pass; a plan is
// realized only by Commit, which replays every pick through the
// registration service.
type PlannerService struct {
	catalog      ports.Catalog
	ledger       ports.LedgerRepository
	registration *RegistrationService
}

func NewPlannerService(catalog ports.Catalog, ledger ports.LedgerRepository, registration *RegistrationService) *PlannerService {
	return &PlannerService{
		catalog:      catalog,
		ledger:       ledger,
		registration: registration,
	}
}

// PlanByCredits selects sections toward the target credit load. The
// walk is deterministic: courses that unlock other courses' prerequisite
// chains come first, catalog order decides within a tier.
func (s *PlannerService) PlanByCredits(ctx context.Context, targetCredits int) (PlanResult, error) {
	if targetCredits < 1 || targetCredits > domain.MaxCredits {
		return planFailure(
			OutcomeInvalidCreditTarget,
			fmt.Sprintf("Please specify a valid number of credit hours between 1 and %d.", domain.MaxCredits),
		), nil
	}

	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return PlanResult{}, fmt.Errorf("load ledger: %w", err)
	}

	current := ledger.TotalCredits()
	available := min(domain.MaxCredits-current, targetCredits)
	if available <= 0 {
		return planFailure(
			OutcomeAtCreditLimit,
			fmt.Sprintf("You are already at or near the %d credit limit (current: %d credits). Cannot register for more courses.", domain.MaxCredits, current),
		), nil
	}

	courses, err := s.catalog.Courses(ctx)
	if err != nil {
		return PlanResult{}, fmt.Errorf("list courses: %w", err)
	}

	candidates := lo.Filter(courses, func(course domain.Course, _ int) bool {
		if ledger.IsCourseRegistered(course.Code) {
			return false
		}

		return lo.EveryBy(course.Prerequisites, ledger.HasCompleted)
	})
	if len(candidates) == 0 {
		return planFailure(
			OutcomeNoEligibleCourses,
			"No available courses found that meet your prerequisites and aren't already registered.",
		), nil
	}

	selected, accumulated := selectSections(prioritize(candidates, courses), available)
	if len(selected) == 0 {
		return planFailure(
			OutcomeNoFeasibleCombination,
			fmt.Sprintf("Could not find courses that fit within %d credits without time conflicts.", available),
		), nil
	}

	return PlanResult{
		Success:      true,
		Code:         OutcomePlanned,
		Message:      fmt.Sprintf("Found %d sections totaling %d credits", len(selected), accumulated),
		Selected:     selected,
		TotalCredits: accumulated,
	}, nil
}

// prioritize puts courses that appear in any other course's prerequisite
// list first. The tier is a flat boolean: transitive chains and dependent
// counts deliberately do not rank higher. The partition is stable, so
// catalog order is preserved within each tier.
func prioritize(candidates, allCourses []domain.Course) []domain.Course {
	unlocking, terminal := lo.FilterReject(candidates, func(candidate domain.Course, _ int) bool {
		return lo.SomeBy(allCourses, func(course domain.Course) bool {
			return course.Requires(candidate.Code)
		})
	})

	return append(unlocking, terminal...)
}

// selectSections greedily walks the priority-ordered candidates. A course
// whose credits do not fit is skipped, not a walk terminator: a later,
// smaller course may still fit. Each course is visited once, so a plan
// never double-books two sections of the same course.
func selectSections(candidates []domain.Course, available int) ([]PlannedSection, int) {
	var selected []PlannedSection
	accumulated := 0

	for _, course := range candidates {
		if accumulated+course.Credits > available {
			continue
		}

		lecture, ok := course.FirstSectionOfKind(domain.SectionKindLecture)
		if !ok {
			continue
		}
		if conflictsWithSelection(selected, lecture.Meeting) {
			continue
		}

		selected = append(selected, plannedSection(course, lecture))
		accumulated += course.Credits

		if !course.HasLab {
			continue
		}

		// Lab omission on conflict is non-fatal; the lecture stays.
		lab, ok := course.FirstSectionOfKind(domain.SectionKindLab)
		if !ok || conflictsWithSelection(selected, lab.Meeting) {
			continue
		}

		selected = append(selected, plannedSection(course, lab))
	}

	return selected, accumulated
}

func conflictsWithSelection(selected []PlannedSection, meeting domain.Meeting) bool {
	return lo.SomeBy(selected, func(pick PlannedSection) bool {
		return pick.Meeting.Conflicts(meeting)
	})
}

func plannedSection(course domain.Course, section domain.Section) PlannedSection {
	return PlannedSection{
		CourseCode:  course.Code,
		CourseTitle: course.Title,
		SectionID:   section.ID,
		Kind:        section.Kind,
		Instructor:  section.Instructor,
		Room:        section.Room,
		Meeting:     section.Meeting,
		Credits:     course.Credits,
	}
}

// Commit registers every pick of a confirmed plan. Picks are attempted
// independently: a rejection is aggregated, never a reason to abort the
// remaining ones.
func (s *PlannerService) Commit(ctx context.Context, selected []PlannedSection) (CommitResult, error) {
	result := CommitResult{Results: make([]RegistrationResult, 0, len(selected))}

	for _, pick := range selected {
		outcome, err := s.registration.Register(ctx, pick.CourseCode, pick.SectionID)
		if err != nil {
			return CommitResult{}, fmt.Errorf("commit %s: %w", pick.SectionID, err)
		}

		result.Results = append(result.Results, outcome)
		if outcome.Success {
			result.Registered++
		} else {
			result.Failed++
		}
	}

	return result, nil
}

func planFailure(code OutcomeCode, message string) PlanResult {
	return PlanResult{Success: false, Code: code, Message: message}
}
