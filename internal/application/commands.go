package application

import "github.com/bnema/course-reg-cli/internal/domain"

// OutcomeCode identifies why a registration decision succeeded or was
// rejected. Codes are stable; messages are the user-facing rendering.
type OutcomeCode string

const (
	OutcomeRegistered            OutcomeCode = "registered"
	OutcomeDropped               OutcomeCode = "dropped"
	OutcomeCourseNotFound        OutcomeCode = "course_not_found"
	OutcomeSectionNotFound       OutcomeCode = "section_not_found"
	OutcomeAlreadyRegistered     OutcomeCode = "already_registered"
	OutcomeMissingPrerequisites  OutcomeCode = "missing_prerequisites"
	OutcomeDuplicateCourse       OutcomeCode = "duplicate_course_section"
	OutcomeLabRequiresLecture    OutcomeCode = "lab_requires_lecture"
	OutcomeScheduleConflict      OutcomeCode = "schedule_conflict"
	OutcomeCreditLimitExceeded   OutcomeCode = "credit_limit_exceeded"
	OutcomeSectionNotRegistered  OutcomeCode = "section_not_registered"
	OutcomePlanned               OutcomeCode = "planned"
	OutcomeInvalidCreditTarget   OutcomeCode = "invalid_credit_target"
	OutcomeAtCreditLimit         OutcomeCode = "at_credit_limit"
	OutcomeNoEligibleCourses     OutcomeCode = "no_eligible_courses"
	OutcomeNoFeasibleCombination OutcomeCode = "no_feasible_combination"
)

// RegistrationResult is the outcome of a single register or drop
// attempt. Failures are values, not errors: errors are reserved for
// infrastructure faults (catalog or ledger IO).
type RegistrationResult struct {
	Success bool
	Code    OutcomeCode
	Message string
}

// PlannedSection is one pick of a read-only plan. It carries enough
// detail for the confirmation prompt without re-joining the catalog.
type PlannedSection struct {
	CourseCode  domain.CourseCode
	CourseTitle string
	SectionID   domain.SectionID
	Kind        domain.SectionKind
	Instructor  string
	Room        string
	Meeting     domain.Meeting
	Credits     int
}

// PlanResult is an unrealized proposed set of section picks. Nothing is
// committed until the caller confirms and the plan is replayed through
// the registration service.
type PlanResult struct {
	Success      bool
	Code         OutcomeCode
	Message      string
	Selected     []PlannedSection
	TotalCredits int
}

// CommitResult aggregates the independent register attempts of a
// confirmed plan. A failed pick never aborts the remaining ones.
type CommitResult struct {
	Registered int
	Failed     int
	Results    []RegistrationResult
}
