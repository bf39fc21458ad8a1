package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/course-reg-cli/internal/application"
	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	"github.com/samber/lo"
)

const Greeting = "Hello! I'm your registration assistant. I can help you:\n\n" +
	"• Browse available courses and sections\n" +
	"• Register for courses (with confirmation)\n" +
	"• Auto-register based on credit hours\n" +
	"• Check prerequisites\n" +
	"• Plan your schedule\n\n" +
	"Try asking 'Show me all courses', 'Register me for SOEN2351-01', or 'Register me for 12 credit hours'"

const helpText = "I can help you with:\n\n" +
	"• 'Show me all courses' - Browse available courses\n" +
	"• 'Show sections for SOEN2351' - View course sections\n" +
	"• 'Register me for SOEN2351-01' - Register for a section\n" +
	"• 'Register me for 12 credit hours' - Auto-register for courses\n" +
	"• 'Show my registered courses' - View your schedule\n" +
	"• 'Plan my schedule' - Get course recommendations\n\n" +
	"What would you like to do?"

// Reply is the assistant's answer to one message. When Pending is set
// the conversation is suspended on a confirmation: the next input must
// be routed to Confirm or Cancel, not Respond.
type Reply struct {
	Text    string
	Pending bool
}

type pendingConfirmation struct {
	bulk     bool
	selected []application.PlannedSection
}

// Responder drives the registration services from parsed chat intents.
// It is a single-session caller: one pending confirmation at a time.
type Responder struct {
	registration *application.RegistrationService
	planner      *application.PlannerService
	catalog      ports.Catalog
	pending      *pendingConfirmation
}

func NewResponder(registration *application.RegistrationService, planner *application.PlannerService, catalog ports.Catalog) *Responder {
	return &Responder{
		registration: registration,
		planner:      planner,
		catalog:      catalog,
	}
}

func (r *Responder) HasPending() bool {
	return r.pending != nil
}

func (r *Responder) Respond(ctx context.Context, text string) (Reply, error) {
	intent := Parse(text)

	switch intent.Kind {
	case IntentBulkRegister:
		return r.bulkRegister(ctx, intent.Credits)
	case IntentRegisterSection:
		return r.registerSection(ctx, intent.CourseCode, intent.SectionID)
	case IntentListCourses:
		return r.listCourses(ctx)
	case IntentShowSections:
		return r.showSections(ctx, intent.CourseCode)
	case IntentShowRegistered:
		return r.showRegistered(ctx)
	case IntentPlanAdvice:
		return r.planAdvice(ctx)
	case IntentCheckConflicts:
		return r.checkConflicts(ctx)
	default:
		return Reply{Text: helpText}, nil
	}
}

func (r *Responder) registerSection(ctx context.Context, courseCode domain.CourseCode, sectionID domain.SectionID) (Reply, error) {
	course, section, err := r.catalog.FindSection(ctx, courseCode, sectionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCourseNotFound):
			return Reply{Text: fmt.Sprintf("❌ Course %s not found. Please check the course code and try again.", courseCode)}, nil
		case errors.Is(err, domain.ErrSectionNotFound):
			return Reply{Text: fmt.Sprintf("❌ Section %s not found. Please check the section ID and try again.", sectionID)}, nil
		default:
			return Reply{}, fmt.Errorf("find section: %w", err)
		}
	}

	view, err := r.registration.Schedule(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("load schedule: %w", err)
	}
	if lo.SomeBy(view.Entries, func(entry domain.RegisteredSection) bool { return entry.SectionID == sectionID }) {
		return Reply{Text: fmt.Sprintf("⚠️ You are already registered for %s.", sectionID)}, nil
	}

	r.pending = &pendingConfirmation{
		selected: []application.PlannedSection{{
			CourseCode:  course.Code,
			CourseTitle: course.Title,
			SectionID:   section.ID,
			Kind:        section.Kind,
			Instructor:  section.Instructor,
			Room:        section.Room,
			Meeting:     section.Meeting,
			Credits:     course.Credits,
		}},
	}

	details := fmt.Sprintf("%s - %s\nSection: %s (%s)\nInstructor: %s\nSchedule: %s\nRoom: %s\nCredits: %d",
		course.Code, course.Title, section.ID, strings.ToUpper(string(section.Kind)),
		section.Instructor, section.Meeting.String(), section.Room, course.Credits)

	return Reply{
		Text:    "Are you sure you want to register for this course?\n\n" + details,
		Pending: true,
	}, nil
}

func (r *Responder) bulkRegister(ctx context.Context, targetCredits int) (Reply, error) {
	plan, err := r.planner.PlanByCredits(ctx, targetCredits)
	if err != nil {
		return Reply{}, fmt.Errorf("plan by credits: %w", err)
	}
	if !plan.Success {
		if plan.Code == application.OutcomeInvalidCreditTarget {
			return Reply{Text: "❌ " + plan.Message}, nil
		}
		return Reply{Text: plan.Message}, nil
	}

	r.pending = &pendingConfirmation{bulk: true, selected: plan.Selected}

	details := strings.Join(lo.Map(plan.Selected, func(pick application.PlannedSection, _ int) string {
		return fmt.Sprintf("• %s - %s\n  Section: %s (%s)\n  %s | %s\n  Instructor: %s",
			pick.CourseCode, pick.CourseTitle, pick.SectionID, strings.ToUpper(string(pick.Kind)),
			pick.Meeting.String(), pick.Room, pick.Instructor)
	}), "\n\n")

	return Reply{
		Text: fmt.Sprintf("Are you sure you want to register for all these courses?\n\nI've selected the following courses for you:\n\n%s\n\nTotal Credits: %d",
			details, plan.TotalCredits),
		Pending: true,
	}, nil
}

// Confirm realizes the pending selection. Bulk picks are committed
// independently and the successes and failures are aggregated.
func (r *Responder) Confirm(ctx context.Context) (string, error) {
	pending := r.pending
	if pending == nil {
		return "There is nothing pending to confirm.", nil
	}
	r.pending = nil

	if pending.bulk {
		result, err := r.planner.Commit(ctx, pending.selected)
		if err != nil {
			return "", fmt.Errorf("commit plan: %w", err)
		}

		if result.Registered == 0 {
			return "❌ Could not register for any sections. Please check your prerequisites and schedule conflicts.", nil
		}

		text := fmt.Sprintf("✅ Successfully registered for %d section(s)!", result.Registered)
		if result.Failed > 0 {
			text += fmt.Sprintf("\n⚠️ %d section(s) could not be registered.", result.Failed)
		}
		return text + "\n\nAsk 'Show my registered courses' to view your schedule.", nil
	}

	pick := pending.selected[0]
	outcome, err := r.registration.Register(ctx, pick.CourseCode, pick.SectionID)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	if !outcome.Success {
		return "❌ " + outcome.Message, nil
	}

	return "✅ " + outcome.Message + "\n\nAsk 'Show my registered courses' to view your schedule.", nil
}

func (r *Responder) Cancel() string {
	r.pending = nil
	return "Registration cancelled. Let me know if you'd like to register for different courses!"
}

func (r *Responder) listCourses(ctx context.Context) (Reply, error) {
	courses, err := r.catalog.Courses(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("list courses: %w", err)
	}

	list := strings.Join(lo.Map(courses, func(course domain.Course, _ int) string {
		lectureCount := lo.CountBy(course.Sections, func(section domain.Section) bool {
			return section.Kind == domain.SectionKindLecture
		})
		labInfo := ""
		if course.HasLab {
			labInfo = " (Has Lab)"
		}
		prereqInfo := ""
		if len(course.Prerequisites) > 0 {
			prereqInfo = " | Prereq: " + joinCodes(course.Prerequisites)
		}
		return fmt.Sprintf("• %s - %s%s\n  %d credits | %d sections%s",
			course.Code, course.Title, labInfo, course.Credits, lectureCount, prereqInfo)
	}), "\n\n")

	return Reply{Text: fmt.Sprintf("📚 Available Courses:\n\n%s\n\nTo see sections for a specific course, ask \"Show sections for SOEN2351\"", list)}, nil
}

func (r *Responder) showSections(ctx context.Context, courseCode domain.CourseCode) (Reply, error) {
	if courseCode == "" {
		return Reply{Text: "Please specify a course code, e.g., 'Show sections for SOEN2351'"}, nil
	}

	course, err := r.catalog.FindCourse(ctx, courseCode)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return Reply{Text: fmt.Sprintf("❌ Course %s not found. Type \"Show me all courses\" to see available courses.", courseCode)}, nil
		}
		return Reply{}, fmt.Errorf("find course: %w", err)
	}

	lectures := sectionLines(course, domain.SectionKindLecture)
	text := fmt.Sprintf("%s - %s\n%d credits", course.Code, course.Title, course.Credits)
	if len(course.Prerequisites) > 0 {
		text += " | Prerequisites: " + joinCodes(course.Prerequisites)
	}
	text += "\n\n📖 Lecture Sections:\n" + lectures

	if course.HasLab {
		text += "\n\n🔬 Lab Sections:\n" + sectionLines(course, domain.SectionKindLab)
	}

	text += fmt.Sprintf("\n\nTo register, type: \"Register me for %s\"", course.Sections[0].ID)

	return Reply{Text: text}, nil
}

func (r *Responder) showRegistered(ctx context.Context) (Reply, error) {
	view, err := r.registration.Schedule(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("load schedule: %w", err)
	}

	if len(view.Entries) == 0 {
		return Reply{Text: "You haven't registered for any courses yet. Type 'Show me all courses' to browse available courses."}, nil
	}

	details := strings.Join(lo.Map(view.Entries, func(entry domain.RegisteredSection, _ int) string {
		return fmt.Sprintf("• %s - %s\n  Section: %s (%s)\n  %s | %s\n  %d credits",
			entry.CourseCode, entry.CourseTitle, entry.SectionID, entry.Kind,
			entry.Meeting.String(), entry.Room, entry.Credits)
	}), "\n\n")

	return Reply{Text: fmt.Sprintf("📋 Your Registered Courses:\n\n%s\n\n📊 Total Credits: %d", details, view.TotalCredits)}, nil
}

func (r *Responder) planAdvice(ctx context.Context) (Reply, error) {
	courses, err := r.catalog.Courses(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("list courses: %w", err)
	}

	view, err := r.registration.Schedule(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("load schedule: %w", err)
	}

	completed := map[domain.CourseCode]bool{}
	for _, code := range view.CompletedCourses {
		completed[code] = true
	}
	registered := map[domain.CourseCode]bool{}
	for _, entry := range view.Entries {
		registered[entry.CourseCode] = true
	}

	eligible := lo.Filter(courses, func(course domain.Course, _ int) bool {
		if registered[course.Code] {
			return false
		}
		return lo.EveryBy(course.Prerequisites, func(prereq domain.CourseCode) bool { return completed[prereq] })
	})

	recommendations := strings.Join(lo.Map(lo.Subset(eligible, 0, 5), func(course domain.Course, _ int) string {
		labInfo := ""
		if course.HasLab {
			labInfo = " + Lab"
		}
		lectureCount := lo.CountBy(course.Sections, func(section domain.Section) bool {
			return section.Kind == domain.SectionKindLecture
		})
		return fmt.Sprintf("• %s - %s%s\n  %d credits | %d sections available",
			course.Code, course.Title, labInfo, course.Credits, lectureCount)
	}), "\n\n")

	return Reply{Text: fmt.Sprintf("📅 Recommended Courses for You:\n\n%s\n\nTo see sections for any course, ask \"Show sections for [COURSE CODE]\"\n\nOr simply tell me: \"Register me for 12 credit hours\" and I'll automatically select the best courses for you!", recommendations)}, nil
}

func (r *Responder) checkConflicts(ctx context.Context) (Reply, error) {
	view, err := r.registration.Schedule(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("load schedule: %w", err)
	}

	if len(view.Entries) < 2 {
		return Reply{Text: "You need at least 2 registered courses to check for conflicts. Register for more courses first!"}, nil
	}

	// The rule engine rejects conflicting registrations, so a committed
	// ledger is conflict-free.
	return Reply{Text: "✅ Great news! I've analyzed your schedule and found no time conflicts. All your courses fit perfectly!"}, nil
}

func sectionLines(course domain.Course, kind domain.SectionKind) string {
	sections := lo.Filter(course.Sections, func(section domain.Section, _ int) bool {
		return section.Kind == kind
	})

	return strings.Join(lo.Map(sections, func(section domain.Section, _ int) string {
		return fmt.Sprintf("  %s\n  %s\n  %s | %s", section.ID, section.Instructor, section.Meeting.String(), section.Room)
	}), "\n\n")
}

func joinCodes(codes []domain.CourseCode) string {
	return strings.Join(lo.Map(codes, func(code domain.CourseCode, _ int) string { return string(code) }), ", ")
}
