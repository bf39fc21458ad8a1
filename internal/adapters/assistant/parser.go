// Package assistant maps chat-style text onto registration actions. It
// owns the confirmation state machine for pending registrations; all
// engine logic stays in the application services.
package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/course-reg-cli/internal/domain"
)

type IntentKind string

const (
	IntentBulkRegister    IntentKind = "bulk_register"
	IntentRegisterSection IntentKind = "register_section"
	IntentListCourses     IntentKind = "list_courses"
	IntentShowSections    IntentKind = "show_sections"
	IntentShowRegistered  IntentKind = "show_registered"
	IntentPlanAdvice      IntentKind = "plan_advice"
	IntentCheckConflicts  IntentKind = "check_conflicts"
	IntentHelp            IntentKind = "help"
)

type Intent struct {
	Kind       IntentKind
	CourseCode domain.CourseCode
	SectionID  domain.SectionID
	Credits    int
}

var (
	sectionPattern = regexp.MustCompile(`([A-Za-z]+\d+-\w+)`)
	coursePattern  = regexp.MustCompile(`([A-Za-z]+\d+)`)
	numberPattern  = regexp.MustCompile(`(\d+)`)
)

// Parse classifies a chat message. Branch order matters: a bulk credit
// request also mentions "register", so it is matched before the
// single-section form.
func Parse(text string) Intent {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "register") &&
		(strings.Contains(lower, "credit") || strings.Contains(lower, "hour")) &&
		numberPattern.MatchString(text):
		credits, _ := strconv.Atoi(numberPattern.FindString(text))
		return Intent{Kind: IntentBulkRegister, Credits: credits}

	case strings.Contains(lower, "register") && sectionPattern.MatchString(text):
		sectionID := strings.ToUpper(sectionPattern.FindString(text))
		courseCode, _, _ := strings.Cut(sectionID, "-")
		return Intent{
			Kind:       IntentRegisterSection,
			CourseCode: domain.CourseCode(courseCode),
			SectionID:  domain.SectionID(sectionID),
		}

	case strings.Contains(lower, "show") &&
		(strings.Contains(lower, "course") || strings.Contains(lower, "all")):
		if strings.Contains(lower, "registered") || strings.Contains(lower, "my course") {
			return Intent{Kind: IntentShowRegistered}
		}
		return Intent{Kind: IntentListCourses}

	case strings.Contains(lower, "section"):
		if match := coursePattern.FindString(text); match != "" {
			return Intent{Kind: IntentShowSections, CourseCode: domain.CourseCode(strings.ToUpper(match))}
		}
		return Intent{Kind: IntentShowSections}

	case strings.Contains(lower, "registered") || strings.Contains(lower, "my courses"):
		return Intent{Kind: IntentShowRegistered}

	case strings.Contains(lower, "schedule") || strings.Contains(lower, "plan"):
		return Intent{Kind: IntentPlanAdvice}

	case strings.Contains(lower, "conflict"):
		return Intent{Kind: IntentCheckConflicts}

	default:
		return Intent{Kind: IntentHelp}
	}
}
