package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/course-reg-cli/internal/application"
	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, course, title, section string, kind domain.SectionKind, days, interval string, credits int) domain.RegisteredSection {
	t.Helper()

	meeting, err := domain.NewMeeting(days, interval)
	require.NoError(t, err)

	return domain.RegisteredSection{
		CourseCode:   domain.CourseCode(course),
		CourseTitle:  title,
		SectionID:    domain.SectionID(section),
		Kind:         kind,
		Instructor:   "Dr. Chen",
		Room:         "H-549",
		Meeting:      meeting,
		Credits:      credits,
		RegisteredAt: time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderEmptySchedule(t *testing.T) {
	output, err := Render(application.ScheduleView{})
	require.NoError(t, err)

	assert.Contains(t, output, "Weekly Schedule")
	assert.Contains(t, output, "No registered sections yet.")
}

func TestRenderGroupsByWeekday(t *testing.T) {
	view := application.ScheduleView{
		Entries: []domain.RegisteredSection{
			entry(t, "SOEN2351", "Software Engineering Fundamentals", "SOEN2351-01", domain.SectionKindLecture, "MW", "10:00-11:15", 3),
			entry(t, "SOEN2351", "Software Engineering Fundamentals", "SOEN2351-L1", domain.SectionKindLab, "R", "14:30-16:30", 3),
			entry(t, "COMP1201", "Introduction to Programming", "COMP1201-01", domain.SectionKindLecture, "MW", "08:30-09:45", 3),
		},
		TotalCredits: 6,
	}

	output, err := Render(view)
	require.NoError(t, err)

	for _, want := range []string{"Monday", "Wednesday", "Thursday", "SOEN2351-01 (lecture)", "SOEN2351-L1 (lab)", "Total Credits: 6 / 18"} {
		assert.Contains(t, output, want)
	}
	assert.NotContains(t, output, "Tuesday")
	assert.NotContains(t, output, "Friday")

	// Within a day, earlier meetings render first.
	monday := strings.Index(output, "Monday")
	require.GreaterOrEqual(t, monday, 0)
	comp := strings.Index(output[monday:], "COMP1201-01")
	soen := strings.Index(output[monday:], "SOEN2351-01")
	assert.Less(t, comp, soen)
}

func TestRenderCourseSummaryDedupesCourses(t *testing.T) {
	view := application.ScheduleView{
		Entries: []domain.RegisteredSection{
			entry(t, "SOEN2351", "Software Engineering Fundamentals", "SOEN2351-01", domain.SectionKindLecture, "MW", "10:00-11:15", 3),
			entry(t, "SOEN2351", "Software Engineering Fundamentals", "SOEN2351-L1", domain.SectionKindLab, "R", "14:30-16:30", 3),
		},
		TotalCredits: 3,
	}

	output, err := Render(view)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(output, "Software Engineering Fundamentals"))
	assert.Contains(t, output, "3 credits")
}

func TestRenderPlan(t *testing.T) {
	meeting, err := domain.NewMeeting("MW", "10:00-11:15")
	require.NoError(t, err)

	plan := application.PlanResult{
		Success:      true,
		Code:         application.OutcomePlanned,
		Message:      "Found 2 sections totaling 3 credits",
		TotalCredits: 3,
		Selected: []application.PlannedSection{
			{
				CourseCode:  "SOEN2351",
				CourseTitle: "Software Engineering Fundamentals",
				SectionID:   "SOEN2351-01",
				Kind:        domain.SectionKindLecture,
				Instructor:  "Dr. Chen",
				Room:        "H-549",
				Meeting:     meeting,
				Credits:     3,
			},
			{
				CourseCode:  "SOEN2351",
				CourseTitle: "Software Engineering Fundamentals",
				SectionID:   "SOEN2351-L1",
				Kind:        domain.SectionKindLab,
				Instructor:  "Dr. Chen",
				Room:        "H-521",
				Meeting:     meeting,
				Credits:     3,
			},
		},
	}

	output := RenderPlan(plan)

	assert.Contains(t, output, "Proposed Registration Plan")
	assert.Contains(t, output, "Found 2 sections totaling 3 credits")
	assert.Contains(t, output, "SOEN2351-01 (LECTURE)")
	assert.Contains(t, output, "SOEN2351-L1 (LAB)")
	assert.Contains(t, output, "Total Credits: 3")
}
