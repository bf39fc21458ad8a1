package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/course-reg-cli/internal/application"
	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var weekdays = []struct {
	letter rune
	name   string
}{
	{'M', "Monday"},
	{'T', "Tuesday"},
	{'W', "Wednesday"},
	{'R', "Thursday"},
	{'F', "Friday"},
}

func renderView(view application.ScheduleView, s styles) string {
	lines := []string{
		s.title.Render("Weekly Schedule"),
		s.header.Render(fmt.Sprintf("registered sections: %d", len(view.Entries))),
	}

	if len(view.Entries) == 0 {
		lines = append(lines, s.empty.Render("No registered sections yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, day := range weekdays {
		entries := entriesOn(view.Entries, day.letter)
		if len(entries) == 0 {
			continue
		}

		lines = append(lines, s.section.Render(renderDay(day.name, entries, s)))
	}

	lines = append(lines, s.section.Render(renderCourseSummary(view.Entries, s)))
	lines = append(lines, s.total.Render(fmt.Sprintf("Total Credits: %d / %d", view.TotalCredits, domain.MaxCredits)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func entriesOn(entries []domain.RegisteredSection, day rune) []domain.RegisteredSection {
	var filtered []domain.RegisteredSection
	for _, entry := range entries {
		if entry.Meeting.Days.Contains(day) {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Meeting.StartMin < filtered[j].Meeting.StartMin
	})

	return filtered
}

func renderDay(name string, entries []domain.RegisteredSection, s styles) string {
	parts := []string{s.day.Render(name)}

	for _, entry := range entries {
		style := s.course
		if entry.Kind == domain.SectionKindLab {
			style = s.lab
		}

		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(entry.Meeting.Interval()),
			"  ",
			style.Render(fmt.Sprintf("%s (%s)", entry.SectionID, entry.Kind)),
			"  ",
			s.meta.Render(entry.Room),
		)
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCourseSummary(entries []domain.RegisteredSection, s styles) string {
	parts := []string{s.day.Render("Courses")}

	seen := map[domain.CourseCode]bool{}
	for _, entry := range entries {
		if seen[entry.CourseCode] {
			continue
		}
		seen[entry.CourseCode] = true

		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.course.Render(string(entry.CourseCode)),
			"  ",
			s.detail.Render(entry.CourseTitle),
			"  ",
			s.meta.Render(fmt.Sprintf("%s | %d credits", entry.Instructor, entry.Credits)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderPlan formats an unconfirmed plan for the confirmation prompt.
func RenderPlan(plan application.PlanResult) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Proposed Registration Plan"),
		s.header.Render(plan.Message),
	}

	for _, pick := range plan.Selected {
		style := s.course
		if pick.Kind == domain.SectionKindLab {
			style = s.lab
		}

		detail := fmt.Sprintf("%s - %s", pick.CourseCode, pick.CourseTitle)
		meta := fmt.Sprintf("%s (%s)  %s | %s  %s",
			pick.SectionID, strings.ToUpper(string(pick.Kind)), pick.Meeting.String(), pick.Room, pick.Instructor)

		lines = append(lines,
			s.planItem.Render(style.Render(detail)),
			s.planItem.Render(s.meta.Render(meta)),
		)
	}

	lines = append(lines, s.total.Render(fmt.Sprintf("Total Credits: %d", plan.TotalCredits)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
