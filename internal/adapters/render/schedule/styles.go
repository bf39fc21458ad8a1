package schedule

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	day      lipgloss.Style
	course   lipgloss.Style
	lab      lipgloss.Style
	detail   lipgloss.Style
	meta     lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	total    lipgloss.Style
	warning  lipgloss.Style
	planItem lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		course:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		lab:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		planItem: lipgloss.NewStyle().PaddingLeft(2),
	}
}
