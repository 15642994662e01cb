package matchview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	clientName lipgloss.Style
	detail     lipgloss.Style
	eligible   lipgloss.Style
	ineligible lipgloss.Style
	tag        lipgloss.Style
	footer     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		clientName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		eligible:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		ineligible: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		footer:     lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
