package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	hint        lipgloss.Style
	panel       lipgloss.Style
	activePanel lipgloss.Style
	panelTitle  lipgloss.Style
	panelFooter lipgloss.Style
	item        lipgloss.Style
	selected    lipgloss.Style
	empty       lipgloss.Style
	errorMarker lipgloss.Style
	footer      lipgloss.Style
	footerEdit  lipgloss.Style
	prompt      lipgloss.Style
	popup       lipgloss.Style
	popupTitle  lipgloss.Style
	popupText   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		hint:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")),
		activePanel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")),
		panelTitle:  lipgloss.NewStyle().Bold(true),
		panelFooter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		item:        lipgloss.NewStyle(),
		selected:    lipgloss.NewStyle().Background(lipgloss.Color("42")).Foreground(lipgloss.Color("0")),
		empty:       lipgloss.NewStyle().Faint(true),
		errorMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		footer:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")),
		footerEdit:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Bold(true),
		prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		popup:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(1, 3),
		popupTitle:  lipgloss.NewStyle().Bold(true),
		popupText:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
