package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the week browser.
type Styles struct {
	Title    lipgloss.Style
	DayLabel lipgloss.Style
	Block    lipgloss.Style
	FreeDay  lipgloss.Style
	Total    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),
		DayLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(16),
		Block: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		FreeDay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		Total: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}
