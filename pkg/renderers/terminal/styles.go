package terminal

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "250", Light: "240"}),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "244", Light: "250"}).MarginTop(1),
	}
}
