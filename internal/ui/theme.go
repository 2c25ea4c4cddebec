package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles for the menu chrome. Bucket content
// itself carries its own ANSI styling and is never restyled here.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the menu styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			MarginTop(1).
			MarginBottom(1),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(0).
			Bold(true).
			Foreground(lipgloss.Color("5")),
		Help: lipgloss.NewStyle().
			Faint(true).
			MarginTop(1),
	}
}
