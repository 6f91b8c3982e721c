package ui

import "github.com/charmbracelet/lipgloss"

// Styles mirror the color pairs of a classic curses calendar: red
// Sundays, green today, cyan days with events, reverse-video selection.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Normal   lipgloss.Style
	Weekend  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Event    lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true),
		Normal:   lipgloss.NewStyle(),
		Weekend:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Event:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Help:     lipgloss.NewStyle().Faint(true),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
