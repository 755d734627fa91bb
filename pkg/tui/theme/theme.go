package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs TabTheme
	Card CardTheme
	Grid GridTheme
	Help lipgloss.Style
	Err  lipgloss.Style
}

// TabTheme styles the tab bar at the top of the screen.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// CardTheme styles the entry cards on the home and gallery tabs.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Date     lipgloss.Style
	Mood     lipgloss.Style
	Text     lipgloss.Style
	Meta     lipgloss.Style
}

// GridTheme styles the month grid on the calendar tab.
type GridTheme struct {
	Header   lipgloss.Style
	Month    lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Theme{
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Padding(0, 1),
			Inactive: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 1),
		},
		Card: CardTheme{
			Frame:    frame,
			Selected: frame.Copy().BorderForeground(lipgloss.Color("212")),
			Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Mood:     lipgloss.NewStyle().Bold(true),
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Month:    lipgloss.NewStyle().Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Err:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}
