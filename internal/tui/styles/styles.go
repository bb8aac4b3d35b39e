// Package styles centralizes the lipgloss styles used by the demo TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Menu styles
	MenuItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 2)

	MenuItemSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 2)

	// Output pane for captured log lines
	OutputPane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Help bar at the bottom of the screen
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)
)
