// Package tui provides the interactive terminal UI for annotating text.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - title
	ColorWord    = lipgloss.Color("#ffe66d") // Yellow - Cantonese words
	ColorReading = lipgloss.Color("#4ecdc4") // Teal - Jyutping
	ColorYale    = lipgloss.Color("#a8e6cf") // Green - Yale
	ColorMuted   = lipgloss.Color("#666666") // Gray - help, plain tokens
	ColorBorder  = lipgloss.Color("#3d5a80")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	WordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWord)

	PlainWordStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ReadingStyle = lipgloss.NewStyle().
			Foreground(ColorReading)

	YaleStyle = lipgloss.NewStyle().
			Foreground(ColorYale).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
