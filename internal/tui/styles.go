package tui

import "github.com/charmbracelet/lipgloss"

// Brand colors (Kartoza orange)
var (
	ColorOrange = lipgloss.Color("#DDA036")
	ColorGreen  = lipgloss.Color("#4CAF50")
	ColorRed    = lipgloss.Color("#F44336")
	ColorGray   = lipgloss.Color("#757575")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange).
			MarginBottom(1)

	stepDoneStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	stepFailedStyle  = lipgloss.NewStyle().Foreground(ColorRed)
	stepPendingStyle = lipgloss.NewStyle().Foreground(ColorGray)
	stepSkippedStyle = lipgloss.NewStyle().Foreground(ColorGray).Strikethrough(true)

	summaryStyle = lipgloss.NewStyle().Foreground(ColorGray).MarginTop(1)
)
