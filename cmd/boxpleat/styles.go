package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by every command's output. Tuned for dark
// terminal backgrounds.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorPath    = lipgloss.Color("#3B82F6")
)

var (
	// titleStyle is for the program name and section headers.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// subtitleStyle is for secondary text and descriptions.
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// okStyle marks a passing verdict.
	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	// badStyle marks a failing verdict or a hard error.
	badStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	// warnStyle marks incomplete patterns and non-fatal problems.
	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// pathStyle is for file paths in reports.
	pathStyle = lipgloss.NewStyle().
			Foreground(colorPath)

	// detailStyle indents per-violation detail lines.
	detailStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)
)
