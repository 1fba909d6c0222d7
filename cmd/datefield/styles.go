package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pedrohavay/datefield/datefield"
)

// Color palette for dark terminal backgrounds.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ValueStyle is for formatted values and type names.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// verdictStyle picks the style for a verdict word.
func verdictStyle(v datefield.Verdict) lipgloss.Style {
	switch {
	case v.Complete:
		return SuccessStyle
	case v.Partial:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
