// Package ui holds the interactive parts of utccheck: line prompts, the
// numbered menu and the full-screen results browser.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Styling is switched off for pipes and NO_COLOR; main sets this from the
// detected output mode.
var colorsEnabled = true

// SetColors turns lipgloss styling on or off for prompts and menus.
func SetColors(enabled bool) {
	colorsEnabled = enabled
}

func render(style lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return style.Render(text)
}

func Success(text string) string { return render(successStyle, "✓ "+text) }
func Error(text string) string   { return render(errorStyle, "✗ "+text) }
func Warning(text string) string { return render(warningStyle, "⚠ "+text) }
func Primary(text string) string { return render(primaryStyle, text) }
func Dim(text string) string     { return render(dimStyle, text) }
func Bold(text string) string    { return render(boldStyle, text) }
