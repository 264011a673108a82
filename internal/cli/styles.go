package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("12") // Blue
	colorSuccess = lipgloss.Color("10") // Green
	colorWarning = lipgloss.Color("11") // Yellow
	colorError   = lipgloss.Color("9")  // Red
	colorMuted   = lipgloss.Color("8")  // Gray
	colorWhite   = lipgloss.Color("15") // White
)

var (
	badgeValid = lipgloss.NewStyle().
			Background(colorSuccess).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1).
			Bold(true)

	badgeInvalid = lipgloss.NewStyle().
			Background(colorError).
			Foreground(colorWhite).
			Padding(0, 1).
			Bold(true)

	badgeInfo = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorWhite).
			Padding(0, 1).
			Bold(true)
)

var (
	panelSuccess = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)

	panelWarning = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorPrimary).
			Padding(0, 2)
)

// RenderBadge renders text as a badge, or "[text]" without colors.
func RenderBadge(text string, style lipgloss.Style) string {
	if !EnableColors() {
		return "[" + text + "]"
	}
	return style.Render(text)
}

// RenderVerdictBadge renders VALID or INVALID.
func RenderVerdictBadge(valid bool) string {
	if valid {
		return RenderBadge("VALID", badgeValid)
	}
	return RenderBadge("INVALID", badgeInvalid)
}

// RenderInfoBadge renders an informational badge such as an error code.
func RenderInfoBadge(text string) string {
	return RenderBadge(text, badgeInfo)
}

// RenderResultPanel frames a block of results. The border is green when
// everything found was valid and yellow otherwise.
func RenderResultPanel(title, content string, allValid bool) string {
	content = strings.TrimRight(content, "\n")
	if !EnableColors() {
		return fmt.Sprintf("%s\n%s\n", title, content)
	}

	style, color := panelWarning, colorWarning
	if allValid {
		style, color = panelSuccess, colorSuccess
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)
	return style.Render(heading+"\n\n"+content) + "\n"
}

// RenderTitle renders a styled title.
func RenderTitle(text string) string {
	if !EnableColors() {
		return "═══ " + text + " ═══"
	}
	return titleStyle.Render(text)
}

// StatusLine renders a row of icon + message items.
type StatusLine struct {
	items []statusItem
}

type statusItem struct {
	icon    string
	message string
	style   lipgloss.Style
}

// NewStatusLine creates a new status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// AddSuccess adds a success item.
func (s *StatusLine) AddSuccess(msg string) *StatusLine {
	return s.add("✓", msg, colorSuccess)
}

// AddError adds an error item.
func (s *StatusLine) AddError(msg string) *StatusLine {
	return s.add("✗", msg, colorError)
}

func (s *StatusLine) add(icon, msg string, color lipgloss.Color) *StatusLine {
	s.items = append(s.items, statusItem{
		icon:    icon,
		message: msg,
		style:   lipgloss.NewStyle().Foreground(color),
	})
	return s
}

// String renders the status line.
func (s *StatusLine) String() string {
	parts := make([]string, 0, len(s.items))
	for _, item := range s.items {
		text := item.icon + " " + item.message
		if EnableColors() {
			text = item.style.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "  ")
}
