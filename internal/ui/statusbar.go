package ui

import (
	"github.com/rivo/tview"
)

// StatusBar shows keyboard hints at the bottom of the browser.
type StatusBar struct {
	*tview.TextView
}

// NewStatusBar creates a new status bar with the given hints text.
func NewStatusBar(hints string) *StatusBar {
	bar := &StatusBar{
		TextView: tview.NewTextView(),
	}

	bar.SetText(hints).
		SetTextColor(Theme.TextDim).
		SetTextAlign(tview.AlignCenter).
		SetBackgroundColor(Theme.Background)

	return bar
}

// SetHints replaces the hints text.
func (s *StatusBar) SetHints(hints string) *StatusBar {
	s.SetText(hints)
	return s
}

// HeaderBar is the one-line title at the top of the browser.
type HeaderBar struct {
	*tview.TextView
}

// NewHeaderBar creates a new header bar.
func NewHeaderBar(title string) *HeaderBar {
	h := &HeaderBar{
		TextView: tview.NewTextView(),
	}

	h.SetText(title).
		SetTextColor(Theme.Text).
		SetTextAlign(tview.AlignLeft).
		SetBackgroundColor(Theme.Primary)

	return h
}
