package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Theme defines the color scheme of the results browser.
var Theme = struct {
	Primary tcell.Color
	Success tcell.Color
	Warning tcell.Color
	Error   tcell.Color
	Accent  tcell.Color

	Text    tcell.Color
	TextDim tcell.Color

	Background tcell.Color

	Border    tcell.Color
	Header    tcell.Color
	Selection tcell.Color
	Highlight tcell.Color
}{
	Primary: tcell.ColorBlue,
	Success: tcell.ColorGreen,
	Warning: tcell.ColorYellow,
	Error:   tcell.ColorRed,
	Accent:  tcell.ColorAqua, // tcell v2 uses ColorAqua for cyan

	Text:    tcell.ColorWhite,
	TextDim: tcell.ColorGray,

	Background: tcell.ColorBlack,

	Border:    tcell.ColorGray,
	Header:    tcell.ColorYellow,
	Selection: tcell.ColorTeal,
	Highlight: tcell.ColorWhite,
}
