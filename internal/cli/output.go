package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table provides aligned column output.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table. Missing cells are left blank.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.headers) {
		cells = append(cells, "")
	}
	for i, cell := range cells {
		if i < len(t.widths) {
			t.widths[i] = max(t.widths[i], lipgloss.Width(cell))
		}
	}
	t.rows = append(t.rows, cells)
}

// String renders the table as a string.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	var b strings.Builder

	for i, h := range t.headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Header(padRight(h, t.widths[i])))
	}
	b.WriteString("\n")

	for i, w := range t.widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Dim(strings.Repeat("─", w)))
	}
	b.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(t.widths) {
				break
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padRight(cell, t.widths[i]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads s to width display columns. Styled text is measured without
// its escape sequences.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// List renders marked lines, one item per line.
type List struct {
	items  []string
	indent int
}

// NewList creates a new list.
func NewList() *List {
	return &List{indent: 2}
}

// Add adds an item with the given marker.
func (l *List) Add(marker, content string) {
	l.items = append(l.items, marker+" "+content)
}

// AddVerdict adds an item marked valid or invalid.
func (l *List) AddVerdict(valid bool, content string) {
	l.Add(Mark(valid), content)
}

// String renders the list as a string.
func (l *List) String() string {
	var b strings.Builder
	indent := strings.Repeat(" ", l.indent)
	for _, item := range l.items {
		b.WriteString(indent)
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCount formats a count with singular/plural form.
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// FormatSummary formats the "N valid of M found" line.
func FormatSummary(valid, found int) string {
	if found == 0 {
		return Dim("no timestamps found")
	}
	return fmt.Sprintf("%s of %s found", Success(fmt.Sprintf("%d valid", valid)), FormatCount(found, "candidate", "candidates"))
}

// FormatRemaining formats the line printed after a truncated list.
func FormatRemaining(n int) string {
	return Dim(fmt.Sprintf("... and %d more", n))
}
