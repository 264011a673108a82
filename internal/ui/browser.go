package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
)

// Browse shows reports in a full-screen browser: sources on the left when
// there is more than one, findings in the middle and the selected finding's
// details on the right. Outside an interactive terminal it writes the plain
// listing to w instead.
func Browse(w io.Writer, reports []*report.Report) error {
	if !isTerminal() {
		return WriteListing(w, reports)
	}
	b := newBrowser(reports)
	return b.app.SetRoot(b.layout, true).EnableMouse(true).Run()
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

type browser struct {
	app    *tview.Application
	layout *tview.Flex

	sources  *tview.List // nil for a single report
	findings *tview.Table
	details  *tview.TextView
	status   *StatusBar

	reports   []*report.Report
	current   int
	validOnly bool
	visible   []int // entry indexes of the current report shown in findings

	panels []tview.Primitive
	focus  int
}

func newBrowser(reports []*report.Report) *browser {
	b := &browser{
		app:     tview.NewApplication(),
		reports: reports,
	}

	b.findings = tview.NewTable().
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false).
		SetSelectedStyle(tcell.StyleDefault.
			Foreground(Theme.Highlight).
			Background(Theme.Selection))
	b.findings.SetBackgroundColor(Theme.Background).
		SetBorder(true).
		SetBorderColor(Theme.Border).
		SetTitle(PanelFindings).
		SetTitleColor(Theme.Accent)
	b.findings.SetSelectionChangedFunc(func(row, _ int) {
		b.showEntry(row)
	})

	b.details = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.details.SetBackgroundColor(Theme.Background).
		SetBorder(true).
		SetBorderColor(Theme.Border).
		SetTitle(PanelDetails).
		SetTitleColor(Theme.Accent)

	valid, found := 0, 0
	for _, r := range reports {
		valid += r.Valid
		found += r.Found
	}
	header := NewHeaderBar(FormatHeader(len(reports), valid, found))
	b.status = NewStatusBar(HintsBrowser)

	content := tview.NewFlex()
	content.SetBackgroundColor(Theme.Background)
	if len(reports) > 1 {
		b.sources = tview.NewList().
			ShowSecondaryText(false).
			SetHighlightFullLine(true).
			SetSelectedBackgroundColor(Theme.Selection).
			SetSelectedTextColor(Theme.Highlight).
			SetSelectedFocusOnly(false).
			SetMainTextColor(Theme.Text)
		b.sources.SetBackgroundColor(Theme.Background).
			SetBorder(true).
			SetBorderColor(Theme.Border).
			SetTitle(PanelSources).
			SetTitleColor(Theme.Accent)
		for _, r := range reports {
			b.sources.AddItem(sourceLabel(r), "", 0, nil)
		}
		b.sources.SetChangedFunc(func(index int, _, _ string, _ rune) {
			b.showSource(index)
		})
		content.AddItem(b.sources, Layout.SourcesWidth, 0, false)
		b.panels = append(b.panels, b.sources)
	}
	content.
		AddItem(b.findings, 0, Layout.FindingsRatio, true).
		AddItem(b.details, 0, Layout.DetailsRatio, false)
	b.panels = append(b.panels, b.findings, b.details)
	b.focus = len(b.panels) - 2

	b.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, Layout.HeaderHeight, 0, false).
		AddItem(content, 0, 1, true).
		AddItem(b.status, Layout.StatusBarHeight, 0, false)
	b.layout.SetBackgroundColor(Theme.Background)

	b.app.SetInputCapture(b.handleKey)

	if len(reports) > 0 {
		b.showSource(0)
	}
	return b
}

func (b *browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		b.app.Stop()
		return nil
	case tcell.KeyLeft:
		b.cycleFocus(-1)
		return nil
	case tcell.KeyRight:
		b.cycleFocus(1)
		return nil
	}

	switch event.Rune() {
	case 'q':
		b.app.Stop()
		return nil
	case 'v':
		b.toggleValidOnly()
		return nil
	case 'h':
		b.cycleFocus(-1)
		return nil
	case 'l':
		b.cycleFocus(1)
		return nil
	// Vim-style navigation
	case 'j':
		return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	case 'k':
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	case 'g':
		return tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone)
	case 'G':
		return tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone)
	}
	return event
}

func (b *browser) cycleFocus(step int) {
	n := len(b.panels)
	b.focus = ((b.focus+step)%n + n) % n
	b.app.SetFocus(b.panels[b.focus])
}

func (b *browser) toggleValidOnly() {
	b.validOnly = !b.validOnly
	hints := HintsBrowser
	if b.validOnly {
		hints = MsgValidFilter + " |" + HintsBrowser
	}
	b.status.SetHints(hints)
	b.showSource(b.current)
}

// showSource fills the findings table from report i and selects its first row.
func (b *browser) showSource(i int) {
	if i < 0 || i >= len(b.reports) {
		return
	}
	b.current = i
	r := b.reports[i]

	b.visible = b.visible[:0]
	for idx, e := range r.Entries {
		if b.validOnly && !e.Valid {
			continue
		}
		b.visible = append(b.visible, idx)
	}

	b.findings.Clear()
	for col, h := range []string{"", "Value", "Line:Col", "Code"} {
		b.findings.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(Theme.Header).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}
	for row, idx := range b.visible {
		e := r.Entries[idx]
		mark, color := SymbolCheck, Theme.Success
		if !e.Valid {
			mark, color = SymbolCross, Theme.Error
		}
		b.findings.SetCell(row+1, 0, tview.NewTableCell(mark).SetTextColor(color))
		b.findings.SetCell(row+1, 1, tview.NewTableCell(e.Value).SetTextColor(Theme.Text).SetExpansion(1))
		b.findings.SetCell(row+1, 2, tview.NewTableCell(fmt.Sprintf("%d:%d", e.Line, e.Column)).SetTextColor(Theme.TextDim))
		b.findings.SetCell(row+1, 3, tview.NewTableCell(e.Code).SetTextColor(Theme.Warning))
	}

	if len(b.visible) == 0 {
		b.details.SetText(emptyDetails(r))
		return
	}
	b.findings.Select(1, 0)
	b.showEntry(1)
}

func (b *browser) showEntry(row int) {
	if row < 1 || row > len(b.visible) {
		return
	}
	r := b.reports[b.current]
	b.details.SetText(entryDetails(r, r.Entries[b.visible[row-1]])).ScrollToBeginning()
}

func sourceLabel(r *report.Report) string {
	if r.Err != nil {
		return SymbolCross + " " + r.Source
	}
	return fmt.Sprintf("%s (%d/%d)", r.Source, r.Valid, r.Found)
}

func emptyDetails(r *report.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, TagLabel+LabelSource+TagValue+" %s\n\n", tview.Escape(r.Source))
	if r.Err != nil {
		b.WriteString(TagError + MsgLoadFailed + TagReset + "\n")
		b.WriteString(tview.Escape(r.Err.Error()))
		return b.String()
	}
	b.WriteString(TagMuted + MsgNoFindings + TagReset)
	return b.String()
}

// entryDetails renders one finding with tview color tags. For invalid
// findings the source line is shown with a pointer under the offending part.
func entryDetails(r *report.Report, e report.Entry) string {
	var b strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&b, TagLabel+"%-10s"+TagValue+" %s\n", label, tview.Escape(value))
	}

	field(LabelValue, e.Value)
	field(LabelSource, r.Source)
	field(LabelPosition, fmt.Sprintf("%d:%d", e.Line, e.Column))
	if e.Valid {
		fmt.Fprintf(&b, TagLabel+"%-10s"+TagSuccess+" %s valid"+TagReset+"\n", LabelVerdict, SymbolCheck)
	} else {
		fmt.Fprintf(&b, TagLabel+"%-10s"+TagError+" %s invalid"+TagReset+"\n", LabelVerdict, SymbolCross)
		field(LabelCode, e.Code)
		field(LabelReason, e.Reason)
	}
	if len(r.Digest) >= Layout.DigestDisplayLen {
		field(LabelDigest, r.Digest[:Layout.DigestDisplayLen])
	}

	ae, ok := e.Err.(*alerr.Error)
	if !ok {
		return b.String()
	}

	start, end, label := cli.PointerSpan(ae)
	line := strings.ReplaceAll(r.Line(e.Line), "\t", " ")
	num := fmt.Sprintf("%d", e.Line)
	gutter := strings.Repeat(" ", len(num)) + " | "

	b.WriteString("\n")
	fmt.Fprintf(&b, TagMuted+"%s | "+TagReset+"%s\n", num, tview.Escape(line))
	fmt.Fprintf(&b, TagMuted+"%s"+TagReset+"%s"+TagCaret+"%s"+TagEnd+" %s\n",
		gutter,
		strings.Repeat(" ", e.Column+start-2),
		strings.Repeat("^", end-start+1),
		tview.Escape(label))

	for _, note := range ae.Notes() {
		fmt.Fprintf(&b, "\n"+TagLabel+"note:"+TagValue+" %s", tview.Escape(note))
	}
	for _, help := range ae.Helps() {
		fmt.Fprintf(&b, "\n"+TagSuccess+"help:"+TagValue+" %s", tview.Escape(help))
	}
	return b.String()
}

// WriteListing prints reports as plain text: one block per source with a
// line per finding.
func WriteListing(w io.Writer, reports []*report.Report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Err != nil {
			fmt.Fprintf(w, "%s\n  %s\n", Bold(r.Source), Error(r.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", Bold(r.Source), Dim(fmt.Sprintf("(%d valid of %d found)", r.Valid, r.Found)))
		if len(r.Entries) == 0 {
			fmt.Fprintf(w, "  %s\n", Dim(MsgNoFindings))
			continue
		}
		for _, e := range r.Entries {
			pos := Dim(fmt.Sprintf("%d:%d", e.Line, e.Column))
			if e.Valid {
				fmt.Fprintf(w, "  %s  %s\n", Success(e.Value), pos)
			} else {
				fmt.Fprintf(w, "  %s  %s  %s %s\n", Error(e.Value), pos, Primary(e.Code), e.Reason)
			}
		}
	}
	return nil
}
