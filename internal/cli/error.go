package cli

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// MessageType represents the type of diagnostic message.
type MessageType int

const (
	TypeError MessageType = iota
	TypeWarning
	TypeNote
)

// DiagnosticMessage is a single diagnostic with optional source context.
type DiagnosticMessage struct {
	Type    MessageType
	Code    string // error code like "E2003" (empty for warnings and notes)
	Message string
	File    string
	Line    int
	Column  int
	Source  string   // the source line
	Span    [2]int   // 1-based inclusive columns to underline
	Label   string   // shown after the pointer
	Notes   []string // additional notes
	Helps   []string // help suggestions
}

// FormatError formats an error for display in rustc style.
// An *alerr.Error shows its code, location, context, notes, helps and cause;
// any other error is printed as a single line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := err.(*alerr.Error); ok {
		return formatCodedError(ae)
	}
	return formatGenericError(err)
}

// shown elsewhere in the diagnostic, not as "key: value" details
var excludeKeys = map[string]bool{
	"file": true, "line": true, "column": true,
	"source": true, "span_start": true, "span_end": true,
	"notes": true, "helps": true, "label": true,
}

func formatCodedError(err *alerr.Error) string {
	var b strings.Builder

	ctx := err.GetContext()
	file, line, col, _ := err.Location()

	b.WriteString(Error("error"))
	b.WriteString("[")
	b.WriteString(Code(string(err.GetCode())))
	b.WriteString("]: ")
	b.WriteString(err.GetMessage())
	b.WriteString("\n")

	if file != "" {
		b.WriteString(RenderFileHeader(file, line, col))
	}

	source, hasSource := ctx["source"].(string)
	hasSource = hasSource && line > 0
	if hasSource {
		spanStart, _ := ctx["span_start"].(int)
		spanEnd, _ := ctx["span_end"].(int)
		label, _ := ctx["label"].(string)
		b.WriteString(formatSourceContext(line, source, col, [2]int{spanStart, spanEnd}, label))
	}

	var keys []string
	for k := range ctx {
		if !excludeKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if len(keys) > 0 && !hasSource {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		for _, k := range keys {
			b.WriteString("   ")
			b.WriteString(Pipe())
			b.WriteString(" ")
			fmt.Fprintf(&b, "%s: %v", k, ctx[k])
			b.WriteString("\n")
		}
	}

	writeNotes(&b, err.Notes())
	writeHelps(&b, err.Helps())

	if cause := err.GetCause(); cause != nil {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		b.WriteString(Note("cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	return b.String()
}

// Explain renders why the candidate found at line:col of file was rejected.
// lineText is the whole line the candidate sits on; the pointer is placed
// under the offending component, or under the whole candidate when the
// error does not narrow it down. The location is recorded on err itself.
func Explain(file string, line, col int, lineText string, err error) string {
	ae, ok := err.(*alerr.Error)
	if !ok {
		return FormatError(err)
	}

	start, end, label := PointerSpan(ae)
	ae.WithLocation(file, line, col).
		WithSource(lineText).
		WithSpan(col+start-1, col+end-1).
		WithLabel(label)
	return formatCodedError(ae)
}

// PointerSpan returns the 1-based inclusive rune span inside the candidate
// that a validation error points at, and a "got X, expected Y" label.
// Without a recorded span the whole candidate is covered.
func PointerSpan(err *alerr.Error) (start, end int, label string) {
	ctx := err.GetContext()

	start, _ = ctx["span_start"].(int)
	end, _ = ctx["span_end"].(int)
	if start == 0 {
		value, _ := ctx["value"].(string)
		start, end = 1, max(1, utf8.RuneCountInString(value))
	}

	got, _ := ctx["got"].(string)
	want, _ := ctx["want"].(string)
	switch {
	case got != "" && want != "":
		label = fmt.Sprintf("got %s, expected %s", got, want)
	case want != "":
		label = "expected " + want
	}
	return start, end, label
}

// formatSourceContext renders a source line with its number and a pointer
// under the span. span holds 1-based inclusive columns; when it is empty the
// pointer falls back to col.
func formatSourceContext(line int, source string, col int, span [2]int, label string) string {
	var b strings.Builder

	lineStr := fmt.Sprintf("%d", line)
	padding := strings.Repeat(" ", len(lineStr))

	// Tabs would shift the pointer; one space per rune keeps columns aligned.
	source = strings.ReplaceAll(source, "\t", " ")

	b.WriteString(padding)
	b.WriteString(" ")
	b.WriteString(Pipe())
	b.WriteString("\n")

	b.WriteString(LineNum(lineStr))
	b.WriteString(" ")
	b.WriteString(Pipe())
	b.WriteString(" ")
	b.WriteString(source)
	b.WriteString("\n")

	start, end := span[0], span[1]
	if start == 0 {
		start = col
	}
	if start > 0 {
		if end < start {
			end = start
		}
		b.WriteString(padding)
		b.WriteString(" ")
		b.WriteString(Pipe())
		b.WriteString(" ")
		b.WriteString(strings.Repeat(" ", start-1))
		b.WriteString(Pointer(strings.Repeat("^", end-start+1)))
		if label != "" {
			b.WriteString(" ")
			b.WriteString(label)
		}
		b.WriteString("\n")

		b.WriteString(padding)
		b.WriteString(" ")
		b.WriteString(Pipe())
		b.WriteString("\n")
	}

	return b.String()
}

func formatGenericError(err error) string {
	return Error("error") + ": " + err.Error() + "\n"
}

// FormatWarning formats a warning message in rustc style.
func FormatWarning(msg string, opts ...DiagnosticOption) string {
	diag := &DiagnosticMessage{
		Type:    TypeWarning,
		Message: msg,
	}
	for _, opt := range opts {
		opt(diag)
	}
	return formatDiagnostic(diag)
}

// FormatNote formats a standalone note line.
func FormatNote(msg string) string {
	return Note("note") + ": " + msg + "\n"
}

// DiagnosticOption configures a diagnostic message.
type DiagnosticOption func(*DiagnosticMessage)

// WithFile sets the file location for a diagnostic.
func WithFile(file string, line, col int) DiagnosticOption {
	return func(d *DiagnosticMessage) {
		d.File = file
		d.Line = line
		d.Column = col
	}
}

// WithHelps adds help suggestions to a diagnostic.
func WithHelps(helps ...string) DiagnosticOption {
	return func(d *DiagnosticMessage) {
		d.Helps = append(d.Helps, helps...)
	}
}

func formatDiagnostic(d *DiagnosticMessage) string {
	var b strings.Builder

	switch d.Type {
	case TypeError:
		b.WriteString(Error("error"))
		if d.Code != "" {
			b.WriteString("[")
			b.WriteString(Code(d.Code))
			b.WriteString("]")
		}
	case TypeWarning:
		b.WriteString(Warning("warning"))
	case TypeNote:
		b.WriteString(Note("note"))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString("\n")

	if d.File != "" {
		b.WriteString(RenderFileHeader(d.File, d.Line, d.Column))
	}
	if d.Source != "" && d.Line > 0 {
		b.WriteString(formatSourceContext(d.Line, d.Source, d.Column, d.Span, d.Label))
	}

	writeNotes(&b, d.Notes)
	writeHelps(&b, d.Helps)
	return b.String()
}

func writeNotes(b *strings.Builder, notes []string) {
	for _, note := range notes {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		b.WriteString(Note("note"))
		b.WriteString(": ")
		b.WriteString(note)
		b.WriteString("\n")
	}
}

func writeHelps(b *strings.Builder, helps []string) {
	for _, help := range helps {
		b.WriteString(Help("help"))
		b.WriteString(": ")
		b.WriteString(help)
		b.WriteString("\n")
	}
}

// RenderFileHeader renders the location line, e.g. "  --> events.log:3:6".
func RenderFileHeader(file string, line, col int) string {
	loc := file
	if line > 0 {
		loc = fmt.Sprintf("%s:%d", file, line)
		if col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", file, line, col)
		}
	}
	return "  " + Arrow() + " " + FilePath(loc) + "\n"
}
