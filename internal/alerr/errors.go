// Package alerr defines utccheck's coded errors. A code names one failure
// (E2003 is always "hour out of range") and stays stable across releases, so
// scripts can match on it; the context map holds what the CLI needs to draw
// a diagnostic.
package alerr

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Code identifies one kind of failure: E, a category digit, three digits.
type Code string

const (
	// Syntax errors (E1xxx) - candidate does not have the timestamp shape
	ErrSyntax      Code = "E1001" // Does not match the timestamp grammar
	ErrZoneMissing Code = "E1002" // No Z or numeric offset after the time

	// Range errors (E2xxx) - candidate has the shape but impossible values
	ErrMonthRange        Code = "E2001" // Month outside 01-12
	ErrDayRange          Code = "E2002" // Day outside the month's length
	ErrHourRange         Code = "E2003" // Hour outside 00-23
	ErrMinuteRange       Code = "E2004" // Minute outside 00-59
	ErrSecondRange       Code = "E2005" // Second outside 00-59
	ErrOffsetHourRange   Code = "E2006" // Zone offset hour outside 00-23
	ErrOffsetMinuteRange Code = "E2007" // Zone offset minute outside 00-59

	// Source errors (E3xxx) - problems loading the text to scan
	ErrFileNotFound Code = "E3001" // File does not exist
	ErrFileRead     Code = "E3002" // File exists but could not be read
	ErrFetch        Code = "E3003" // HTTP request failed (network, timeout)
	ErrFetchStatus  Code = "E3004" // HTTP response status is not 2xx
	ErrInvalidURL   Code = "E3005" // URL is malformed or not http(s)
	ErrHTMLExtract  Code = "E3006" // HTML body could not be reduced to text

	// Config errors (E4xxx) - problems with utccheck.yaml or flags
	ErrConfigParse   Code = "E4001" // Config file is not valid YAML
	ErrConfigInvalid Code = "E4002" // Config value fails validation
	ErrInvalidChoice Code = "E4003" // Menu answer matches no option

	// Internal errors (E9xxx) - unexpected internal errors
	EInternalError Code = "E9001" // Internal error
)

// Error carries a Code, a one-line message, and the details a diagnostic
// needs: where the problem is, what was found, and how to fix it.
type Error struct {
	code    Code
	message string
	context map[string]any
	cause   error
}

// Error renders the code and message followed by one "key: value" line per
// context entry, sorted by key, and the cause if any:
//
//	[E2003] hour out of range
//	  got: 25
//	  value: 2023-12-25T25:30:00Z
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.code, e.message)
	for _, k := range slices.Sorted(maps.Keys(e.context)) {
		fmt.Fprintf(&b, "\n  %s: %v", k, e.context[k])
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\n  cause: %v", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code, so errors.Is(err, New(code, ""))
// works as a code check.
func (e *Error) Is(target error) bool {
	var other *Error
	return target != nil && errors.As(target, &other) && other.code == e.code
}

func (e *Error) GetCode() Code              { return e.code }
func (e *Error) GetMessage() string         { return e.message }
func (e *Error) GetContext() map[string]any { return e.context }
func (e *Error) GetCause() error            { return e.cause }

// With sets a context entry and returns e for chaining.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithValue records the offending candidate.
func (e *Error) WithValue(value string) *Error {
	return e.With("value", value)
}

// WithFile records the file (and line, when positive) the error refers to.
func (e *Error) WithFile(path string, line int) *Error {
	return e.WithLocation(path, line, 0)
}

// WithLocation records file, line and column. Zero line or column is left unset.
func (e *Error) WithLocation(file string, line, col int) *Error {
	e.With("file", file)
	if line > 0 {
		e.With("line", line)
	}
	if col > 0 {
		e.With("column", col)
	}
	return e
}

// WithSource records the full text of the line at the error's location.
func (e *Error) WithSource(line string) *Error {
	return e.With("source", line)
}

// WithSpan records the 1-based inclusive columns to underline.
func (e *Error) WithSpan(start, end int) *Error {
	e.With("span_start", start)
	return e.With("span_end", end)
}

// WithLabel records the text printed after the underline.
func (e *Error) WithLabel(label string) *Error {
	return e.With("label", label)
}

// WithNote appends a "note:" line.
func (e *Error) WithNote(note string) *Error {
	return e.With("notes", append(e.Notes(), note))
}

// WithHelp appends a "help:" line.
func (e *Error) WithHelp(help string) *Error {
	return e.With("helps", append(e.Helps(), help))
}

// Location returns what WithLocation recorded; ok is false without a file.
func (e *Error) Location() (file string, line, col int, ok bool) {
	file, _ = e.context["file"].(string)
	line, _ = e.context["line"].(int)
	col, _ = e.context["column"].(int)
	return file, line, col, file != ""
}

func (e *Error) Notes() []string {
	notes, _ := e.context["notes"].([]string)
	return notes
}

func (e *Error) Helps() []string {
	helps, _ := e.context["helps"].([]string)
	return helps
}

// New returns an error with code and msg.
func New(code Code, msg string) *Error {
	return &Error{code: code, message: msg, context: make(map[string]any)}
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns an error with code and msg whose cause is err. A nil err
// gives the same result as New.
func Wrap(code Code, err error, msg string) *Error {
	e := New(code, msg)
	e.cause = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// GetErrorCode returns the code of the first *Error in err's chain, or "".
func GetErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// Is reports whether err's chain holds an *Error with code.
func Is(err error, code Code) bool {
	return GetErrorCode(err) == code
}
