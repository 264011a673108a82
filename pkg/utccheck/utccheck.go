// Package utccheck provides the public API for finding and validating
// UTC ISO-8601 timestamps such as 2023-12-25T14:30:00Z or
// 2023-12-25T14:30:00.250+02:00.
//
// A timestamp is valid when it has the exact shape
// YYYY-MM-DDTHH:MM:SS[.f{1,6}](Z|±HH:MM), names a real calendar date
// (Gregorian leap years included), a time of day without leap seconds, and
// carries a zone designator. All functions are pure and safe for
// concurrent use.
//
// Example:
//
//	for _, ts := range utccheck.ExtractValid(logText) {
//	    fmt.Println(ts)
//	}
//
//	if err := utccheck.Check("2023-02-29T00:00:00Z"); err != nil {
//	    fmt.Println(err) // utccheck: "2023-02-29T00:00:00Z" is invalid: day out of range for month [E2002]
//	}
package utccheck

import (
	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/timestamp"
)

// IsValid reports whether candidate, taken as a whole, is a valid timestamp.
// It never panics; any malformed input is simply invalid.
func IsValid(candidate string) bool {
	return timestamp.IsValid(candidate)
}

// ExtractValid returns the valid timestamps found in text, in order of
// appearance. Repeated timestamps are kept; the result is empty when text
// has none.
func ExtractValid(text string) []string {
	return timestamp.ExtractValid(text)
}

// Scan returns every substring of text shaped like a timestamp, valid or
// not. Use it with Check to see why candidates were rejected.
func Scan(text string) []string {
	return timestamp.Scan(text)
}

// Check validates candidate and returns nil or a *ValidationError naming
// the first rule it breaks.
func Check(candidate string) error {
	_, err := timestamp.Parse(candidate)
	if err == nil {
		return nil
	}

	verr := &ValidationError{Candidate: candidate, Cause: err}
	if ae, ok := err.(*alerr.Error); ok {
		verr.Code = string(ae.GetCode())
		verr.Reason = ae.GetMessage()
	}
	return verr
}
