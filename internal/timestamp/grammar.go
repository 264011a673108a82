// Package timestamp finds and validates UTC-style ISO-8601 timestamps in text.
//
// The accepted shape is
//
//	YYYY-MM-DDTHH:MM:SS[.f{1,6}][Z|±HH:MM]
//
// Scanning is purely lexical: anything with that shape is a candidate. Validation
// then decomposes a candidate through the grammar's named groups and checks the
// calendar, the time of day and the zone offset. A candidate without a zone
// designator is never valid.
//
// All functions are pure and safe for concurrent use.
package timestamp

import (
	"github.com/dlclark/regexp2"
)

// body is the shared grammar. Digits are ASCII only; the surrounding anchors
// decide whether it is used for scanning or for a strict full match.
const body = `(?<year>[0-9]{4})-(?<month>[0-9]{2})-(?<day>[0-9]{2})` +
	`T(?<hour>[0-9]{2}):(?<minute>[0-9]{2}):(?<second>[0-9]{2})` +
	`(?:\.(?<fraction>[0-9]{1,6}))?` +
	`(?<zone>Z|(?<sign>[+-])(?<zoneHour>[0-9]{2}):(?<zoneMinute>[0-9]{2}))?`

// Pattern is the scanning grammar. \b uses Unicode word characters, so a
// timestamp glued to a letter such as "é" or to "_" is not a candidate.
const Pattern = `\b` + body + `\b`

var (
	scanRe = regexp2.MustCompile(Pattern, regexp2.None)
	fullRe = regexp2.MustCompile(`\A`+body+`\z`, regexp2.None)
)

// group returns the text captured by a named group, or "" if it did not participate.
func group(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// groupSpan returns the 1-based inclusive rune span of a named group within the match.
func groupSpan(m *regexp2.Match, name string) (start, end int) {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return 0, 0
	}
	start = g.Index - m.Index + 1
	return start, start + g.Length - 1
}
