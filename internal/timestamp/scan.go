package timestamp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Match is a candidate together with where it was found.
// Offsets and columns count runes, not bytes.
type Match struct {
	Value  string
	Start  int // rune offset of the first character
	End    int // rune offset just past the last character
	Line   int // 1-based
	Column int // 1-based
}

// Scan returns every substring of text that has the timestamp shape,
// leftmost first and non-overlapping. Nothing is validated here.
func Scan(text string) []string {
	var out []string
	eachMatch(text, func(m *regexp2.Match) {
		out = append(out, m.String())
	})
	return out
}

// ScanMatches is Scan with positions.
func ScanMatches(text string) []Match {
	var out []Match
	if strings.TrimSpace(text) == "" {
		return out
	}

	runes := []rune(text)
	line, lineStart, pos := 1, 0, 0

	eachMatch(text, func(m *regexp2.Match) {
		for ; pos < m.Index; pos++ {
			if runes[pos] == '\n' {
				line++
				lineStart = pos + 1
			}
		}
		out = append(out, Match{
			Value:  m.String(),
			Start:  m.Index,
			End:    m.Index + m.Length,
			Line:   line,
			Column: m.Index - lineStart + 1,
		})
	})
	return out
}

func eachMatch(text string, fn func(*regexp2.Match)) {
	if strings.TrimSpace(text) == "" {
		return
	}
	m, err := scanRe.FindStringMatch(text)
	for err == nil && m != nil {
		fn(m)
		m, err = scanRe.FindNextMatch(m)
	}
}
