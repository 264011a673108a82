package timestamp

// Finding is a scanned candidate with its verdict.
type Finding struct {
	Match
	Err error // nil when the candidate is valid; an *alerr.Error otherwise
}

// Valid reports whether the candidate passed validation.
func (f Finding) Valid() bool { return f.Err == nil }

// ExtractValid returns the valid timestamps in text in order of appearance.
// Repeated values are kept.
func ExtractValid(text string) []string {
	var out []string
	for _, c := range Scan(text) {
		if IsValid(c) {
			out = append(out, c)
		}
	}
	return out
}

// Classify returns every candidate in text with its position and verdict.
func Classify(text string) []Finding {
	matches := ScanMatches(text)
	out := make([]Finding, 0, len(matches))
	for _, m := range matches {
		_, err := Parse(m.Value)
		out = append(out, Finding{Match: m, Err: err})
	}
	return out
}

// Count returns how many findings are valid.
func Count(findings []Finding) (valid int) {
	for _, f := range findings {
		if f.Valid() {
			valid++
		}
	}
	return valid
}
