package timestamp

import (
	"strings"
	"testing"
)

// FuzzIsValid checks that validation is total and that every valid string is
// also the single candidate the scanner finds in it.
func FuzzIsValid(f *testing.F) {
	seeds := []string{
		"",
		"12345",
		"hello world",
		"2023-12-25T14:30:00Z",
		"2023-12-25T14:30:00+00:00",
		"2023-12-25T14:30:00.123456-05:00",
		"2023-02-29T00:00:00Z",
		"2023-12-25T14:30:00",
		"9999-99-99T99:99:99+99:99",
		"日本語 2023-12-25T14:30:00Z",
		"2023-12-25T14:30:00Z\n",
		strings.Repeat("2023-", 50),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		valid := IsValid(s)

		_, err := Parse(s)
		if valid != (err == nil) {
			t.Fatalf("IsValid(%q) = %v but Parse error = %v", s, valid, err)
		}

		if valid {
			got := Scan(s)
			if len(got) != 1 || got[0] != s {
				t.Errorf("valid %q scanned as %q", s, got)
			}
		}
	})
}

// FuzzExtractValid checks that extraction only ever returns valid candidates.
func FuzzExtractValid(f *testing.F) {
	f.Add(eventLog)
	f.Add("2023-12-25T14:30:00Z2023-12-25T14:30:00Z")
	f.Add("x 2024-02-29T23:59:59.9+23:59 y")

	f.Fuzz(func(t *testing.T, text string) {
		candidates := Scan(text)
		valid := ExtractValid(text)
		if len(valid) > len(candidates) {
			t.Fatalf("ExtractValid returned %d values from %d candidates", len(valid), len(candidates))
		}
		for _, v := range valid {
			if !IsValid(v) {
				t.Errorf("ExtractValid returned invalid %q", v)
			}
		}
	})
}
