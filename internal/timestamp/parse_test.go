package timestamp

import (
	"fmt"
	"testing"
	"time"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// -----------------------------------------------------------------------------
// IsValid Tests
// -----------------------------------------------------------------------------

func TestIsValid_Valid(t *testing.T) {
	valid := []string{
		"2023-12-25T14:30:00Z",
		"2023-12-25T14:30:00+03:00",
		"2023-12-25T14:30:00-05:00",
		"2023-12-25T14:30:00.123Z",
		"2023-12-25T14:30:00.456789+03:00",
		"2023-12-25T14:30:00.1Z",
		"2023-12-25T00:00:00Z",
		"2023-12-25T23:59:59Z",
		"2023-12-25T14:30:00+00:00", // zero offset, same meaning as Z
		"2023-12-25T14:30:00-23:59",
		"2023-02-28T14:30:00Z",
		"2024-02-29T00:00:00Z",
		"2000-02-29T12:00:00Z",
		// Any four-digit year is accepted, including 0000 (a leap year in the
		// proleptic Gregorian calendar). Parsers with a minimum year of 1,
		// such as Python's datetime, reject it.
		"0000-01-01T00:00:00Z",
		"0000-02-29T00:00:00Z",
		"9999-12-31T23:59:59.999999Z",
	}

	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if !IsValid(s) {
				t.Errorf("IsValid(%q) = false, want true", s)
			}
		})
	}
}

func TestIsValid_Invalid(t *testing.T) {
	invalid := []string{
		"2023-12-25 14:30:00",       // space instead of T
		"2023-12-25T14:30:00",       // no zone
		"2023-12-25T14:30:00.123",   // no zone, with fraction
		"2023-12-25T25:30:00Z",      // hour 25
		"2023-12-25T24:00:00Z",      // hour 24
		"2023-12-25T14:60:00Z",      // minute 60
		"2023-12-25T14:30:99Z",      // second 99
		"2023-12-25T23:59:60Z",      // no leap seconds
		"2023-13-25T14:30:00Z",      // month 13
		"2023-00-25T14:30:00Z",      // month 0
		"2023-12-32T14:30:00Z",      // day 32
		"2023-12-00T14:30:00Z",      // day 0
		"2023-12-25T14:30:00+25:00", // zone hour 25
		"2023-12-25T14:30:00+24:00", // zone hour 24
		"2023-12-25T14:30:00+00:60", // zone minute 60
		"2023-02-29T00:00:00Z",      // 2023 is not a leap year
		"1900-02-29T00:00:00Z",      // century, not a leap year
		"2023-02-30T14:30:00Z",
		"2023-04-31T14:30:00Z",
		"2023-12-25T14:30:00.1234567Z", // fraction longer than 6 digits
		"2023-12-25T14:30:00+0300",     // offset without colon
		"2023/12/25T14:30:00Z",
		"2023-12-25t14:30:00Z",
		"2023-12-25T14:30:00z",
		" 2023-12-25T14:30:00Z",
		"2023-12-25T14:30:00Z ",
		"2023-12-25T14:30:00Z\n",
		"2023-12-25T14:30:00+03:00\n",
		"hello world",
		"12345",
		"",
		"２０２３-12-25T14:30:00Z", // fullwidth digits
	}

	for _, s := range invalid {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			if IsValid(s) {
				t.Errorf("IsValid(%q) = true, want false", s)
			}
		})
	}
}

func TestIsValid_AllCalendarDays(t *testing.T) {
	// Every day of a leap year and the years around it, at both ends of the clock.
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		for _, s := range []string{
			d.Format("2006-01-02") + "T00:00:00Z",
			d.Format("2006-01-02") + "T23:59:59.5+14:00",
		} {
			if !IsValid(s) {
				t.Errorf("IsValid(%q) = false, want true", s)
			}
		}
	}
}

func TestIsValid_AllTimesAndOffsets(t *testing.T) {
	for h := 0; h < 24; h++ {
		for mi := 0; mi < 60; mi++ {
			s := fmt.Sprintf("2023-06-15T%02d:%02d:%02dZ", h, mi, mi)
			if !IsValid(s) {
				t.Errorf("IsValid(%q) = false, want true", s)
			}
			for _, sign := range []string{"+", "-"} {
				s := fmt.Sprintf("2023-06-15T12:00:00%s%02d:%02d", sign, h, mi)
				if !IsValid(s) {
					t.Errorf("IsValid(%q) = false, want true", s)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Parse Tests
// -----------------------------------------------------------------------------

func TestParse_Components(t *testing.T) {
	ts, err := Parse("2023-12-25T15:45:07.250-05:30")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Timestamp{
		Year: 2023, Month: 12, Day: 25,
		Hour: 15, Minute: 45, Second: 7,
		Fraction: "250",
		Zone:     Zone{Designator: "-05:30", Sign: -1, Hours: 5, Minutes: 30},
	}
	if ts != want {
		t.Errorf("Parse() = %+v, want %+v", ts, want)
	}
	if got := ts.String(); got != "2023-12-25T15:45:07.250-05:30" {
		t.Errorf("String() = %q", got)
	}
	if ts.Zone.IsUTC() || !ts.Zone.IsOffset() {
		t.Error("zone should be a numeric offset")
	}
}

func TestParse_UTC(t *testing.T) {
	ts, err := Parse("2023-12-25T14:30:00Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !ts.Zone.IsUTC() || ts.Zone.IsOffset() {
		t.Errorf("zone = %+v, want UTC", ts.Zone)
	}
	if ts.Fraction != "" {
		t.Errorf("fraction = %q, want empty", ts.Fraction)
	}
}

func TestParse_ErrorCodes(t *testing.T) {
	tests := []struct {
		input     string
		code      alerr.Code
		spanStart int
		spanEnd   int
	}{
		{"not a timestamp", alerr.ErrSyntax, 0, 0},
		{"2023-12-25T14:30:00", alerr.ErrZoneMissing, 0, 0},
		{"2023-13-25T14:30:00Z", alerr.ErrMonthRange, 6, 7},
		{"2023-04-31T14:30:00Z", alerr.ErrDayRange, 9, 10},
		{"2023-12-25T25:30:00Z", alerr.ErrHourRange, 12, 13},
		{"2023-12-25T14:60:00Z", alerr.ErrMinuteRange, 15, 16},
		{"2023-12-25T14:30:99Z", alerr.ErrSecondRange, 18, 19},
		{"2023-12-25T14:30:00+25:00", alerr.ErrOffsetHourRange, 21, 22},
		{"2023-12-25T14:30:00.5-00:60", alerr.ErrOffsetMinuteRange, 26, 27},
		// zone is checked before the date
		{"2023-13-25T14:30:00+25:00", alerr.ErrOffsetHourRange, 21, 22},
		// date is checked before the time
		{"2023-02-30T25:30:00Z", alerr.ErrDayRange, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want %s", tt.input, tt.code)
			}
			if !alerr.Is(err, tt.code) {
				t.Fatalf("Parse(%q) code = %s, want %s", tt.input, alerr.GetErrorCode(err), tt.code)
			}

			ctx := err.(*alerr.Error).GetContext()
			if ctx["value"] != tt.input {
				t.Errorf("value = %v, want %q", ctx["value"], tt.input)
			}
			start, _ := ctx["span_start"].(int)
			end, _ := ctx["span_end"].(int)
			if start != tt.spanStart || end != tt.spanEnd {
				t.Errorf("span = %d-%d, want %d-%d", start, end, tt.spanStart, tt.spanEnd)
			}
		})
	}
}

func TestParse_RangeContext(t *testing.T) {
	_, err := Parse("2023-04-31T14:30:00Z")
	ctx := err.(*alerr.Error).GetContext()

	if ctx["got"] != "31" {
		t.Errorf("got = %v, want 31", ctx["got"])
	}
	if ctx["want"] != "01-30" {
		t.Errorf("want = %v, want 01-30", ctx["want"])
	}
}

func TestParse_Notes(t *testing.T) {
	t.Run("non-leap february", func(t *testing.T) {
		_, err := Parse("2023-02-29T00:00:00Z")
		notes := err.(*alerr.Error).Notes()
		if len(notes) != 1 || notes[0] != "2023 is not a leap year" {
			t.Errorf("notes = %v", notes)
		}
	})

	t.Run("missing zone", func(t *testing.T) {
		_, err := Parse("2023-12-25T14:30:00")
		e := err.(*alerr.Error)
		if len(e.Notes()) != 1 {
			t.Errorf("notes = %v, want one note", e.Notes())
		}
		if len(e.Helps()) != 1 {
			t.Errorf("helps = %v, want one help", e.Helps())
		}
	})
}

func TestParse_AgreesWithIsValid(t *testing.T) {
	inputs := []string{
		"2023-12-25T14:30:00Z",
		"2023-12-25T14:30:00",
		"2023-02-29T00:00:00Z",
		"2024-02-29T00:00:00Z",
		"2023-12-25T14:30:00+23:59",
		"2023-12-25T14:30:00+23:60",
		"garbage",
	}
	for _, s := range inputs {
		_, err := Parse(s)
		if (err == nil) != IsValid(s) {
			t.Errorf("Parse(%q) error = %v but IsValid = %v", s, err, IsValid(s))
		}
	}
}

// -----------------------------------------------------------------------------
// Calendar Tests
// -----------------------------------------------------------------------------

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2023, false},
		{2024, true},
		{1900, false},
		{2000, true},
		{2100, false},
		{0, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{2023, 4, 30},
		{2023, 12, 31},
		{2023, 0, 0},
		{2023, 13, 0},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
