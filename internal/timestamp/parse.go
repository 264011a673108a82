package timestamp

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// Zone is the zone designator of a timestamp.
type Zone struct {
	Designator string // "Z", a signed offset like "+03:00", or "" when absent
	Sign       int    // +1 or -1 for numeric offsets, 0 otherwise
	Hours      int
	Minutes    int
}

// IsUTC reports whether the zone is the literal Z.
func (z Zone) IsUTC() bool { return z.Designator == "Z" }

// IsOffset reports whether the zone is a numeric offset.
func (z Zone) IsOffset() bool { return z.Sign != 0 }

// Timestamp is a candidate split into its components.
type Timestamp struct {
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Second   int
	Fraction string // digits after the dot, without the dot
	Zone     Zone
}

// String reassembles the timestamp in the same shape it was parsed from.
func (t Timestamp) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	if t.Fraction != "" {
		s += "." + t.Fraction
	}
	return s + t.Zone.Designator
}

// violation describes the first rule a candidate breaks.
type violation struct {
	code    alerr.Code
	message string
	group   string // named group to point at, "" for the whole candidate
	got     string
	want    string
}

// IsValid reports whether candidate is a valid timestamp. It never panics;
// every kind of failure is reported as false.
func IsValid(candidate string) bool {
	_, _, v := checkMatch(candidate)
	return v == nil
}

// Parse decomposes candidate and validates it. On failure the error is an
// *alerr.Error whose code names the first broken rule, with "value", "got",
// "want" and a span pointing at the offending component.
func Parse(candidate string) (Timestamp, error) {
	m, ts, v := checkMatch(candidate)
	if v == nil {
		return ts, nil
	}

	err := alerr.New(v.code, v.message).WithValue(candidate)
	if v.got != "" {
		err.With("got", v.got)
	}
	if v.want != "" {
		err.With("want", v.want)
	}
	if m != nil && v.group != "" {
		if start, end := groupSpan(m, v.group); start > 0 {
			err.WithSpan(start, end)
		}
	}
	switch v.code {
	case alerr.ErrZoneMissing:
		err.WithNote("a timestamp without Z or a numeric offset is local time and is never accepted")
		err.WithHelp(fmt.Sprintf("write %sZ for UTC or add an offset such as +00:00", candidate))
	case alerr.ErrDayRange:
		if ts.Month == 2 && ts.Day == 29 {
			err.WithNote(fmt.Sprintf("%04d is not a leap year", ts.Year))
		}
	}
	return Timestamp{}, err
}

func checkMatch(candidate string) (*regexp2.Match, Timestamp, *violation) {
	m, err := fullRe.FindStringMatch(candidate)
	if err != nil || m == nil {
		return nil, Timestamp{}, &violation{
			code:    alerr.ErrSyntax,
			message: "does not match the timestamp grammar",
			want:    "YYYY-MM-DDTHH:MM:SS[.ffffff](Z|±HH:MM)",
		}
	}

	ts := Timestamp{
		Year:     atoi(group(m, "year")),
		Month:    atoi(group(m, "month")),
		Day:      atoi(group(m, "day")),
		Hour:     atoi(group(m, "hour")),
		Minute:   atoi(group(m, "minute")),
		Second:   atoi(group(m, "second")),
		Fraction: group(m, "fraction"),
		Zone:     Zone{Designator: group(m, "zone")},
	}

	if v := checkZone(m, &ts.Zone); v != nil {
		return m, ts, v
	}
	if v := checkDate(ts); v != nil {
		return m, ts, v
	}
	if v := checkTime(ts); v != nil {
		return m, ts, v
	}
	return m, ts, nil
}

func checkZone(m *regexp2.Match, z *Zone) *violation {
	switch z.Designator {
	case "":
		return &violation{
			code:    alerr.ErrZoneMissing,
			message: "zone designator missing",
			want:    "Z or ±HH:MM",
		}
	case "Z":
		return nil
	}

	z.Sign = 1
	if group(m, "sign") == "-" {
		z.Sign = -1
	}
	z.Hours = atoi(group(m, "zoneHour"))
	z.Minutes = atoi(group(m, "zoneMinute"))

	if z.Hours > 23 {
		return &violation{
			code:    alerr.ErrOffsetHourRange,
			message: "zone offset hour out of range",
			group:   "zoneHour",
			got:     group(m, "zoneHour"),
			want:    "00-23",
		}
	}
	if z.Minutes > 59 {
		return &violation{
			code:    alerr.ErrOffsetMinuteRange,
			message: "zone offset minute out of range",
			group:   "zoneMinute",
			got:     group(m, "zoneMinute"),
			want:    "00-59",
		}
	}
	return nil
}

// checkDate has no year rule: every four-digit year, 0000 included, is valid.
func checkDate(ts Timestamp) *violation {
	if ts.Month < 1 || ts.Month > 12 {
		return &violation{
			code:    alerr.ErrMonthRange,
			message: "month out of range",
			group:   "month",
			got:     fmt.Sprintf("%02d", ts.Month),
			want:    "01-12",
		}
	}
	if n := DaysIn(ts.Year, ts.Month); ts.Day < 1 || ts.Day > n {
		return &violation{
			code:    alerr.ErrDayRange,
			message: "day out of range for month",
			group:   "day",
			got:     fmt.Sprintf("%02d", ts.Day),
			want:    fmt.Sprintf("01-%02d", n),
		}
	}
	return nil
}

func checkTime(ts Timestamp) *violation {
	fields := []struct {
		value int
		max   int
		group string
		code  alerr.Code
	}{
		{ts.Hour, 23, "hour", alerr.ErrHourRange},
		{ts.Minute, 59, "minute", alerr.ErrMinuteRange},
		{ts.Second, 59, "second", alerr.ErrSecondRange},
	}
	for _, f := range fields {
		if f.value > f.max {
			return &violation{
				code:    f.code,
				message: f.group + " out of range",
				group:   f.group,
				got:     fmt.Sprintf("%02d", f.value),
				want:    fmt.Sprintf("00-%02d", f.max),
			}
		}
	}
	return nil
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month (1-12) of year, or 0 for an invalid month.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// atoi is only called on groups the grammar restricts to ASCII digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
