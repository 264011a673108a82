package alerr

import (
	"errors"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Constructor Tests
// -----------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{
			name:    "syntax error",
			code:    ErrSyntax,
			message: "does not match the timestamp grammar",
		},
		{
			name:    "range error",
			code:    ErrHourRange,
			message: "hour out of range",
		},
		{
			name:    "source error",
			code:    ErrFileNotFound,
			message: "file not found",
		},
		{
			name:    "config error",
			code:    ErrConfigInvalid,
			message: "fetch_timeout must be positive",
		},
		{
			name:    "internal error",
			code:    EInternalError,
			message: "unexpected state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.GetCode() != tt.code {
				t.Errorf("code = %v, want %v", err.GetCode(), tt.code)
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %v, want %v", err.GetMessage(), tt.message)
			}
			if err.GetCause() != nil {
				t.Error("expected nil cause for New()")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap existing error", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Wrap(ErrFileRead, cause, "failed to read file")

		if err.GetCode() != ErrFileRead {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrFileRead)
		}
		if err.GetCause() != cause {
			t.Error("cause should be the wrapped error")
		}
		if err.GetMessage() != "failed to read file" {
			t.Errorf("message = %v, want %v", err.GetMessage(), "failed to read file")
		}
	})

	t.Run("wrap nil error behaves like New", func(t *testing.T) {
		err := Wrap(ErrSyntax, nil, "syntax error")

		if err.GetCode() != ErrSyntax {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrSyntax)
		}
		if err.GetCause() != nil {
			t.Error("cause should be nil when wrapping nil")
		}
	})
}

func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(ErrFetch, cause, "failed to fetch %s after %d attempts", "http://localhost", 1)

	expected := "failed to fetch http://localhost after 1 attempts"
	if err.GetMessage() != expected {
		t.Errorf("message = %v, want %v", err.GetMessage(), expected)
	}
	if err.GetCause() != cause {
		t.Error("cause should be preserved")
	}
}

// -----------------------------------------------------------------------------
// Context Builder Tests
// -----------------------------------------------------------------------------

func TestWith(t *testing.T) {
	err := New(ErrSyntax, "invalid candidate").
		With("key1", "value1").
		With("key2", 42).
		With("key3", true)

	ctx := err.GetContext()
	if ctx["key1"] != "value1" {
		t.Errorf("key1 = %v, want %v", ctx["key1"], "value1")
	}
	if ctx["key2"] != 42 {
		t.Errorf("key2 = %v, want %v", ctx["key2"], 42)
	}
	if ctx["key3"] != true {
		t.Errorf("key3 = %v, want %v", ctx["key3"], true)
	}
}

func TestWithValue(t *testing.T) {
	err := New(ErrHourRange, "hour out of range").
		WithValue("2023-12-25T25:30:00Z")

	ctx := err.GetContext()
	if ctx["value"] != "2023-12-25T25:30:00Z" {
		t.Errorf("value = %v, want %v", ctx["value"], "2023-12-25T25:30:00Z")
	}
}

func TestWithFile(t *testing.T) {
	t.Run("with line number", func(t *testing.T) {
		err := New(ErrDayRange, "day out of range").
			WithFile("logs/events.log", 42)

		ctx := err.GetContext()
		if ctx["file"] != "logs/events.log" {
			t.Errorf("file = %v, want %v", ctx["file"], "logs/events.log")
		}
		if ctx["line"] != 42 {
			t.Errorf("line = %v, want %v", ctx["line"], 42)
		}
	})

	t.Run("without line number", func(t *testing.T) {
		err := New(ErrFileNotFound, "file not found").
			WithFile("logs/events.log", 0)

		ctx := err.GetContext()
		if ctx["file"] != "logs/events.log" {
			t.Errorf("file = %v, want %v", ctx["file"], "logs/events.log")
		}
		if _, exists := ctx["line"]; exists {
			t.Error("line should not be set when 0")
		}
	})
}

func TestWithNoteAndHelp(t *testing.T) {
	err := New(ErrZoneMissing, "zone designator missing").
		WithNote("a timestamp without Z or an offset is local time").
		WithNote("local times are never accepted").
		WithHelp("append Z for UTC")

	if got := len(err.Notes()); got != 2 {
		t.Errorf("notes = %d, want 2", got)
	}
	if got := err.Helps(); len(got) != 1 || got[0] != "append Z for UTC" {
		t.Errorf("helps = %v, want [append Z for UTC]", got)
	}
}

func TestLocation(t *testing.T) {
	err := New(ErrMonthRange, "month out of range").
		WithLocation("app.log", 3, 17)

	file, line, col, ok := err.Location()
	if !ok {
		t.Fatal("expected location to be set")
	}
	if file != "app.log" || line != 3 || col != 17 {
		t.Errorf("Location() = %s:%d:%d, want app.log:3:17", file, line, col)
	}
}

// -----------------------------------------------------------------------------
// Error Output Format Tests
// -----------------------------------------------------------------------------

func TestErrorFormat(t *testing.T) {
	t.Run("basic error format", func(t *testing.T) {
		err := New(ErrHourRange, "hour out of range")
		errStr := err.Error()

		if !strings.HasPrefix(errStr, "[E2003]") {
			t.Errorf("error should start with code, got: %s", errStr)
		}
		if !strings.Contains(errStr, "hour out of range") {
			t.Errorf("error should contain message, got: %s", errStr)
		}
	})

	t.Run("error with context", func(t *testing.T) {
		err := New(ErrHourRange, "hour out of range").
			WithValue("2023-12-25T25:30:00Z").
			With("got", 25).
			With("want", "00-23")

		errStr := err.Error()

		if !strings.Contains(errStr, "[E2003]") {
			t.Errorf("error should contain code, got: %s", errStr)
		}
		if !strings.Contains(errStr, "value: 2023-12-25T25:30:00Z") {
			t.Errorf("error should contain value context, got: %s", errStr)
		}
		if !strings.Contains(errStr, "got: 25") {
			t.Errorf("error should contain 'got' context, got: %s", errStr)
		}
		if !strings.Contains(errStr, "want: 00-23") {
			t.Errorf("error should contain 'want' context, got: %s", errStr)
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := Wrap(ErrFetch, cause, "failed to fetch page")

		errStr := err.Error()
		if !strings.Contains(errStr, "cause: context deadline exceeded") {
			t.Errorf("error should contain cause, got: %s", errStr)
		}
	})

	t.Run("context keys are sorted", func(t *testing.T) {
		err := New(ErrSyntax, "test").
			With("zebra", 1).
			With("alpha", 2).
			With("middle", 3)

		errStr := err.Error()
		alphaIdx := strings.Index(errStr, "alpha:")
		middleIdx := strings.Index(errStr, "middle:")
		zebraIdx := strings.Index(errStr, "zebra:")

		if alphaIdx == -1 || middleIdx == -1 || zebraIdx == -1 {
			t.Fatalf("expected all keys to be present, got: %s", errStr)
		}
		if !(alphaIdx < middleIdx && middleIdx < zebraIdx) {
			t.Errorf("context keys should be sorted alphabetically, got: %s", errStr)
		}
	})
}

// -----------------------------------------------------------------------------
// Is() and errors.Is() Tests
// -----------------------------------------------------------------------------

func TestIs(t *testing.T) {
	t.Run("same code matches", func(t *testing.T) {
		err1 := New(ErrDayRange, "first error")
		err2 := New(ErrDayRange, "second error with same code")

		if !err1.Is(err2) {
			t.Error("errors with same code should match")
		}
	})

	t.Run("different codes do not match", func(t *testing.T) {
		err1 := New(ErrDayRange, "day error")
		err2 := New(ErrMonthRange, "month error")

		if err1.Is(err2) {
			t.Error("errors with different codes should not match")
		}
	})

	t.Run("nil target does not match", func(t *testing.T) {
		err := New(ErrSyntax, "error")
		if err.Is(nil) {
			t.Error("error should not match nil")
		}
	})

	t.Run("non-alerr error does not match", func(t *testing.T) {
		err := New(ErrSyntax, "utccheck error")
		stdErr := errors.New("standard error")

		if err.Is(stdErr) {
			t.Error("utccheck error should not match standard error")
		}
	})
}

func TestErrorsIsCompatibility(t *testing.T) {
	t.Run("errors.Is finds wrapped error", func(t *testing.T) {
		cause := errors.New("original error")
		wrapped := Wrap(ErrFileRead, cause, "wrapped")

		if !errors.Is(wrapped, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("errors.Is works with code matching", func(t *testing.T) {
		err1 := New(ErrFetchStatus, "error 1")
		err2 := New(ErrFetchStatus, "error 2")

		if !errors.Is(err1, err2) {
			t.Error("errors.Is should match errors with same code")
		}
	})
}

// -----------------------------------------------------------------------------
// GetErrorCode Tests
// -----------------------------------------------------------------------------

func TestGetErrorCode(t *testing.T) {
	t.Run("extract code from alerr.Error", func(t *testing.T) {
		err := New(ErrOffsetHourRange, "zone offset hour out of range")
		code := GetErrorCode(err)

		if code != ErrOffsetHourRange {
			t.Errorf("code = %v, want %v", code, ErrOffsetHourRange)
		}
	})

	t.Run("extract code from wrapped error chain", func(t *testing.T) {
		inner := New(ErrFileRead, "inner")
		outer := Wrap(ErrConfigParse, inner, "outer")

		code := GetErrorCode(outer)
		if code != ErrConfigParse {
			t.Errorf("code = %v, want %v", code, ErrConfigParse)
		}
	})

	t.Run("return empty for nil error", func(t *testing.T) {
		code := GetErrorCode(nil)
		if code != "" {
			t.Errorf("code = %v, want empty string", code)
		}
	})

	t.Run("return empty for non-alerr error", func(t *testing.T) {
		stdErr := errors.New("standard error")
		code := GetErrorCode(stdErr)

		if code != "" {
			t.Errorf("code = %v, want empty string", code)
		}
	})
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrZoneMissing, "test"),
			code: ErrZoneMissing,
			want: true,
		},
		{
			name: "non-matching code",
			err:  New(ErrZoneMissing, "test"),
			code: ErrSyntax,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrSyntax,
			want: false,
		},
		{
			name: "standard error",
			err:  errors.New("standard"),
			code: ErrSyntax,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Is(tt.err, tt.code)
			if got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Error Code Categories Tests
// -----------------------------------------------------------------------------

func TestErrorCodeCategories(t *testing.T) {
	categories := []struct {
		prefix string
		codes  []Code
	}{
		{"E1", []Code{ErrSyntax, ErrZoneMissing}},
		{"E2", []Code{ErrMonthRange, ErrDayRange, ErrHourRange, ErrMinuteRange, ErrSecondRange, ErrOffsetHourRange, ErrOffsetMinuteRange}},
		{"E3", []Code{ErrFileNotFound, ErrFileRead, ErrFetch, ErrFetchStatus, ErrInvalidURL, ErrHTMLExtract}},
		{"E4", []Code{ErrConfigParse, ErrConfigInvalid, ErrInvalidChoice}},
		{"E9", []Code{EInternalError}},
	}

	seen := make(map[Code]bool)
	for _, cat := range categories {
		for _, code := range cat.codes {
			if !strings.HasPrefix(string(code), cat.prefix) {
				t.Errorf("error %v should start with %s", code, cat.prefix)
			}
			if seen[code] {
				t.Errorf("duplicate error code %v", code)
			}
			seen[code] = true
		}
	}
}

// -----------------------------------------------------------------------------
// Method Chaining Tests
// -----------------------------------------------------------------------------

func TestMethodChaining(t *testing.T) {
	err := New(ErrSecondRange, "test").
		With("key", "value").
		WithValue("2023-12-25T14:30:99Z").
		WithFile("app.log", 10)

	ctx := err.GetContext()
	if len(ctx) != 4 { // key, value, file, line
		t.Errorf("expected 4 context entries, got %d", len(ctx))
	}
}

// -----------------------------------------------------------------------------
// Unwrap Tests
// -----------------------------------------------------------------------------

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrFileRead, cause, "wrapper")

	unwrapped := err.Unwrap()
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}
