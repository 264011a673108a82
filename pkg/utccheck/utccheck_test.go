package utccheck_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Nikita1234567123/my-git-project/pkg/utccheck"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"2023-12-25T14:30:00Z", true},
		{"2023-12-25T14:30:00+00:00", true},
		{"2023-12-25T14:30:00.123456-05:30", true},
		{"2024-02-29T00:00:00Z", true},
		{"2023-02-29T00:00:00Z", false},
		{"2023-12-25T25:30:00Z", false},
		{"2023-12-25T14:30:00+25:00", false},
		{"2023-12-25T14:30:00", false},
		{"2023-12-25T14:30:00Z\n", false},
		{"", false},
		{"日本語", false},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			if got := utccheck.IsValid(tt.candidate); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestExtractValid(t *testing.T) {
	text := "Meeting at 2023-12-25T14:30:00Z, call at 2023-12-25T25:30:00Z, " +
		"lunch 2024-02-29T12:00:00+01:00, party 2023-02-29T20:00:00Z, again 2023-12-25T14:30:00Z"

	want := []string{"2023-12-25T14:30:00Z", "2024-02-29T12:00:00+01:00", "2023-12-25T14:30:00Z"}
	if got := utccheck.ExtractValid(text); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractValid() = %v, want %v", got, want)
	}

	if got := utccheck.Scan(text); len(got) != 5 {
		t.Errorf("Scan() found %d candidates, want 5: %v", len(got), got)
	}

	for _, empty := range []string{"", "   ", "no timestamps here"} {
		if got := utccheck.ExtractValid(empty); len(got) != 0 {
			t.Errorf("ExtractValid(%q) = %v, want empty", empty, got)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := utccheck.Check("2023-12-25T14:30:00Z"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	err := utccheck.Check("2023-12-25T14:61:00Z")
	if !errors.Is(err, utccheck.ErrInvalidTimestamp) {
		t.Fatalf("Check() error = %v, want ErrInvalidTimestamp", err)
	}
	var verr *utccheck.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Check() error is %T", err)
	}
	if verr.Code != "E2004" || verr.Reason != "minute out of range" {
		t.Errorf("ValidationError = %+v", verr)
	}
	want := `utccheck: "2023-12-25T14:61:00Z" is invalid: minute out of range [E2004]`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func ExampleExtractValid() {
	fmt.Println(utccheck.ExtractValid("deployed 2023-12-25T14:30:00Z, rolled back 2023-12-25T24:00:00Z"))
	// Output: [2023-12-25T14:30:00Z]
}

func ExampleCheck() {
	fmt.Println(utccheck.Check("2023-02-29T00:00:00Z"))
	// Output: utccheck: "2023-02-29T00:00:00Z" is invalid: day out of range for month [E2002]
}
