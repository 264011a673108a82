// Package testutil provides test helpers for utccheck: error code
// assertions, timestamp list comparison, fixtures and golden files.
//
// Golden files live in the testdata/ directory of the package under test.
// Update them with:
//
//	go test ./... -update-golden
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// updateGolden is a flag to update golden files.
// Use -update-golden to update golden files during test runs.
var updateGolden = flag.Bool("update-golden", false, "update golden files")

// -----------------------------------------------------------------------------
// Output Assertions
// -----------------------------------------------------------------------------

// NormalizeOutput strips trailing spaces from every line and trailing blank
// lines from the end, so that padding differences do not fail comparisons.
func NormalizeOutput(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// AssertOutput compares two blocks of terminal output after normalizing them.
func AssertOutput(t *testing.T, got, want string) {
	t.Helper()

	if NormalizeOutput(got) != NormalizeOutput(want) {
		t.Errorf("output mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

// AssertValues checks an ordered list of timestamps, duplicates included.
func AssertValues(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !slices.Equal(got, want) {
		t.Errorf("timestamps mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// Error Assertions
// -----------------------------------------------------------------------------

// AssertError checks that an error has the expected error code.
// If err is nil or doesn't have the expected code, the test fails.
func AssertError(t *testing.T, err error, code alerr.Code) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error with code %s, got nil", code)
		return
	}

	gotCode := alerr.GetErrorCode(err)
	if gotCode != code {
		t.Errorf("expected error code %s, got %s\nerror: %v", code, gotCode, err)
	}
}

// AssertNoError checks that an error is nil.
// If err is not nil, the test fails with the error message.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

// AssertErrorContains checks that an error message contains a substring.
// If err is nil, the test fails.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, got nil", substr)
		return
	}

	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error message does not contain %q\ngot: %v", substr, err)
	}
}

// AssertHelp checks that a coded error carries the given help line.
func AssertHelp(t *testing.T, err error, help string) {
	t.Helper()

	ae, ok := err.(*alerr.Error)
	if !ok {
		t.Errorf("expected *alerr.Error with help %q, got %T: %v", help, err, err)
		return
	}
	if !slices.Contains(ae.Helps(), help) {
		t.Errorf("help %q not found in %q", help, ae.Helps())
	}
}

// -----------------------------------------------------------------------------
// Golden File Testing
// -----------------------------------------------------------------------------

// goldenPath returns the path to a golden file in ./testdata.
func goldenPath(t *testing.T, name string) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "testdata", name+".golden")
}

// Golden compares a string against a golden file.
// If -update-golden flag is passed, updates the golden file instead.
func Golden(t *testing.T, name string, got string) {
	t.Helper()

	path := goldenPath(t, name)

	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file does not exist: %s\nrun with -update-golden to create it\n\ngot:\n%s",
				path, got)
		}
		t.Fatalf("failed to read golden file: %v", err)
	}

	if got != string(want) {
		t.Errorf("golden file mismatch: %s\n\ngot:\n%s\n\nwant:\n%s\n\nrun with -update-golden to update",
			path, got, string(want))
	}
}

// -----------------------------------------------------------------------------
// Test Helpers
// -----------------------------------------------------------------------------

// WriteFile writes content to a file, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent directories: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// AssertEqual is a generic equality check for testing.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Errorf("values not equal:\ngot:  %v\nwant: %v", got, want)
	}
}
