package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture loads a file from the testdata/ directory at the project root.
//
// Example:
//
//	text := testutil.LoadFixture(t, "events.log")
func LoadFixture(t *testing.T, name string) string {
	t.Helper()

	content, err := os.ReadFile(FixturePath(t, name))
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	return string(content)
}

// FixturePath returns the absolute path of a fixture, for tests that need
// to hand a real file to the code under test.
func FixturePath(t *testing.T, name string) string {
	t.Helper()

	return filepath.Join(findProjectRoot(t), "testdata", name)
}

// findProjectRoot walks up the directory tree to find the project root (go.mod location).
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}
