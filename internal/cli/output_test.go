package cli

import (
	"strings"
	"testing"

	"github.com/Nikita1234567123/my-git-project/internal/testutil"
)

func TestTable(t *testing.T) {
	table := NewTable("SOURCE", "FOUND", "VALID")
	table.AddRow("a.log", "5", "3")
	table.AddRow("événements.log", "12")

	got := table.String()
	if lines := strings.Count(got, "\n"); lines != 4 {
		t.Fatalf("table has %d lines, want 4:\n%s", lines, got)
	}

	// Short rows are padded; the padding is not part of what we check.
	testutil.AssertOutput(t, got, `SOURCE          FOUND  VALID
──────────────  ─────  ─────
a.log           5      3
événements.log  12`)
}

func TestTable_Empty(t *testing.T) {
	if got := NewTable().String(); got != "" {
		t.Errorf("empty table = %q, want empty", got)
	}
}

func TestList(t *testing.T) {
	list := NewList()
	list.AddVerdict(true, "2023-12-25T14:30:00Z")
	list.AddVerdict(false, "2023-12-25T25:30:00Z")
	list.Add("-", "plain")

	want := "  ✓ 2023-12-25T14:30:00Z\n  ✗ 2023-12-25T25:30:00Z\n  - plain\n"
	if got := list.String(); got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 files"},
		{1, "1 file"},
		{2, "2 files"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.count, "file", "files"); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		valid, found int
		want         string
	}{
		{3, 5, "3 valid of 5 candidates found"},
		{1, 1, "1 valid of 1 candidate found"},
		{0, 0, "no timestamps found"},
	}
	for _, tt := range tests {
		if got := FormatSummary(tt.valid, tt.found); got != tt.want {
			t.Errorf("FormatSummary(%d, %d) = %q, want %q", tt.valid, tt.found, got, tt.want)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	if got := FormatRemaining(3); got != "... and 3 more" {
		t.Errorf("FormatRemaining(3) = %q", got)
	}
}
