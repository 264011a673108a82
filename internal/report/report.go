// Package report turns scanned text into an ordered, serializable list of
// findings and gives it a content digest.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cbergoon/merkletree"
	"golang.org/x/sync/errgroup"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/source"
	"github.com/Nikita1234567123/my-git-project/internal/timestamp"
)

// Mode selects which candidates a report keeps.
type Mode int

const (
	// ModeAll keeps every candidate with its verdict.
	ModeAll Mode = iota
	// ModeValid keeps only valid timestamps, the same values ExtractValid returns.
	ModeValid
)

// Entry is one candidate in a report.
type Entry struct {
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Valid  bool   `json:"valid"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`

	Err error `json:"-"`
}

// Report is the outcome of scanning one source.
type Report struct {
	Source  string  `json:"source"`
	Found   int     `json:"found"` // candidates, valid or not
	Valid   int     `json:"valid"`
	Digest  string  `json:"digest"`
	Entries []Entry `json:"findings"`

	Text string `json:"-"`
	Err  error  `json:"-"` // set when the source could not be loaded

	lines []string
}

// Build scans text and records the findings.
func Build(name, text string, mode Mode) *Report {
	findings := timestamp.Classify(text)

	r := &Report{
		Source:  name,
		Found:   len(findings),
		Valid:   timestamp.Count(findings),
		Text:    text,
		Entries: make([]Entry, 0, len(findings)),
	}
	for _, f := range findings {
		if mode == ModeValid && !f.Valid() {
			continue
		}
		e := Entry{
			Value:  f.Value,
			Line:   f.Line,
			Column: f.Column,
			Valid:  f.Valid(),
			Err:    f.Err,
		}
		if ae, ok := f.Err.(*alerr.Error); ok {
			e.Code = string(ae.GetCode())
			e.Reason = ae.GetMessage()
		}
		r.Entries = append(r.Entries, e)
	}
	r.Digest = Digest(r.Entries)

	slog.Debug("built report", "source", name, "found", r.Found, "valid", r.Valid)
	return r
}

// Failed returns a report for a source that could not be loaded.
func Failed(name string, err error) *Report {
	return &Report{Source: name, Entries: []Entry{}, Digest: Digest(nil), Err: err}
}

// Values returns the entry values in order.
func (r *Report) Values() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Value
	}
	return out
}

// Line returns line n (1-based) of the scanned text without its line ending,
// or "" when n is out of range. Not safe for concurrent use.
func (r *Report) Line(n int) string {
	if r.lines == nil {
		r.lines = strings.Split(r.Text, "\n")
	}
	if n < 1 || n > len(r.lines) {
		return ""
	}
	return strings.TrimSuffix(r.lines[n-1], "\r")
}

// Window returns at most limit entries and how many were left out.
// A limit of zero or less means no limit.
func (r *Report) Window(limit int) (shown []Entry, remaining int) {
	if limit <= 0 || len(r.Entries) <= limit {
		return r.Entries, 0
	}
	return r.Entries[:limit], len(r.Entries) - limit
}

// entryContent implements merkletree.Content for one entry. The position in the
// list is part of the hash so that reordering or repeating values changes the root.
type entryContent struct {
	index int
	value string
	valid bool
}

func (c entryContent) key() string {
	return fmt.Sprintf("%d|%s|%t", c.index, c.value, c.valid)
}

func (c entryContent) CalculateHash() ([]byte, error) {
	h := sha256.Sum256([]byte(c.key()))
	return h[:], nil
}

func (c entryContent) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(entryContent)
	if !ok {
		return false, nil
	}
	return c.key() == o.key(), nil
}

// Digest returns the hex merkle root over the values and verdicts of entries.
// Line and column are left out, so moving a timestamp around does not change it.
func Digest(entries []Entry) string {
	if len(entries) == 0 {
		return emptyDigest()
	}

	contents := make([]merkletree.Content, len(entries))
	for i, e := range entries {
		contents[i] = entryContent{index: i, value: e.Value, valid: e.Valid}
	}

	tree, err := merkletree.NewTree(contents)
	if err != nil {
		// NewTree only fails on empty input or a hashing error, neither of which can happen here.
		slog.Warn("failed to build merkle tree", "error", err)
		return emptyDigest()
	}
	return hex.EncodeToString(tree.MerkleRoot())
}

func emptyDigest() string {
	h := sha256.Sum256([]byte("empty_report"))
	return hex.EncodeToString(h[:])
}

// FromFiles reads and scans paths concurrently, at most jobs at a time.
// Reports come back in the order of paths; a file that cannot be read gets a
// Failed report instead of stopping the others.
func FromFiles(ctx context.Context, paths []string, jobs int, mode Mode) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := source.ReadFile(path)
			if err != nil {
				reports[i] = Failed(path, err)
				return nil
			}
			reports[i] = Build(path, text, mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
