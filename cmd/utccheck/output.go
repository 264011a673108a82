package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
)

// printOptions controls how a report is rendered for humans.
type printOptions struct {
	limit   int  // 0 shows every entry
	explain bool // append a diagnostic for each invalid entry
	title   bool // print the source name above the list
}

// printReport renders one report. JSON mode writes the report object; the
// other modes print a verdict list, the remainder line and the summary.
func printReport(w io.Writer, r *report.Report, opts printOptions) error {
	if cli.Default().IsJSON() {
		return writeJSON(w, r)
	}

	if opts.title {
		fmt.Fprintln(w, cli.FilePath(r.Source))
	}
	if r.Err != nil {
		fmt.Fprint(w, cli.FormatError(r.Err))
		return nil
	}

	shown, remaining := r.Window(opts.limit)
	list := cli.NewList()
	for _, e := range shown {
		content := e.Value + "  " + cli.Dim(fmt.Sprintf("%d:%d", e.Line, e.Column))
		if !e.Valid {
			content += "  " + cli.Code(e.Code) + " " + e.Reason
		}
		list.AddVerdict(e.Valid, content)
	}
	fmt.Fprint(w, list.String())
	if remaining > 0 {
		fmt.Fprintln(w, "  "+cli.FormatRemaining(remaining))
	}
	fmt.Fprintln(w, cli.FormatSummary(r.Valid, r.Found))

	if opts.explain {
		for _, e := range r.Entries {
			if e.Valid {
				continue
			}
			fmt.Fprintln(w)
			fmt.Fprint(w, cli.Explain(r.Source, e.Line, e.Column, r.Line(e.Line), e.Err))
		}
	}
	return nil
}

// printReports renders several reports; in JSON mode they form one array.
func printReports(w io.Writer, reports []*report.Report, opts printOptions) error {
	if cli.Default().IsJSON() {
		return writeJSON(w, reports)
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printReport(w, r, opts); err != nil {
			return err
		}
	}
	return nil
}

// printFileSummary follows a multi-file listing with one table row per file
// and a note counting the files that could not be read. It returns that count.
func printFileSummary(w io.Writer, reports []*report.Report) int {
	failed := 0
	table := cli.NewTable("FILE", "FOUND", "VALID")
	for _, r := range reports {
		if r.Err != nil {
			failed++
			table.AddRow(r.Source, "-", cli.Code(string(alerr.GetErrorCode(r.Err))))
			continue
		}
		table.AddRow(r.Source, strconv.Itoa(r.Found), strconv.Itoa(r.Valid))
	}

	if len(reports) > 1 && !cli.Default().IsJSON() {
		fmt.Fprintln(w)
		fmt.Fprint(w, table.String())
		if failed > 0 {
			fmt.Fprint(w, cli.FormatNote(cli.FormatCount(failed, "file", "files")+" could not be read"))
		}
	}
	return failed
}

// jsonError is how a failed source appears in JSON output.
type jsonError struct {
	Source string `json:"source"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error"`
}

func writeJSON(w io.Writer, v any) error {
	switch x := v.(type) {
	case *report.Report:
		if x.Err != nil {
			v = failedJSON(x)
		}
	case []*report.Report:
		out := make([]any, len(x))
		for i, r := range x {
			if r.Err != nil {
				out[i] = failedJSON(r)
			} else {
				out[i] = r
			}
		}
		v = out
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func failedJSON(r *report.Report) jsonError {
	out := jsonError{
		Source: r.Source,
		Code:   string(alerr.GetErrorCode(r.Err)),
		Error:  r.Err.Error(),
	}
	if ae, ok := r.Err.(*alerr.Error); ok {
		out.Error = ae.GetMessage()
	}
	return out
}
