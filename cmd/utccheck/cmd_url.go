package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
	"github.com/Nikita1234567123/my-git-project/internal/source"
)

// urlCmd fetches a page and lists the valid timestamps on it.
func urlCmd() *cobra.Command {
	var browse bool

	cmd := &cobra.Command{
		Use:   "url URL",
		Short: "Fetch a web page and list its valid timestamps",
		Long: `Fetch a web page with a GET request and list the valid timestamps in it.

Network failures, timeouts and non-2xx answers are reported as fetch errors and
exit with status 1. At most display_limit results are shown.`,
		Example: `  utccheck url https://example.com/changelog
  utccheck url --text-only --timeout 5s https://example.com/status`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := scanURL(cmd.Context(), cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}
			if browse && !cli.Default().IsJSON() {
				return browseReports(cmd, []*report.Report{r})
			}
			return printPageReport(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().Duration("timeout", DefaultFetchTimeout, FlagDescTimeout)
	cmd.Flags().IntP("limit", "n", DefaultDisplayLimit, FlagDescLimit)
	cmd.Flags().String("user-agent", "", "User-Agent header sent with the request")
	cmd.Flags().Bool("text-only", false, FlagDescTextOnly)
	cmd.Flags().BoolVar(&browse, "browse", false, FlagDescBrowse)
	return cmd
}

// scanURL fetches rawURL with the configured fetcher and keeps the valid
// timestamps. A spinner runs on w while the request is in flight.
func scanURL(ctx context.Context, w io.Writer, rawURL string) (*report.Report, error) {
	if err := source.CheckURL(rawURL); err != nil {
		return nil, err
	}

	fetcher := &source.Fetcher{
		Timeout:   cfg.FetchTimeout,
		UserAgent: cfg.UserAgent,
		TextOnly:  cfg.TextOnly,
	}

	spinner := newOptionalSpinner(w, fmt.Sprintf(MsgFetching, rawURL), !cli.Default().IsJSON())
	start := time.Now()
	text, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf(MsgFetchFailed, rawURL))
		return nil, err
	}
	spinner.StopWithSuccess(fmt.Sprintf(MsgFetched, rawURL, cli.Elapsed(start)))

	return report.Build(rawURL, text, report.ModeValid), nil
}

// printPageReport frames the valid timestamps of a page in a result panel.
func printPageReport(w io.Writer, r *report.Report) error {
	if cli.Default().IsJSON() {
		return writeJSON(w, r)
	}

	shown, remaining := r.Window(cfg.DisplayLimit)
	list := cli.NewList()
	for _, e := range shown {
		list.AddVerdict(true, e.Value+"  "+cli.Dim(fmt.Sprintf("%d:%d", e.Line, e.Column)))
	}

	content := list.String()
	if remaining > 0 {
		content += "  " + cli.FormatRemaining(remaining) + "\n"
	}
	content += cli.FormatSummary(r.Valid, r.Found)

	fmt.Fprint(w, cli.RenderResultPanel(r.Source, content, r.Valid == r.Found))
	return nil
}

// optionalSpinner wraps cli.Spinner so that callers need not check whether
// a spinner should be shown at all.
type optionalSpinner struct {
	spinner *cli.Spinner
}

func newOptionalSpinner(w io.Writer, message string, enabled bool) *optionalSpinner {
	if !enabled {
		return &optionalSpinner{}
	}
	s := cli.NewSpinner(w, message)
	s.Start()
	return &optionalSpinner{spinner: s}
}

func (o *optionalSpinner) StopWithSuccess(message string) {
	if o.spinner != nil {
		o.spinner.StopWithSuccess(message)
	}
}

func (o *optionalSpinner) StopWithError(message string) {
	if o.spinner != nil {
		o.spinner.StopWithError(message)
	}
}
