package main

import (
	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
)

// fileCmd scans local files, several at a time.
func fileCmd() *cobra.Command {
	var all, explain, browse bool

	cmd := &cobra.Command{
		Use:   "file PATH...",
		Short: "Scan one or more files",
		Long: `Scan files for valid timestamps. Files are read concurrently, at most
--jobs at a time, and reported in the order given.

A missing or unreadable file is reported for that path and the others are still
scanned; the command then exits with status 1.`,
		Example: `  utccheck file events.log
  utccheck file --all --explain logs/*.log`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := report.ModeValid
			if all || explain {
				mode = report.ModeAll
			}

			reports, err := report.FromFiles(cmd.Context(), args, cfg.Jobs, mode)
			if err != nil {
				return err
			}

			if browse && !cli.Default().IsJSON() {
				return browseReports(cmd, reports)
			}

			opts := printOptions{
				limit:   cfg.DisplayLimit,
				explain: explain,
				title:   len(reports) > 1,
			}
			if err := printReports(cmd.OutOrStdout(), reports, opts); err != nil {
				return err
			}

			if failed := printFileSummary(cmd.OutOrStdout(), reports); failed > 0 {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().IntP("jobs", "j", DefaultJobs, "Files to scan at the same time")
	cmd.Flags().IntP("limit", "n", DefaultDisplayLimit, FlagDescLimit)
	cmd.Flags().BoolVarP(&all, "all", "a", false, FlagDescAll)
	cmd.Flags().BoolVar(&explain, "explain", false, FlagDescExplain+" (implies --all)")
	cmd.Flags().BoolVar(&browse, "browse", false, FlagDescBrowse)
	return cmd
}
