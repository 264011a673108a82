package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
	"github.com/Nikita1234567123/my-git-project/internal/source"
	"github.com/Nikita1234567123/my-git-project/internal/ui"
)

// textCmd scans text given on the command line, typed at a prompt or piped in.
func textCmd() *cobra.Command {
	var explain, browse bool

	cmd := &cobra.Command{
		Use:   "text [TEXT...]",
		Short: "Scan text from arguments, a prompt or stdin",
		Long: `Scan text for timestamps and list every candidate with its verdict.

Arguments are joined with spaces. Without arguments, piped input is read to the
end; on a terminal a single line is prompted for.`,
		Example: `  utccheck text "deploy at 2023-12-25T14:30:00Z, retry at 2023-12-25T25:30:00Z"
  journalctl -o short-iso | utccheck text --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			r := report.Build(name, text, report.ModeAll)
			if browse && !cli.Default().IsJSON() {
				return browseReports(cmd, []*report.Report{r})
			}
			return printReport(cmd.OutOrStdout(), r, printOptions{explain: explain})
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, FlagDescExplain)
	cmd.Flags().BoolVar(&browse, "browse", false, FlagDescBrowse)
	return cmd
}

// readText picks the text source: arguments, then piped stdin, then a prompt.
func readText(cmd *cobra.Command, args []string) (name, text string, err error) {
	if len(args) > 0 {
		return SourceArgs, strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if !isInteractive(in) {
		text, err = source.ReadAll(in)
		return SourceStdin, text, err
	}

	p := ui.NewPrompter(in, cmd.OutOrStdout())
	text, err = p.Prompt(ui.PromptConfig{Message: MsgEnterText})
	if errors.Is(err, io.EOF) {
		printHelp(cmd.ErrOrStderr(), "no_text")
		return "", "", usageErrorf("no text given")
	}
	return SourceInput, text, err
}

// isInteractive reports whether r is a terminal a person is typing into.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// browseReports opens the results browser, or prints the listing with a note
// when there is no terminal to draw on.
func browseReports(cmd *cobra.Command, reports []*report.Report) error {
	if !isInteractive(os.Stdin) || !isatty.IsTerminal(os.Stdout.Fd()) {
		printHelp(cmd.ErrOrStderr(), "browse_needs_tty")
	}
	return ui.Browse(cmd.OutOrStdout(), reports)
}
