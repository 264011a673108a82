package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
	"github.com/Nikita1234567123/my-git-project/internal/source"
	"github.com/Nikita1234567123/my-git-project/internal/ui"
)

var menuOptions = []ui.MenuOption{
	{Key: "1", Name: "text", Label: "Enter text"},
	{Key: "2", Name: "url", Label: "Scan a web page"},
	{Key: "3", Name: "file", Label: "Scan a file"},
	{Key: "0", Name: "exit", Label: "Exit"},
}

// menuCmd runs the interactive loop. It is also what plain `utccheck` does.
func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Numbered menu: scan text, a web page or a file",
		Long: `Show a numbered menu and scan whatever is chosen, until 0 (exit) is picked
or input ends. An option can be picked by number or by name.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

// runMenu loops over menu choices. Errors from a single choice, such as a
// failed fetch or a missing file, are printed and the menu is shown again.
func runMenu(cmd *cobra.Command) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	p := ui.NewPrompter(cmd.InOrStdin(), out)

	fmt.Fprintln(out, cli.RenderTitle("utccheck"))
	for {
		choice, err := p.Menu(MsgMenuTitle, menuOptions)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case alerr.Is(err, alerr.ErrInvalidChoice):
			fmt.Fprint(errOut, cli.FormatError(err))
			continue
		case err != nil:
			return err
		}

		if choice.Name == "exit" {
			fmt.Fprintln(out, MsgGoodbye)
			return nil
		}

		r, err := runChoice(cmd, p, choice)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			fmt.Fprint(errOut, cli.FormatError(err))
			continue
		}

		fmt.Fprintln(out)
		opts := printOptions{}
		if choice.Name != "text" {
			opts.limit = cfg.DisplayLimit
		}
		if err := printReport(out, r, opts); err != nil {
			return err
		}
	}
}

// runChoice prompts for the input of one menu option and scans it.
func runChoice(cmd *cobra.Command, p *ui.Prompter, choice ui.MenuOption) (*report.Report, error) {
	switch choice.Name {
	case "text":
		text, err := p.Prompt(ui.PromptConfig{Message: MsgEnterText})
		if err != nil {
			return nil, err
		}
		return report.Build(SourceInput, text, report.ModeAll), nil

	case "url":
		rawURL, err := p.Prompt(ui.PromptConfig{
			Message:   MsgEnterURL,
			Required:  true,
			Validator: source.CheckURL,
		})
		if err != nil {
			return nil, err
		}
		return scanURL(cmd.Context(), cmd.ErrOrStderr(), rawURL)

	case "file":
		path, err := p.Prompt(ui.PromptConfig{Message: MsgEnterPath, Required: true})
		if err != nil {
			return nil, err
		}
		text, err := source.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return report.Build(path, text, report.ModeValid), nil
	}
	return nil, alerr.Newf(alerr.EInternalError, "unhandled menu option %q", choice.Name)
}
