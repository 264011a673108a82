package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
)

// usageError marks bad flags or arguments; main exits with ExitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// errReported is returned by commands that already printed why they failed.
// main exits with ExitFailure without printing anything else.
var errReported = errors.New("failure already reported")

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	switch alerr.GetErrorCode(err) {
	case alerr.ErrConfigParse, alerr.ErrConfigInvalid:
		return ExitUsage
	}
	return ExitFailure
}

// printError renders err on w unless the command already reported it.
func printError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errReported) {
		return
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(w, cli.FormatError(ue.err))
		fmt.Fprintln(w, cli.Help("help")+": run `utccheck --help` for usage")
		return
	}
	fmt.Fprint(w, cli.FormatError(err))
}

// rootArgs rejects stray arguments to the root command with a suggestion,
// instead of silently starting the menu.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	err := alerr.Newf(alerr.ErrInvalidChoice, "unknown command %q", args[0])
	if s := alerr.SuggestSimilar(args[0], names); s != "" {
		err.WithHelp(s)
	} else {
		err.WithHelp("available commands: " + strings.Join(names, ", "))
	}
	return &usageError{err: err}
}

// exactArgs and minArgs wrap cobra's validators so that argument mistakes
// exit with ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func minArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MinimumNArgs(n))
}

func wrapArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
