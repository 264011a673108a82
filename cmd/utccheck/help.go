package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/cli"
)

// CommandInfo is one line of the root help.
type CommandInfo struct {
	Name string
	Desc string
}

// CommandCategory groups commands under a title in the root help.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

var helpCategories = []CommandCategory{
	{
		Title: "Interactive",
		Commands: []CommandInfo{
			{"menu", "Numbered menu: scan text, a web page or a file (default)"},
		},
	},
	{
		Title: "Scan",
		Commands: []CommandInfo{
			{"text", "Scan text from arguments, a prompt or stdin"},
			{"url", "Fetch a web page and list its valid timestamps"},
			{"file", "Scan one or more files"},
			{"watch", "Re-scan a file whenever it changes"},
		},
	},
	{
		Title: "Check",
		Commands: []CommandInfo{
			{"validate", "Validate timestamps given as arguments"},
		},
	},
}

var helpFlags = []struct{ flag, desc string }{
	{"-c, --config", "Path to config file (default: " + DefaultConfigFile + ")"},
	{"    --json", "Output as JSON"},
	{"    --no-color", "Disable colors"},
	{"-v, --verbose", "Log debug output to stderr"},
	{"-h, --help", "Show help information"},
	{"    --version", "Show version information"},
}

// customHelp displays a styled help message for the root command.
// Subcommands keep cobra's default help.
func customHelp(cmd *cobra.Command, defaultHelp func(*cobra.Command, []string), args []string) {
	if cmd.HasParent() {
		defaultHelp(cmd, args)
		return
	}
	renderCategoryHelp(cmd.OutOrStdout(), MainTitle, MainSummary, helpCategories)
}

func renderCategoryHelp(w io.Writer, title, summary string, categories []CommandCategory) {
	width := 0
	for _, cat := range categories {
		for _, c := range cat.Commands {
			width = max(width, len(c.Name))
		}
	}
	for _, f := range helpFlags {
		width = max(width, len(f.flag))
	}

	section := func(s string) string {
		if !cli.EnableColors() {
			return s + ":"
		}
		return lipgloss.NewStyle().Bold(true).Render(s + ":")
	}

	fmt.Fprintln(w, cli.Header(title))
	fmt.Fprintln(w, cli.Dim(summary))
	fmt.Fprintln(w)
	fmt.Fprintln(w, section("Usage"))
	fmt.Fprintln(w, "  utccheck [command] [flags]")

	for _, cat := range categories {
		fmt.Fprintln(w)
		fmt.Fprintln(w, section(cat.Title))
		for _, c := range cat.Commands {
			fmt.Fprintf(w, "  %s  %s\n", cli.Code(c.Name+strings.Repeat(" ", width-len(c.Name))), c.Desc)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, section("Flags"))
	for _, f := range helpFlags {
		fmt.Fprintf(w, "  %s  %s\n", f.flag+strings.Repeat(" ", width-len(f.flag)), f.desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Dim(`Use "utccheck [command] --help" for more information about a command.`))
}

// HelpMessage represents a structured help message for error conditions.
type HelpMessage struct {
	Title string
	Lines []string
}

// helpMessages contains data-driven help for conditions that need more than
// a one-line hint.
var helpMessages = map[string]HelpMessage{
	"browse_needs_tty": {
		Title: "The results browser needs an interactive terminal",
		Lines: []string{
			"Showing the plain listing instead.",
			"",
			"To open the browser, run the command directly in a terminal:",
			"  utccheck text --browse < events.log   # stdin redirected: listing",
			"  utccheck file --browse events.log     # terminal: browser",
		},
	},
	"no_text": {
		Title: "No text to scan",
		Lines: []string{
			"Usage:",
			"  utccheck text \"deploy at 2023-12-25T14:30:00Z\"",
			"  cat events.log | utccheck text",
			"  utccheck text                         # prompts for one line",
		},
	},
}

// printHelp prints a help message by key.
func printHelp(w io.Writer, key string) {
	msg, ok := helpMessages[key]
	if !ok {
		return
	}
	fmt.Fprintln(w, cli.Warning("note")+": "+msg.Title)
	for _, line := range msg.Lines {
		fmt.Fprintln(w, line)
	}
}
