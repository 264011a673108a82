// Package main provides the utccheck CLI. utccheck finds timestamps of the
// form 2023-12-25T14:30:00Z or 2023-12-25T14:30:00.5+02:00 in text, web pages
// and files, and tells which of them are real calendar instants.
//
// Usage:
//
//	utccheck                          # Interactive menu
//	utccheck text "at 2023-12-25T14:30:00Z"
//	utccheck url https://example.com  # Valid timestamps on a page
//	utccheck file a.log b.log         # Scan files concurrently
//	utccheck validate 2024-02-29T00:00:00Z
//	utccheck watch events.log         # Re-scan on every change
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/ui"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile string
	jsonOutput bool
	verbose    bool
	noColor    bool
)

// cfg is loaded before every command runs.
var cfg *Config

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "utccheck",
		Short:         "Find and validate UTC ISO-8601 timestamps",
		Long:          `utccheck finds timestamps in text, web pages and files and reports which of them are valid UTC ISO-8601 instants.`,
		Version:       version,
		Args:          rootArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd)
			setupOutput(cmd)

			loaded, err := loadConfig(configFile, cmd.Flags().Changed("config"), cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded
			slog.Debug("loaded config",
				"file", configFile,
				"fetch_timeout", cfg.FetchTimeout,
				"display_limit", cfg.DisplayLimit,
				"jobs", cfg.Jobs)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		customHelp(cmd, defaultHelp, args)
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", DefaultConfigFile, "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(
		menuCmd(),
		textCmd(),
		urlCmd(),
		fileCmd(),
		validateCmd(),
		watchCmd(),
	)
	return rootCmd
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func setupOutput(cmd *cobra.Command) {
	out := cli.NewConfig(cmd.OutOrStdout(), jsonOutput, noColor)
	cli.SetDefault(out)
	ui.SetColors(out.IsTTY())
}

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	printError(os.Stderr, err)
	os.Exit(exitCode(err))
}
