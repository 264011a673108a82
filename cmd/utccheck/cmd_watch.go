package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
	"github.com/Nikita1234567123/my-git-project/internal/cli"
	"github.com/Nikita1234567123/my-git-project/internal/report"
	"github.com/Nikita1234567123/my-git-project/internal/source"
)

// watchDebounce groups the events of one save (truncate, write, chmod) into
// a single re-scan.
const watchDebounce = 100 * time.Millisecond

// watchCmd re-scans a file every time it is written.
func watchCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Re-scan a file whenever it changes",
		Long: `Scan a file, then keep watching it and scan it again after every write.
Results are printed only when they differ from the previous scan. Stop with Ctrl+C.`,
		Example: `  utccheck watch events.log
  utccheck watch --all --json events.log`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			mode := report.ModeValid
			if all {
				mode = report.ModeAll
			}

			w := cmd.OutOrStdout()
			if !cli.Default().IsJSON() {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.Dim(fmt.Sprintf(MsgWatching, args[0])))
			}

			fw := &fileWatcher{
				path:     args[0],
				mode:     mode,
				debounce: watchDebounce,
				onReport: func(r *report.Report) {
					if !cli.Default().IsJSON() {
						fmt.Fprintln(w, cli.Dim(fmt.Sprintf(MsgScanned, time.Now().Format(time.TimeOnly))))
					}
					if err := printReport(w, r, printOptions{limit: cfg.DisplayLimit}); err != nil {
						slog.Warn("failed to print report", "error", err)
					}
				},
				onRemoved: func() {
					fmt.Fprint(cmd.ErrOrStderr(), cli.FormatWarning(MsgFileRemoved,
						cli.WithFile(args[0], 0, 0),
						cli.WithHelps(MsgWaitingAgain)))
				},
			}
			return fw.run(ctx)
		},
	}

	cmd.Flags().IntP("limit", "n", DefaultDisplayLimit, FlagDescLimit)
	cmd.Flags().BoolVarP(&all, "all", "a", false, FlagDescAll)
	return cmd
}

// fileWatcher scans one file on start and after every change to it.
// onReport is called only when the digest differs from the last one seen.
type fileWatcher struct {
	path      string
	mode      report.Mode
	debounce  time.Duration
	onReport  func(*report.Report)
	onRemoved func()

	lastDigest string
}

// run blocks until ctx is done. The parent directory is watched rather than
// the file itself, so editors that save by renaming a new file into place
// are followed.
func (fw *fileWatcher) run(ctx context.Context) error {
	target, err := filepath.Abs(fw.path)
	if err != nil {
		return alerr.Wrap(alerr.ErrFileRead, err, "invalid path").WithFile(fw.path, 0)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return alerr.Wrap(alerr.EInternalError, err, "file watcher failed")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return alerr.Wrap(alerr.ErrFileRead, err, "cannot watch directory").WithFile(fw.path, 0)
	}

	if err := fw.scan(); err != nil {
		return err
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			slog.Debug("watch event", "path", event.Name, "op", event.Op.String())
			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				pending = nil
				if fw.onRemoved != nil {
					fw.onRemoved()
				}
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				pending = time.After(fw.debounce)
			}

		case <-pending:
			pending = nil
			if err := fw.scan(); err != nil {
				if alerr.Is(err, alerr.ErrFileNotFound) {
					continue
				}
				slog.Warn("re-scan failed", "path", fw.path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)
		}
	}
}

// scan reads the file and reports it if the result changed.
func (fw *fileWatcher) scan() error {
	text, err := source.ReadFile(fw.path)
	if err != nil {
		return err
	}
	r := report.Build(fw.path, text, fw.mode)
	if r.Digest == fw.lastDigest {
		slog.Debug("results unchanged", "path", fw.path, "digest", r.Digest)
		return nil
	}
	fw.lastDigest = r.Digest
	fw.onReport(r)
	return nil
}
