package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/foldkit/boxpleat/pattern"
)

// newWatchCommand creates the `boxpleat watch` command.
func newWatchCommand() *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Revalidate a FOLD file on every save",
		Long: `Watch a FOLD file and rerun the foldability check when it changes.

Rapid write bursts are debounced: the check runs once after the quiet
window, not once per event. The watch follows rename-style saves, so
editors that write a temp file and move it over the original keep
working. Stop with Ctrl-C.

Examples:
  boxpleat watch sketch.fold
  boxpleat watch sketch.fold --debounce 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("debounce") {
				debounceMs = cfg.Watch.DebounceMs
			}

			return runWatch(cmd, args[0], time.Duration(debounceMs)*time.Millisecond, logger)
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 300, "quiet window in milliseconds before revalidating")

	return cmd
}

// runWatch blocks until the context is cancelled, revalidating path
// after each debounced batch of file events.
func runWatch(cmd *cobra.Command, path string, debounce time.Duration, logger pattern.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that save via
	// rename replace the inode, which would silently drop a file watch.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		mu.Lock()
		defer mu.Unlock()
		reportVerdict(out, abs, logger)
	}
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, fire)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	logger.Info("watching", "path", abs, "debounce", debounce)
	fire()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// reportVerdict runs one validation pass and prints a timestamped line.
func reportVerdict(out io.Writer, path string, logger pattern.Logger) {
	stamp := subtitleStyle.Render(time.Now().Format("15:04:05"))
	res := validateFile(path, logger)
	switch {
	case res.Error != "":
		fmt.Fprintf(out, "%s %s %s\n", stamp, badStyle.Render("✗"), res.Error)
	case res.Valid:
		fmt.Fprintf(out, "%s %s %s\n", stamp, okStyle.Render("✓"), okStyle.Render("flat-foldable"))
	case len(res.Report.Violations) == 0:
		fmt.Fprintf(out, "%s %s %s\n", stamp, warnStyle.Render("◐"),
			warnStyle.Render(fmt.Sprintf("%d vertex(es) with unassigned creases", len(res.Report.Incomplete))))
	default:
		fmt.Fprintf(out, "%s %s %s\n", stamp, badStyle.Render("✗"),
			badStyle.Render(fmt.Sprintf("%d violation(s)", len(res.Report.Violations))))
		for _, v := range res.Report.Violations {
			fmt.Fprintln(out, detailStyle.Render(v.String()))
		}
	}
}
