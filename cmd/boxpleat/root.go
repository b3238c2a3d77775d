package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is the semantic version (set via -ldflags).
var version = "dev"

var (
	// verbose enables debug-level diagnostics on stderr.
	verbose bool
	// cfgFile is an explicit config file path from --config.
	cfgFile string
)

// newRootCommand assembles the full command tree.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "boxpleat",
		Short: "A box-pleating crease pattern workbench",
		Long: titleStyle.Render("boxpleat") + subtitleStyle.Render(" - a box-pleating crease pattern workbench") + `

Crease patterns live on an integer grid with creases at multiples of
45 degrees. boxpleat reads and writes the FOLD interchange format,
checks flat-foldability (Maekawa and Kawasaki at every interior
vertex), renders patterns to PNG, and ships a terminal editor.

` + subtitleStyle.Render("Examples:") + `
  boxpleat new -o base.fold --template waterbomb  Start from a template
  boxpleat validate "designs/**/*.fold"   Check every pattern under designs/
  boxpleat convert sketch.fold -o out.fold  Normalize a FOLD file
  boxpleat render sketch.fold -o out.png  Draw the pattern to a PNG
  boxpleat watch sketch.fold              Revalidate on every save
  boxpleat edit sketch.fold               Open the terminal editor`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/boxpleat/config.toml)")

	root.AddCommand(newNewCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newConvertCommand())
	root.AddCommand(newRenderCommand())
	root.AddCommand(newWatchCommand())
	root.AddCommand(newEditCommand())

	return root
}

// newLogger builds the stderr diagnostic logger. Debug level is gated
// on --verbose; everything the core packages emit through their Logger
// option lands here.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "boxpleat",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

// execute runs the CLI and exits the process with the command's code.
func execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// exitError signals a non-zero exit code without forcing os.Exit inside
// RunE handlers, so deferred cleanup still runs.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}
