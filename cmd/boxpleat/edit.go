package main

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/pattern"
	"github.com/foldkit/boxpleat/tui"
)

// newEditCommand creates the `boxpleat edit` command.
func newEditCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive crease pattern editor",
		Long: `Open a crease pattern in the terminal editor.

With a file argument the pattern is loaded from it and saved back with
the s key; a missing file starts a fresh pattern that will be created
on first save. Without an argument the editor starts empty and --size
sets the grid.

Keys:
  arrows/hjkl  move the cursor        m v b u  pick the crease type
  enter/space  mark, then place       t        retype the marked crease
  x            delete a crease        ctrl+z / ctrl+r  undo / redo
  s            save to FOLD           c        copy FOLD JSON to clipboard
  ?            help                   q        quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			var (
				pt   *pattern.Pattern
				path string
				err  error
			)
			if len(args) == 1 {
				path = args[0]
				pt, err = fold.Load(path, fold.WithLogger(logger))
				if err != nil {
					if !errors.Is(err, fs.ErrNotExist) {
						return err
					}
					pt, err = pattern.New(size, pattern.WithLogger(logger))
				}
			} else {
				pt, err = pattern.New(size, pattern.WithLogger(logger))
			}
			if err != nil {
				return err
			}

			opts := []tui.Option{tui.WithLogger(logger)}
			if path != "" {
				opts = append(opts, tui.WithPath(path))
			}

			program := tea.NewProgram(tui.New(pt, opts...), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("editor: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 8, "grid size when starting a new pattern")

	return cmd
}
