package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/pattern"
)

// validateResult is the per-file outcome in --json output.
type validateResult struct {
	Path   string              `json:"path"`
	Valid  bool                `json:"valid"`
	Error  string              `json:"error,omitempty"`
	Report *foldability.Report `json:"report,omitempty"`
}

// newValidateCommand creates the `boxpleat validate` command.
func newValidateCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate <glob>...",
		Short: "Check FOLD files for flat-foldability",
		Long: `Check FOLD files for flat-foldability.

Each argument is a path or a doublestar glob ("designs/**/*.fold").
Every matched file is loaded and checked vertex by vertex: Maekawa
(mountains and valleys differ by exactly two) and Kawasaki (alternating
angle sums are equal) at each interior vertex. Files that fail to load
count as invalid.

The exit code is 0 when every file is flat-foldable and 1 otherwise.

Examples:
  boxpleat validate crane.fold
  boxpleat validate "designs/**/*.fold" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match %v", args)
			}

			results := make([]validateResult, 0, len(files))
			allValid := true
			for _, path := range files {
				res := validateFile(path, logger)
				if !res.Valid {
					allValid = false
				}
				results = append(results, res)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				printResults(cmd, results)
			}

			if !allValid {
				cmd.SilenceErrors = true
				return &exitError{code: 1}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of styled text")

	return cmd
}

// expandGlobs resolves every argument through doublestar and returns
// the union, deduplicated and sorted.
func expandGlobs(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)

	return files, nil
}

// validateFile loads one FOLD file and runs the foldability check.
// Load and geometry errors are folded into the result rather than
// aborting the batch.
func validateFile(path string, logger pattern.Logger) validateResult {
	pt, err := fold.Load(path, fold.WithLogger(logger))
	if err != nil {
		return validateResult{Path: path, Error: err.Error()}
	}

	rep, err := foldability.Validate(pt, foldability.WithLogger(logger))
	if err != nil {
		return validateResult{Path: path, Error: err.Error()}
	}

	return validateResult{Path: path, Valid: rep.Valid, Report: rep}
}

// printResults writes the styled per-file report.
func printResults(cmd *cobra.Command, results []validateResult) {
	out := cmd.OutOrStdout()
	for _, res := range results {
		switch {
		case res.Error != "":
			fmt.Fprintf(out, "%s %s  %s\n",
				badStyle.Render("✗"), pathStyle.Render(res.Path), res.Error)
		case res.Valid:
			fmt.Fprintf(out, "%s %s  %s\n",
				okStyle.Render("✓"), pathStyle.Render(res.Path), okStyle.Render("flat-foldable"))
		case len(res.Report.Violations) == 0:
			fmt.Fprintf(out, "%s %s  %s\n",
				warnStyle.Render("◐"), pathStyle.Render(res.Path),
				warnStyle.Render(fmt.Sprintf("%d vertex(es) with unassigned creases", len(res.Report.Incomplete))))
		default:
			fmt.Fprintf(out, "%s %s  %s\n",
				badStyle.Render("✗"), pathStyle.Render(res.Path),
				badStyle.Render(fmt.Sprintf("%d violation(s)", len(res.Report.Violations))))
			for _, v := range res.Report.Violations {
				fmt.Fprintln(out, detailStyle.Render(v.String()))
			}
			for _, p := range res.Report.Incomplete {
				fmt.Fprintln(out, detailStyle.Render(fmt.Sprintf("unassigned creases at %s", p)))
			}
		}
	}
}
