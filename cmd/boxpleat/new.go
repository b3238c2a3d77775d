package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/gen"
	"github.com/foldkit/boxpleat/pattern"
)

// newNewCommand creates the `boxpleat new` command.
func newNewCommand() *cobra.Command {
	var (
		output    string
		size      int
		templates []string
	)

	cmd := &cobra.Command{
		Use:   "new -o <out.fold>",
		Short: "Create a FOLD file from built-in templates",
		Long: `Create a fresh FOLD file from built-in templates.

Templates apply in the order given:
  frame         border creases around the paper edge
  waterbomb     a centered flat-foldable waterbomb cell (even size)
  tessellation  every unit segment: bordered edge, alternating interior

Examples:
  boxpleat new -o sheet.fold --size 8
  boxpleat new -o base.fold --size 8 --template frame --template waterbomb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pt, err := pattern.New(size, pattern.WithLogger(logger))
			if err != nil {
				return err
			}

			tpls := make([]gen.Template, 0, len(templates))
			for _, name := range templates {
				tpl, err := templateByName(name)
				if err != nil {
					return err
				}
				tpls = append(tpls, tpl)
			}
			if err := gen.Apply(pt, tpls...); err != nil {
				return err
			}

			if err := fold.Save(pt, output,
				fold.WithCreator(cfg.Creator), fold.WithLogger(logger)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %d creases on a %d grid\n",
				okStyle.Render("✓"), pathStyle.Render(output), pt.CreaseCount(), pt.Size())

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (required)")
	cmd.Flags().IntVar(&size, "size", 8, "grid size")
	cmd.Flags().StringSliceVar(&templates, "template", []string{"frame"},
		"templates to apply in order: frame, waterbomb, tessellation")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// templateByName maps a CLI template name to its constructor.
func templateByName(name string) (gen.Template, error) {
	switch name {
	case "frame":
		return gen.Frame(), nil
	case "waterbomb":
		return gen.Waterbomb(), nil
	case "tessellation":
		return gen.Tessellation(), nil
	default:
		return nil, fmt.Errorf("unknown template %q (have frame, waterbomb, tessellation)", name)
	}
}
