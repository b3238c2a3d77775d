package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/render"
)

// newRenderCommand creates the `boxpleat render` command.
func newRenderCommand() *cobra.Command {
	var (
		output  string
		cell    float64
		margin  float64
		labels  bool
		noGrid  bool
		overlay bool
	)

	cmd := &cobra.Command{
		Use:   "render <in> -o <out.png>",
		Short: "Draw a FOLD file to a PNG image",
		Long: `Draw a crease pattern to a PNG image.

Mountains are solid red, valleys dashed blue, borders thick black, and
unassigned creases gray. --overlay runs the foldability check first and
rings violating vertices in red and incomplete ones in amber. --labels
writes the coordinates next to each vertex.

Flag defaults come from the render section of the config file.

Examples:
  boxpleat render crane.fold -o crane.png
  boxpleat render crane.fold -o crane.png --overlay --labels --cell 48`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cell") {
				cell = cfg.Render.CellSize
			}
			if !cmd.Flags().Changed("margin") {
				margin = cfg.Render.Margin
			}
			if !cmd.Flags().Changed("labels") {
				labels = cfg.Render.Labels
			}

			pt, err := fold.Load(args[0], fold.WithLogger(logger))
			if err != nil {
				return err
			}

			opts := []render.Option{
				render.WithCellSize(cell),
				render.WithMargin(margin),
				render.WithLogger(logger),
			}
			if labels {
				opts = append(opts, render.WithLabels())
			}
			if noGrid {
				opts = append(opts, render.WithoutGrid())
			}
			if overlay {
				rep, err := foldability.Validate(pt, foldability.WithLogger(logger))
				if err != nil {
					return err
				}
				opts = append(opts, render.WithReport(rep))
			}

			if err := render.PNG(pt, output, opts...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				okStyle.Render("✓"), pathStyle.Render(output))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (required)")
	cmd.Flags().Float64Var(&cell, "cell", 64, "pixels per grid unit")
	cmd.Flags().Float64Var(&margin, "margin", 32, "pixel border around the paper")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw vertex coordinate labels")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "skip the background grid lines")
	cmd.Flags().BoolVar(&overlay, "overlay", false, "ring foldability violations on the image")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
