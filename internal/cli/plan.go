package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/layout"
	"github.com/tunedeck/tunedeck/pkg/deck/sink"
	"github.com/tunedeck/tunedeck/pkg/pipeline"
	"github.com/tunedeck/tunedeck/pkg/source/manifest"
)

// layoutOpts holds the grid flags shared by the plan, render and build
// commands.
type layoutOpts struct {
	rows int
	cols int
	flip string
}

// register adds the shared grid flags to cmd.
func (o *layoutOpts) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.rows, "rows", pipeline.DefaultRows, "card rows per sheet")
	cmd.Flags().IntVar(&o.cols, "cols", pipeline.DefaultCols, "card columns per sheet")
	cmd.Flags().StringVar(&o.flip, "flip", string(pipeline.DefaultFlipAxis), "flip axis: long-edge or short-edge")
}

// apply copies the grid flags onto pipeline options.
func (o *layoutOpts) apply(opts *pipeline.Options) {
	opts.Rows = o.rows
	opts.Cols = o.cols
	opts.FlipAxis = layout.Axis(o.flip)
}

// planCommand creates the plan command, which computes the page plan for a
// manifest and writes it as JSON without rendering any printable output.
func (c *CLI) planCommand() *cobra.Command {
	var (
		grid   layoutOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "plan <manifest>",
		Short: "Compute the flip-aligned page plan for a manifest",
		Long: `Plan paginates the manifest's tracks onto front/back sheet pairs and
writes the resulting plan as JSON. The back of every sheet is arranged so
each card lands behind its own front when the printed page is flipped
along the chosen axis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pl, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			opts := pipeline.Options{}
			grid.apply(&opts)

			cards, err := deck.Build(pl.Tracks, nil)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, manifestSource(), "manifest", false)
			if err != nil {
				return err
			}
			defer runner.Close()

			pairs, err := runner.Plan(ctx, cards, opts)
			if err != nil {
				return err
			}

			data, err := sink.RenderJSON(pairs,
				sink.WithJSONTitle(pl.Title),
				sink.WithJSONConfig(opts.LayoutConfig()))
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Planned %d sheets", len(pairs))
			printFile(output)
			return nil
		},
	}

	grid.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "plan output path (stdout if empty)")

	return cmd
}
