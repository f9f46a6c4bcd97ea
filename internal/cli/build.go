package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunedeck/tunedeck/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	grid    layoutOpts
	output  string // output base path
	formats string // comma-separated output formats
	title   string // document title
	refresh bool   // bypass the playlist cache
	noCache bool   // disable caching entirely
}

// buildCommand creates the build command, which runs the complete pipeline
// against a live Spotify playlist.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{output: "deck"}

	cmd := &cobra.Command{
		Use:   "build <playlist-id>",
		Short: "Fetch a playlist and render the complete card deck",
		Long: `Build runs the complete fetch → build → plan → render pipeline: it pulls
the playlist from Spotify, lays the tracks out as double-sided cards, and
writes the printable artifacts in one step.

Examples:
  tunedeck build 0QoUa07l09WLh0ZTxBvgX4
  tunedeck build 0QoUa07l09WLh0ZTxBvgX4 --title "Anna's 30th" -f html,csv
  tunedeck build 0QoUa07l09WLh0ZTxBvgX4 --rows 2 --cols 4 --flip short-edge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], &opts)
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html (default), json, csv (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the playlist cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, playlistID string, opts *buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	src, err := c.newSpotifySource(ctx)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, src, "spotify", opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		PlaylistID: playlistID,
		Formats:    parseFormats(opts.formats),
		Title:      opts.title,
		Refresh:    opts.refresh,
		Logger:     logger,
	}
	opts.grid.apply(&pipeOpts)

	spin := newSpinner(ctx, fmt.Sprintf("Building deck from playlist %s", playlistID))
	spin.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		if spin.Cancelled() {
			spin.Stop()
			return err
		}
		spin.StopWithError(fmt.Sprintf("Build failed: %v", err))
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Built %d cards on %d sheets", len(result.Cards), result.Stats.SheetCount))
	printDeckStats(result.Stats.TrackCount, result.Stats.SheetCount, result.CacheInfo.FetchHit)
	logger.Debug("pipeline finished",
		"build", result.BuildID,
		"fetch", result.Stats.FetchTime,
		"plan", result.Stats.PlanTime,
		"render", result.Stats.RenderTime)

	return writeArtifacts(result.Artifacts, pipeOpts.Formats, outputBase(opts.output, "deck"))
}
