package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tunedeck/tunedeck/pkg/pipeline"
	"github.com/tunedeck/tunedeck/pkg/source/manifest"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid    layoutOpts
	output  string // output base path
	formats string // comma-separated output formats
	title   string // document title (manifest title if empty)
	noCache bool
}

// renderCommand creates the render command, which produces printable
// artifacts from a local manifest without touching the network.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a manifest to printable artifacts",
		Long: `Render runs the build → plan → render stages over a local manifest and
writes the requested artifacts. The HTML output is print-ready: each sheet
becomes one page, with backs flip-aligned to their fronts for double-sided
printing.

Examples:
  tunedeck render deck.toml
  tunedeck render deck.toml --rows 2 --cols 4 --flip short-edge
  tunedeck render deck.toml -f html,json,csv -o party`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (defaults to the manifest name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html (default), json, csv (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title (defaults to the manifest title)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, manifestPath string, opts *renderOpts) error {
	ctx := cmd.Context()

	title := opts.title
	if title == "" {
		if pl, err := manifest.Load(manifestPath); err == nil && pl.Title != "" {
			title = pl.Title
		}
	}

	runner, err := c.newRunner(ctx, manifestSource(), "manifest", opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		PlaylistID: manifestPath,
		Formats:    parseFormats(opts.formats),
		Title:      title,
		// The manifest is the source of truth; never serve a stale snapshot
		// of a file the user may have just edited.
		Refresh: true,
	}
	opts.grid.apply(&pipeOpts)

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d sheets from %d tracks", result.Stats.SheetCount, result.Stats.TrackCount)
	printDeckStats(result.Stats.TrackCount, result.Stats.SheetCount, result.CacheInfo.RenderHit)

	base := outputBase(opts.output, strings.TrimSuffix(manifestPath, ".toml"))
	return writeArtifacts(result.Artifacts, pipeOpts.Formats, base)
}
