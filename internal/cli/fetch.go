package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/sink"
	"github.com/tunedeck/tunedeck/pkg/pipeline"
	"github.com/tunedeck/tunedeck/pkg/source/manifest"
	"github.com/tunedeck/tunedeck/pkg/source/spotify"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	output   string // manifest output path
	csv      string // optional CSV export path
	codesDir string // optional directory for downloaded scannable codes
	title    string // playlist title recorded in the manifest
	refresh  bool   // bypass the playlist cache
	noCache  bool   // disable caching entirely
}

// fetchCommand creates the fetch command, which pulls a playlist snapshot
// from Spotify into a local manifest for offline planning and rendering.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{output: "deck.toml"}

	cmd := &cobra.Command{
		Use:   "fetch <playlist-id>",
		Short: "Fetch a playlist snapshot into a local manifest",
		Long: `Fetch pulls the full track list of a Spotify playlist and writes it to a
local TOML manifest. The manifest is the input for the plan and render
commands, so a deck can be reworked offline without refetching.

Credentials are read from SPOTIFY_ID and SPOTIFY_SECRET (a local .env file
is loaded automatically).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFetch(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "manifest output path")
	cmd.Flags().StringVar(&opts.csv, "csv", "", "also export the track list as CSV")
	cmd.Flags().StringVar(&opts.codesDir, "codes", "", "download scannable codes into this directory")
	cmd.Flags().StringVar(&opts.title, "title", "", "playlist title recorded in the manifest")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the playlist cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runFetch(cmd *cobra.Command, playlistID string, opts *fetchOpts) error {
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

	spin := newSpinner(ctx, fmt.Sprintf("Fetching playlist %s", playlistID))
	spin.Start()

	prog := newProgress(logger)
	tracks, hit, err := runner.FetchWithCacheInfo(ctx, pipeline.Options{
		PlaylistID: playlistID,
		Refresh:    opts.refresh,
	})
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Fetch failed: %v", err))
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Fetched %d tracks", len(tracks)))
	printDeckStats(len(tracks), 0, hit)
	prog.done(fmt.Sprintf("Playlist %s snapshot ready", playlistID))

	if opts.codesDir != "" {
		if err := spotify.PrefetchCodes(ctx, http.DefaultClient, tracks, opts.codesDir); err != nil {
			printWarning("Scannable code download failed: %v", err)
		} else {
			printDetail("Codes: %s", opts.codesDir)
		}
	}

	pl := &manifest.Playlist{Title: opts.title, Tracks: tracks}
	if err := manifest.Save(opts.output, pl); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	printFile(opts.output)

	if opts.csv != "" {
		data, err := sink.RenderCSV(tracks)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.csv, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.csv, err)
		}
		printFile(opts.csv)
	}

	fmt.Println()
	fmt.Println(deck.Summarize(tracks))
	printNextStep("Render the deck", fmt.Sprintf("%s render %s", appName, opts.output))
	return nil
}
