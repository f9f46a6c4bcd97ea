package spotify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/source"
)

// Scannable code rendering defaults. The Web API does not serve codes, so
// URLs are built against the public scannables endpoint.
const (
	codeEndpoint   = "https://scannables.scdn.co/uri/plain"
	codeFormat     = "png"
	codeBackground = "FFFFFF"
	codeColor      = "black"
	codeSize       = 1024
)

// prefetchWorkers bounds concurrent code downloads.
const prefetchWorkers = 8

// CodeURL builds the scannable-code image URL for a track URI.
func CodeURL(uri string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%d/%s",
		codeEndpoint, codeFormat, codeBackground, codeColor, codeSize, uri)
}

// PrefetchCodes downloads the scannable code image of every track into dir,
// named by playlist number (1.png, 2.png, ...), and rewrites each track's
// CodeURL to the local file. Downloads run in parallel with bounded
// concurrency; the first failure cancels the rest and no track is rewritten.
//
// Prefetching is optional — the HTML sink renders remote code URLs just as
// well — but local files keep the printed deck reproducible offline.
func PrefetchCodes(ctx context.Context, client *http.Client, tracks []deck.Track, dir string) error {
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	files := make([]string, len(tracks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchWorkers)

	for i := range tracks {
		if tracks[i].URI == "" {
			continue
		}
		i := i
		g.Go(func() error {
			path := filepath.Join(dir, fmt.Sprintf("%d.%s", tracks[i].Number, codeFormat))
			if err := download(ctx, client, CodeURL(tracks[i].URI), path); err != nil {
				return fmt.Errorf("code for track %d: %w", tracks[i].Number, err)
			}
			files[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range tracks {
		if files[i] != "" {
			tracks[i].CodeURL = files[i]
		}
	}
	return nil
}

// download fetches url into path, failing on any non-200 response.
func download(ctx context.Context, client *http.Client, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", source.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", source.ErrUnavailable, resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}
