// Package spotify fetches playlist metadata through the Spotify Web API.
//
// The adapter authenticates with the client-credentials flow, so it can read
// any public playlist without user interaction. Register an application at
// https://developer.spotify.com/documentation/web-api/concepts/apps and
// export SPOTIFY_ID and SPOTIFY_SECRET before use.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/source"
)

// Environment variables holding application credentials.
const (
	EnvClientID     = "SPOTIFY_ID"
	EnvClientSecret = "SPOTIFY_SECRET"
)

// pageLimit is the Spotify API maximum for playlist item pages.
const pageLimit = 50

// Client is a playlist source backed by the Spotify Web API.
// It implements [source.Source].
type Client struct {
	api    *spotify.Client
	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger for fetch progress. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New authenticates with the client-credentials flow and returns a ready
// client. Credentials come from the SPOTIFY_ID and SPOTIFY_SECRET environment
// variables; a missing variable or a rejected credential pair surfaces as
// [source.ErrAuthentication].
func New(ctx context.Context, opts ...Option) (*Client, error) {
	id := os.Getenv(EnvClientID)
	secret := os.Getenv(EnvClientSecret)
	if id == "" || secret == "" {
		return nil, fmt.Errorf("%w: %s and %s must be set", source.ErrAuthentication, EnvClientID, EnvClientSecret)
	}

	config := &clientcredentials.Config{
		ClientID:     id,
		ClientSecret: secret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrAuthentication, err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	c := &Client{
		api:    spotify.New(httpClient),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch returns the playlist's tracks in playlist order. It pages through
// the full item list before returning — the planner needs the complete,
// final ordering, so no partial results are ever handed out.
func (c *Client) Fetch(ctx context.Context, playlistID string) ([]deck.Track, error) {
	var items []spotify.PlaylistItem

	for offset := 0; ; offset += pageLimit {
		page, err := c.api.GetPlaylistItems(ctx, spotify.ID(playlistID),
			spotify.Limit(pageLimit), spotify.Offset(offset))
		if err != nil {
			return nil, classify(err)
		}
		items = append(items, page.Items...)
		c.logger.Debug("fetched playlist page", "offset", offset, "items", len(page.Items))
		if len(page.Items) < pageLimit {
			break
		}
	}

	tracks := make([]deck.Track, 0, len(items))
	for _, item := range items {
		t, ok := trackFromItem(item, len(tracks)+1)
		if !ok {
			// Local files and removed episodes have no track payload;
			// they cannot become cards.
			c.logger.Warn("skipping playlist item without track metadata", "position", len(tracks)+1)
			continue
		}
		tracks = append(tracks, t)
	}

	c.logger.Info("fetched playlist", "id", playlistID, "tracks", len(tracks))
	return tracks, nil
}

// trackFromItem maps one playlist item to the deck schema. Number is the
// 1-based playlist position.
func trackFromItem(item spotify.PlaylistItem, number int) (deck.Track, bool) {
	full := item.Track.Track
	if full == nil {
		return deck.Track{}, false
	}

	t := deck.Track{
		ID:          string(full.ID),
		Title:       full.Name,
		URI:         string(full.URI),
		ReleaseDate: full.Album.ReleaseDate,
		AddedBy:     item.AddedBy.ID,
		Number:      number,
	}
	if item.AddedBy.DisplayName != "" {
		t.AddedBy = item.AddedBy.DisplayName
	}
	if len(full.Artists) > 0 {
		t.Artist = full.Artists[0].Name
	}
	if url := largestImage(full.Album.Images); url != "" {
		t.ArtworkURL = url
	}
	if t.URI != "" {
		t.CodeURL = CodeURL(t.URI)
	}
	return t, true
}

// largestImage picks the highest-resolution album image.
func largestImage(images []spotify.Image) string {
	best := ""
	bestArea := -1
	for _, img := range images {
		area := int(img.Height) * int(img.Width)
		if area > bestArea {
			best, bestArea = img.URL, area
		}
	}
	return best
}

// classify maps Spotify API failures onto the source error taxonomy so the
// caller never has to inspect provider-specific error types.
func classify(err error) error {
	var apiErr *spotify.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", source.ErrAuthentication, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", source.ErrNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", source.ErrUnavailable, err)
}

// Ensure Client implements source.Source.
var _ source.Source = (*Client)(nil)
