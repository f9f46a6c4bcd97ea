// Package source defines the boundary to playlist providers.
//
// A Source delivers an ordered, finite, fully-materialized track list for a
// playlist. Adapters own everything provider-specific: authentication,
// pagination, retries. The deck core consumes the returned slice read-only
// and never retries a failed fetch — retrying a pure transform of the same
// inputs would reproduce the same failure, so retry policy lives here.
package source

import (
	"context"
	"errors"

	"github.com/tunedeck/tunedeck/pkg/deck"
)

// Sentinel errors surfaced by source adapters. Wrapped errors carry provider
// detail; callers match with errors.Is.
var (
	// ErrUnavailable is returned when the provider cannot be reached or
	// responds with a server-side failure.
	ErrUnavailable = errors.New("source unavailable")

	// ErrAuthentication is returned when credentials are missing, expired,
	// or rejected by the provider.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when the requested playlist does not exist
	// or is not visible to the configured credentials.
	ErrNotFound = errors.New("playlist not found")
)

// Source fetches the track list of one playlist.
//
// Implementations must return tracks in playlist order with 1-based Number
// assigned, and must deliver an independent snapshot per call: the deck core
// holds no cross-invocation state and may be run concurrently over different
// playlists.
type Source interface {
	Fetch(ctx context.Context, playlistID string) ([]deck.Track, error)
}
