// Package manifest reads playlists from local TOML files.
//
// A manifest is the offline counterpart to the Spotify adapter: the same
// track schema, hand-written or exported from a previous fetch, so decks can
// be rebuilt (and tested) without network access or credentials.
//
// # File format
//
//	title = "Party Mix"
//
//	[[tracks]]
//	id = "4uLU6hMCjMI75M1A2tKUQC"
//	title = "Never Gonna Give You Up"
//	artist = "Rick Astley"
//	release_date = "1987-07-27"
//	added_by = "alice"
package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/source"
)

// Playlist is the manifest file schema.
type Playlist struct {
	Title  string       `toml:"title"`
	Tracks []deck.Track `toml:"tracks"`
}

// Source reads playlists from manifest files. The playlistID passed to Fetch
// is the file path. Implements [source.Source].
type Source struct{}

// New returns a manifest source.
func New() *Source { return &Source{} }

// Fetch parses the manifest at path and returns its tracks in file order.
// Tracks without an explicit number are numbered by position (1-based).
func (s *Source) Fetch(ctx context.Context, path string) ([]deck.Track, error) {
	pl, err := Load(path)
	if err != nil {
		return nil, err
	}
	return pl.Tracks, nil
}

// Load parses a manifest file.
func Load(path string) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrUnavailable, err)
	}

	var pl Playlist
	if err := toml.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	for i := range pl.Tracks {
		if pl.Tracks[i].Number == 0 {
			pl.Tracks[i].Number = i + 1
		}
	}
	return &pl, nil
}

// Save writes tracks back out as a manifest file, the inverse of [Load].
// Used by the fetch command to snapshot a playlist for offline rebuilds.
func Save(path string, pl *Playlist) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(pl)
}

// Ensure Source implements source.Source.
var _ source.Source = (*Source)(nil)
