package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/source"
)

const sampleManifest = `
title = "Test Mix"

[[tracks]]
id = "t1"
title = "First Song"
artist = "Alpha"
release_date = "1984-05-01"
added_by = "alice"

[[tracks]]
id = "t2"
title = "Second Song"
artist = "Beta"
number = 99
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	pl, err := Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if pl.Title != "Test Mix" {
		t.Errorf("Title = %q, want Test Mix", pl.Title)
	}
	if len(pl.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(pl.Tracks))
	}
	if pl.Tracks[0].Artist != "Alpha" {
		t.Errorf("Tracks[0].Artist = %q, want Alpha", pl.Tracks[0].Artist)
	}
	// Missing numbers fill in by position; explicit numbers stay.
	if pl.Tracks[0].Number != 1 {
		t.Errorf("Tracks[0].Number = %d, want 1", pl.Tracks[0].Number)
	}
	if pl.Tracks[1].Number != 99 {
		t.Errorf("Tracks[1].Number = %d, want 99 (explicit)", pl.Tracks[1].Number)
	}
}

func TestFetch(t *testing.T) {
	path := writeManifest(t, sampleManifest)

	tracks, err := New().Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}
	if tracks[0].ID != "t1" || tracks[1].ID != "t2" {
		t.Error("tracks out of file order")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	_, err := Load(writeManifest(t, "this is not [valid toml"))
	if err == nil {
		t.Fatal("Load() must fail on invalid TOML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	pl := &Playlist{
		Title: "Round Trip",
		Tracks: []deck.Track{
			{ID: "a", Title: "One", Artist: "X", ReleaseDate: "1999", Number: 1},
			{ID: "b", Title: "Two", Artist: "Y", AddedBy: "bob", Number: 2},
		},
	}

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := Save(path, pl); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Title != pl.Title {
		t.Errorf("Title = %q, want %q", loaded.Title, pl.Title)
	}
	if len(loaded.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(loaded.Tracks))
	}
	if loaded.Tracks[0] != pl.Tracks[0] || loaded.Tracks[1] != pl.Tracks[1] {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded.Tracks, pl.Tracks)
	}
}
