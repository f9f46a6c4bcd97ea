package deck

import "fmt"

// Track is a single playlist entry as delivered by a track source.
// Tracks are read-only input: the builder never mutates them.
type Track struct {
	// ID uniquely identifies the track within the deck.
	ID string `json:"id" toml:"id"`

	// Title is the song title revealed on the card back.
	Title string `json:"title" toml:"title"`

	// Artist is the primary artist name.
	Artist string `json:"artist" toml:"artist"`

	// ArtworkURL points at the album art used for the reveal side.
	ArtworkURL string `json:"artwork_url,omitempty" toml:"artwork_url,omitempty"`

	// URI is the streaming-service URI (e.g. spotify:track:...), used to
	// derive scannable codes.
	URI string `json:"uri,omitempty" toml:"uri,omitempty"`

	// CodeURL points at a scannable code image for the track, if one was
	// derived by the source adapter.
	CodeURL string `json:"code_url,omitempty" toml:"code_url,omitempty"`

	// AddedBy names the playlist contributor who added the track.
	AddedBy string `json:"added_by,omitempty" toml:"added_by,omitempty"`

	// ReleaseDate is the album release date as reported by the source,
	// in YYYY-MM-DD, YYYY-MM, or YYYY form.
	ReleaseDate string `json:"release_date,omitempty" toml:"release_date,omitempty"`

	// Number is the 1-based position within the playlist, used for any
	// numbering shown to players.
	Number int `json:"number,omitempty" toml:"number,omitempty"`
}

// Validate reports the first missing required field, or "" if the track is
// complete enough to become a card. Title, artist, and ID are required;
// everything else is optional decoration.
func (t Track) Validate() string {
	switch {
	case t.ID == "":
		return "id"
	case t.Title == "":
		return "title"
	case t.Artist == "":
		return "artist"
	}
	return ""
}

// MalformedTrackError reports a track that cannot become a card.
// Ordinal is the 0-based position of the offending track in the input.
type MalformedTrackError struct {
	Ordinal int
	Field   string
}

// Error returns a description naming the ordinal and the missing field.
func (e *MalformedTrackError) Error() string {
	return fmt.Sprintf("track %d: missing required field %q", e.Ordinal, e.Field)
}
