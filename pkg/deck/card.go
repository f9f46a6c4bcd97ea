package deck

import "strconv"

// Face is the opaque payload of one card side. Keys are template field names,
// values whatever the renderer wants to show; the planner never interprets
// them beyond passing them through.
type Face map[string]string

// Card is the front/back pair derived from one track. Cards are created once
// by [Build] and never mutated afterwards.
type Card struct {
	// Ordinal is the 0-based position in the deck, immutable once assigned.
	// It determines the card's place in the paginated layout.
	Ordinal int `json:"ordinal"`

	// Front carries the guessable hint payload.
	Front Face `json:"front"`

	// Back carries the reveal payload.
	Back Face `json:"back"`
}

// FaceMapper derives card faces from a track. Implementations must be pure:
// the same track always yields the same faces, with no side effects. This is
// the seam for alternative hint/reveal schemes (text hints, scannable codes,
// audio snippet references) without touching the planner.
type FaceMapper interface {
	Front(Track) Face
	Back(Track) Face
}

// DefaultMapper produces the classic song-guessing faces: the front hides the
// answer behind a card number, the back reveals title, year, artist, and the
// contributor who added the track.
//
// Field names follow the HTML sink's card template.
type DefaultMapper struct{}

// Front returns the hint side: just the card number and a scannable code, so
// players can play the song without seeing the answer.
func (DefaultMapper) Front(t Track) Face {
	f := Face{"number": itoa(t.Number)}
	if t.CodeURL != "" {
		f["code"] = t.CodeURL
	} else if t.ArtworkURL != "" {
		f["image"] = t.ArtworkURL
	}
	return f
}

// Back returns the reveal side with the answer fields.
func (DefaultMapper) Back(t Track) Face {
	f := Face{
		"number": itoa(t.Number),
		"title":  t.Title,
		"artist": t.Artist,
	}
	if year, ok := ReleaseYear(t.ReleaseDate); ok {
		f["year"] = itoa(year)
	}
	if t.AddedBy != "" {
		f["contributor"] = t.AddedBy
	}
	return f
}

// FaceFunc adapts a pair of functions to the FaceMapper interface.
type FaceFunc struct {
	FrontFn func(Track) Face
	BackFn  func(Track) Face
}

// Front calls FrontFn, or returns an empty face if nil.
func (m FaceFunc) Front(t Track) Face {
	if m.FrontFn == nil {
		return Face{}
	}
	return m.FrontFn(t)
}

// Back calls BackFn, or returns an empty face if nil.
func (m FaceFunc) Back(t Track) Face {
	if m.BackFn == nil {
		return Face{}
	}
	return m.BackFn(t)
}

// itoa formats a card number, treating zero as "not numbered".
func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
