package sink

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tunedeck/tunedeck/pkg/deck"
)

// csvHeader is the column order of the track dataset export.
var csvHeader = []string{
	"number", "title", "artist", "release_date", "added_by", "id", "uri", "artwork_url", "code_url",
}

// RenderCSV exports the raw track dataset, one row per track in playlist
// order. The export round-trips through spreadsheet tools for manual fixes
// (wrong release years, contributor renames) before the deck is rebuilt from
// a manifest.
func RenderCSV(tracks []deck.Track) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range tracks {
		row := []string{
			strconv.Itoa(t.Number),
			t.Title,
			t.Artist,
			t.ReleaseDate,
			t.AddedBy,
			t.ID,
			t.URI,
			t.ArtworkURL,
			t.CodeURL,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
