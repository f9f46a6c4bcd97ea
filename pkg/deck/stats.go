package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Summary aggregates deck composition for display after a fetch: how many
// tracks landed in each epoch and how many each contributor added.
type Summary struct {
	Tracks       int
	Artists      int
	Epochs       map[string]int
	Contributors map[string]int
}

// Summarize computes a [Summary] over the track list. Tracks without a
// parseable release date count under the "unknown" epoch.
func Summarize(tracks []Track) Summary {
	s := Summary{
		Tracks:       len(tracks),
		Epochs:       make(map[string]int),
		Contributors: make(map[string]int),
	}

	artists := make(map[string]struct{})
	for _, t := range tracks {
		artists[t.Artist] = struct{}{}

		epoch := "unknown"
		if year, ok := ReleaseYear(t.ReleaseDate); ok {
			epoch = Epoch(year)
		}
		s.Epochs[epoch]++

		if t.AddedBy != "" {
			s.Contributors[t.AddedBy]++
		}
	}
	s.Artists = len(artists)
	return s
}

// String renders the summary as a multi-line report, epochs and contributors
// sorted by descending count (ties broken alphabetically).
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d tracks by %d artists\n", s.Tracks, s.Artists)

	if len(s.Epochs) > 0 {
		b.WriteString("epochs:\n")
		for _, kv := range sortedCounts(s.Epochs) {
			fmt.Fprintf(&b, "  %s: %d\n", kv.key, kv.count)
		}
	}
	if len(s.Contributors) > 0 {
		b.WriteString("contributors:\n")
		for _, kv := range sortedCounts(s.Contributors) {
			fmt.Fprintf(&b, "  %s: %d\n", kv.key, kv.count)
		}
	}
	return b.String()
}

type keyCount struct {
	key   string
	count int
}

func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}
