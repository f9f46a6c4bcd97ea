package deck

import "time"

// Release date layouts reported by streaming services, most precise first.
var releaseDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ReleaseYear extracts the release year from a source-reported date string
// (YYYY-MM-DD, YYYY-MM, or YYYY). The second return value is false if the
// string matches none of these forms.
func ReleaseYear(date string) (int, bool) {
	for _, layout := range releaseDateLayouts {
		if ts, err := time.Parse(layout, date); err == nil {
			return ts.Year(), true
		}
	}
	return 0, false
}

// Epoch buckets a release year into the decade label printed on card backs.
// Years before 1950 collapse into a single "Oldies" bucket.
func Epoch(year int) string {
	switch {
	case year >= 2020:
		return "2020s"
	case year >= 2010:
		return "2010s"
	case year >= 2000:
		return "2000s"
	case year >= 1990:
		return "90s"
	case year >= 1980:
		return "80s"
	case year >= 1970:
		return "70s"
	case year >= 1960:
		return "60s"
	case year >= 1950:
		return "50s"
	default:
		return "Oldies"
	}
}
