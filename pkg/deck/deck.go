package deck

// Build derives a deck of cards from an ordered track list.
//
// Ordinals are assigned as the 0-based input index; input order is preserved
// exactly. Duplicate track IDs pass through as distinct cards — deduplication,
// if wanted, is the source adapter's job. An empty track list yields an empty
// (valid) deck.
//
// Build is all-or-nothing: the first track failing [Track.Validate] aborts
// with a *MalformedTrackError and no cards are returned.
func Build(tracks []Track, mapper FaceMapper) ([]Card, error) {
	if mapper == nil {
		mapper = DefaultMapper{}
	}

	cards := make([]Card, 0, len(tracks))
	for i, t := range tracks {
		if field := t.Validate(); field != "" {
			return nil, &MalformedTrackError{Ordinal: i, Field: field}
		}
		cards = append(cards, Card{
			Ordinal: i,
			Front:   mapper.Front(t),
			Back:    mapper.Back(t),
		})
	}
	return cards, nil
}
