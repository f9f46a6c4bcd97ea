// Package deck builds playing cards from playlist tracks.
//
// A deck is the ordered collection of cards derived from one playlist: each
// track becomes exactly one card with a front face (the guessable hint) and a
// back face (the reveal). The package owns the track schema, the card model,
// and the pure mapping from one to the other; it performs no I/O.
//
// # Building a deck
//
// Cards are produced by [Build], which assigns ordinals in input order and
// derives faces through an injected [FaceMapper]:
//
//	cards, err := deck.Build(tracks, deck.DefaultMapper{})
//	if err != nil {
//	    var mt *deck.MalformedTrackError
//	    if errors.As(err, &mt) {
//	        // mt.Ordinal identifies the offending track
//	    }
//	}
//
// Build is all-or-nothing: a malformed track aborts the whole build and no
// partial deck is returned. Track order is preserved exactly — no sorting,
// shuffling, or deduplication happens here.
//
// Pagination of a deck onto printable sheets lives in the layout subpackage.
package deck
