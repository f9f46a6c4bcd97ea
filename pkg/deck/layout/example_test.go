package layout_test

import (
	"fmt"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/layout"
)

func ExamplePlan() {
	cards := make([]deck.Card, 5)
	for i := range cards {
		cards[i] = deck.Card{Ordinal: i}
	}

	pairs, err := layout.Plan(cards, layout.Config{
		Rows:     2,
		Cols:     2,
		FlipAxis: layout.AxisLongEdge,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%d sheets\n", len(pairs))
	for _, pair := range pairs {
		fmt.Printf("sheet %d: front %d cards, back %d cards\n",
			pair.Front.Index, pair.Front.CardCount(), pair.Back.CardCount())
	}
	// Card 0 sits top-left on the front; after a long-edge flip its back
	// lands bottom-left.
	back := pairs[0].Back.CellAt(1, 0)
	fmt.Printf("card %d sits at (1,0) on the back\n", back.Card.Ordinal)
	// Output:
	// 2 sheets
	// sheet 0: front 4 cards, back 4 cards
	// sheet 1: front 1 cards, back 1 cards
	// card 0 sits at (1,0) on the back
}
