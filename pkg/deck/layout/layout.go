package layout

import "github.com/tunedeck/tunedeck/pkg/deck"

// Side distinguishes the two faces of a printed sheet.
type Side string

// Page sides.
const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Cell is one grid position on a page. A nil Card marks an explicit blank:
// blanks are emitted, never omitted, so page geometry stays rectangular.
type Cell struct {
	Row  int        `json:"row"`
	Col  int        `json:"col"`
	Card *deck.Card `json:"card,omitempty"`
}

// Blank reports whether the cell holds no card.
func (c Cell) Blank() bool { return c.Card == nil }

// Page is one side of one printed sheet. Cells is dense and row-major:
// exactly Rows*Cols entries, cell (r, c) at index r*Cols+c.
type Page struct {
	Index int    `json:"index"`
	Side  Side   `json:"side"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Cell `json:"cells"`
}

// CellAt returns the cell at (row, col).
func (p Page) CellAt(row, col int) Cell { return p.Cells[row*p.Cols+col] }

// CardCount returns the number of non-blank cells.
func (p Page) CardCount() int {
	n := 0
	for _, c := range p.Cells {
		if !c.Blank() {
			n++
		}
	}
	return n
}

// PagePair is one physical sheet: a front page and its flip-aligned back.
// Both share the same index and cell geometry.
type PagePair struct {
	Front Page `json:"front"`
	Back  Page `json:"back"`
}

// Plan partitions cards into page pairs under the given config.
//
// Cards are chunked in ordinal order, capacity = Rows*Cols per sheet; the
// final sheet is padded with blanks when the deck size is not a multiple of
// the capacity. Fronts fill row-major (left-to-right, top-to-bottom); each
// back page holds the same cards at the flip-transformed positions, so the
// reveal lands directly behind its own hint once the sheet is flipped along
// cfg.FlipAxis.
//
// An empty deck yields an empty, non-nil slice. The only error condition is
// an invalid config; no deck content can fail the planner.
func Plan(cards []deck.Card, cfg Config) ([]PagePair, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	capacity := cfg.Capacity()
	pairs := make([]PagePair, 0, (len(cards)+capacity-1)/capacity)

	for start := 0; start < len(cards); start += capacity {
		chunk := cards[start:min(start+capacity, len(cards))]
		pairs = append(pairs, planSheet(chunk, len(pairs), cfg))
	}
	return pairs, nil
}

// planSheet lays out one chunk of at most Capacity cards onto a front/back
// page pair.
func planSheet(chunk []deck.Card, pageIndex int, cfg Config) PagePair {
	front := blankPage(pageIndex, SideFront, cfg)
	back := blankPage(pageIndex, SideBack, cfg)

	for i := range chunk {
		row, col := i/cfg.Cols, i%cfg.Cols
		front.Cells[row*cfg.Cols+col].Card = &chunk[i]

		bRow, bCol := flip(row, col, cfg)
		back.Cells[bRow*cfg.Cols+bCol].Card = &chunk[i]
	}
	return PagePair{Front: front, Back: back}
}

// blankPage allocates a fully-populated page of explicit blanks.
func blankPage(index int, side Side, cfg Config) Page {
	cells := make([]Cell, cfg.Capacity())
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			cells[r*cfg.Cols+c] = Cell{Row: r, Col: c}
		}
	}
	return Page{Index: index, Side: side, Rows: cfg.Rows, Cols: cfg.Cols, Cells: cells}
}

// flip maps a front cell position to its back-page position for the
// configured binding axis.
func flip(row, col int, cfg Config) (int, int) {
	switch cfg.FlipAxis {
	case AxisShortEdge:
		return row, cfg.Cols - 1 - col
	default: // AxisLongEdge; Validate rejects anything else
		return cfg.Rows - 1 - row, col
	}
}
