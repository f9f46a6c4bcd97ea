package layout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tunedeck/tunedeck/pkg/deck"
)

// testCards builds n minimal cards with sequential ordinals.
func testCards(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = deck.Card{Ordinal: i, Front: deck.Face{}, Back: deck.Face{}}
	}
	return cards
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name: "valid long edge",
			cfg:  Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge},
		},
		{
			name: "valid short edge",
			cfg:  Config{Rows: 2, Cols: 4, FlipAxis: AxisShortEdge},
		},
		{
			name: "valid degenerate grid",
			cfg:  Config{Rows: 1, Cols: 1, FlipAxis: AxisLongEdge},
		},
		{
			name:      "zero rows",
			cfg:       Config{Rows: 0, Cols: 3, FlipAxis: AxisLongEdge},
			wantField: "rows",
		},
		{
			name:      "negative cols",
			cfg:       Config{Rows: 3, Cols: -1, FlipAxis: AxisLongEdge},
			wantField: "cols",
		},
		{
			name:      "unknown flip axis",
			cfg:       Config{Rows: 3, Cols: 3, FlipAxis: "diagonal"},
			wantField: "flip_axis",
		},
		{
			name:      "empty flip axis",
			cfg:       Config{Rows: 3, Cols: 3},
			wantField: "flip_axis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ice *InvalidConfigError
			if !errors.As(err, &ice) {
				t.Fatalf("Validate() = %v, want *InvalidConfigError", err)
			}
			if ice.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ice.Field, tt.wantField)
			}
		})
	}
}

func TestPlanInvalidConfig(t *testing.T) {
	_, err := Plan(testCards(3), Config{Rows: 0, Cols: 2, FlipAxis: AxisLongEdge})
	var ice *InvalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("Plan() error = %v, want *InvalidConfigError", err)
	}
}

func TestPlanEmptyDeck(t *testing.T) {
	for _, axis := range []Axis{AxisLongEdge, AxisShortEdge} {
		pairs, err := Plan(nil, Config{Rows: 3, Cols: 3, FlipAxis: axis})
		if err != nil {
			t.Fatalf("Plan(empty, %s) error: %v", axis, err)
		}
		if pairs == nil {
			t.Errorf("Plan(empty, %s) = nil, want empty slice", axis)
		}
		if len(pairs) != 0 {
			t.Errorf("Plan(empty, %s) = %d pairs, want 0", axis, len(pairs))
		}
	}
}

func TestPlanPageCount(t *testing.T) {
	tests := []struct {
		name  string
		cards int
		cfg   Config
		want  int
	}{
		{"exact fill", 9, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}, 1},
		{"one over", 10, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}, 2},
		{"one under", 8, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}, 1},
		{"single card", 1, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}, 1},
		{"degenerate grid", 3, Config{Rows: 1, Cols: 1, FlipAxis: AxisLongEdge}, 3},
		{"two full sheets", 8, Config{Rows: 2, Cols: 2, FlipAxis: AxisShortEdge}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Plan(testCards(tt.cards), tt.cfg)
			if err != nil {
				t.Fatalf("Plan() error: %v", err)
			}
			if len(pairs) != tt.want {
				t.Errorf("len(pairs) = %d, want %d", len(pairs), tt.want)
			}
		})
	}
}

// TestPlanConcreteScenario pins the exact placement from the 2x2 long-edge
// example: 5 cards over two sheets, back rows mirrored top-to-bottom.
func TestPlanConcreteScenario(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 2, FlipAxis: AxisLongEdge}
	pairs, err := Plan(testCards(5), cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}

	// Map of (row, col) -> ordinal; -1 marks a blank.
	type grid map[[2]int]int
	wantFront0 := grid{{0, 0}: 0, {0, 1}: 1, {1, 0}: 2, {1, 1}: 3}
	wantBack0 := grid{{1, 0}: 0, {1, 1}: 1, {0, 0}: 2, {0, 1}: 3}
	wantFront1 := grid{{0, 0}: 4, {0, 1}: -1, {1, 0}: -1, {1, 1}: -1}
	wantBack1 := grid{{1, 0}: 4, {1, 1}: -1, {0, 0}: -1, {0, 1}: -1}

	checkPage := func(t *testing.T, p Page, want grid) {
		t.Helper()
		for pos, ordinal := range want {
			cell := p.CellAt(pos[0], pos[1])
			if ordinal == -1 {
				if !cell.Blank() {
					t.Errorf("page %d %s (%d,%d): got card %d, want blank",
						p.Index, p.Side, pos[0], pos[1], cell.Card.Ordinal)
				}
				continue
			}
			if cell.Blank() {
				t.Errorf("page %d %s (%d,%d): got blank, want card %d",
					p.Index, p.Side, pos[0], pos[1], ordinal)
				continue
			}
			if cell.Card.Ordinal != ordinal {
				t.Errorf("page %d %s (%d,%d): got card %d, want %d",
					p.Index, p.Side, pos[0], pos[1], cell.Card.Ordinal, ordinal)
			}
		}
	}

	checkPage(t, pairs[0].Front, wantFront0)
	checkPage(t, pairs[0].Back, wantBack0)
	checkPage(t, pairs[1].Front, wantFront1)
	checkPage(t, pairs[1].Back, wantBack1)
}

// TestPlanFlipAlignment verifies the flip invariant across grid shapes and
// axes: every front card appears on the paired back page at the transformed
// position, and nowhere else.
func TestPlanFlipAlignment(t *testing.T) {
	tests := []struct {
		name  string
		cards int
		cfg   Config
	}{
		{"3x3 long edge full", 18, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}},
		{"3x3 long edge ragged", 11, Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}},
		{"3x3 short edge ragged", 11, Config{Rows: 3, Cols: 3, FlipAxis: AxisShortEdge}},
		{"2x4 short edge", 13, Config{Rows: 2, Cols: 4, FlipAxis: AxisShortEdge}},
		{"4x2 long edge", 13, Config{Rows: 4, Cols: 2, FlipAxis: AxisLongEdge}},
		{"1x1 degenerate", 3, Config{Rows: 1, Cols: 1, FlipAxis: AxisShortEdge}},
		{"single row long edge", 5, Config{Rows: 1, Cols: 4, FlipAxis: AxisLongEdge}},
		{"single col short edge", 5, Config{Rows: 4, Cols: 1, FlipAxis: AxisShortEdge}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Plan(testCards(tt.cards), tt.cfg)
			if err != nil {
				t.Fatalf("Plan() error: %v", err)
			}

			for _, pair := range pairs {
				for r := 0; r < tt.cfg.Rows; r++ {
					for c := 0; c < tt.cfg.Cols; c++ {
						front := pair.Front.CellAt(r, c)
						br, bc := r, c
						if tt.cfg.FlipAxis == AxisShortEdge {
							bc = tt.cfg.Cols - 1 - c
						} else {
							br = tt.cfg.Rows - 1 - r
						}
						back := pair.Back.CellAt(br, bc)

						switch {
						case front.Blank() != back.Blank():
							t.Fatalf("page %d (%d,%d): blank mismatch front=%v back=%v",
								pair.Front.Index, r, c, front.Blank(), back.Blank())
						case !front.Blank() && front.Card.Ordinal != back.Card.Ordinal:
							t.Fatalf("page %d (%d,%d): front card %d, back card %d",
								pair.Front.Index, r, c, front.Card.Ordinal, back.Card.Ordinal)
						}
					}
				}
				if got, want := pair.Back.CardCount(), pair.Front.CardCount(); got != want {
					t.Errorf("page %d: back holds %d cards, front %d", pair.Front.Index, got, want)
				}
			}
		})
	}
}

// TestPlanCardinality checks that every ordinal lands in exactly one front
// cell and exactly one back cell across the whole plan.
func TestPlanCardinality(t *testing.T) {
	const n = 23
	cfg := Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}

	pairs, err := Plan(testCards(n), cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	frontSeen := make(map[int]int)
	backSeen := make(map[int]int)
	for _, pair := range pairs {
		for _, cell := range pair.Front.Cells {
			if !cell.Blank() {
				frontSeen[cell.Card.Ordinal]++
			}
		}
		for _, cell := range pair.Back.Cells {
			if !cell.Blank() {
				backSeen[cell.Card.Ordinal]++
			}
		}
	}

	if len(frontSeen) != n {
		t.Errorf("front cells hold %d distinct ordinals, want %d", len(frontSeen), n)
	}
	for ordinal := 0; ordinal < n; ordinal++ {
		if frontSeen[ordinal] != 1 {
			t.Errorf("ordinal %d appears in %d front cells, want 1", ordinal, frontSeen[ordinal])
		}
		if backSeen[ordinal] != 1 {
			t.Errorf("ordinal %d appears in %d back cells, want 1", ordinal, backSeen[ordinal])
		}
	}
}

// TestPlanOrderPreserved checks row-major fill order on front pages: ordinals
// must appear in input order when cells are read left-to-right, top-to-bottom.
func TestPlanOrderPreserved(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3, FlipAxis: AxisShortEdge}
	pairs, err := Plan(testCards(14), cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	next := 0
	for _, pair := range pairs {
		for _, cell := range pair.Front.Cells {
			if cell.Blank() {
				continue
			}
			if cell.Card.Ordinal != next {
				t.Fatalf("front fill order: got ordinal %d, want %d", cell.Card.Ordinal, next)
			}
			next++
		}
	}
	if next != 14 {
		t.Errorf("placed %d cards, want 14", next)
	}
}

// TestPlanPadding checks that only the final sheet is padded, and only in its
// trailing cells.
func TestPlanPadding(t *testing.T) {
	cfg := Config{Rows: 3, Cols: 3, FlipAxis: AxisLongEdge}
	pairs, err := Plan(testCards(11), cfg) // 9 + 2: final sheet has 7 blanks
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}

	if got := pairs[0].Front.CardCount(); got != 9 {
		t.Errorf("sheet 0 front cards = %d, want 9", got)
	}
	last := pairs[1].Front
	if got := last.CardCount(); got != 2 {
		t.Errorf("final sheet front cards = %d, want 2", got)
	}
	for i, cell := range last.Cells {
		wantBlank := i >= 2
		if cell.Blank() != wantBlank {
			t.Errorf("final sheet cell %d: blank = %v, want %v", i, cell.Blank(), wantBlank)
		}
	}
}

func TestPlanDeterminism(t *testing.T) {
	cards := testCards(17)
	cfg := Config{Rows: 3, Cols: 3, FlipAxis: AxisShortEdge}

	first, err := Plan(cards, cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	second, err := Plan(cards, cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Plan() calls produced different output")
	}
}

func TestPlanPagesRectangular(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 4, FlipAxis: AxisShortEdge}
	pairs, err := Plan(testCards(9), cfg)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	for _, pair := range pairs {
		for _, p := range []Page{pair.Front, pair.Back} {
			if len(p.Cells) != cfg.Capacity() {
				t.Fatalf("page %d %s: %d cells, want %d", p.Index, p.Side, len(p.Cells), cfg.Capacity())
			}
			for i, cell := range p.Cells {
				if cell.Row != i/cfg.Cols || cell.Col != i%cfg.Cols {
					t.Errorf("page %d %s cell %d: position (%d,%d), want (%d,%d)",
						p.Index, p.Side, i, cell.Row, cell.Col, i/cfg.Cols, i%cfg.Cols)
				}
			}
		}
	}
}

func TestPlanDegenerateGrid(t *testing.T) {
	for _, axis := range []Axis{AxisLongEdge, AxisShortEdge} {
		pairs, err := Plan(testCards(3), Config{Rows: 1, Cols: 1, FlipAxis: axis})
		if err != nil {
			t.Fatalf("Plan(1x1, %s) error: %v", axis, err)
		}
		if len(pairs) != 3 {
			t.Fatalf("Plan(1x1, %s) = %d pairs, want 3", axis, len(pairs))
		}
		for i, pair := range pairs {
			front, back := pair.Front.CellAt(0, 0), pair.Back.CellAt(0, 0)
			if front.Blank() || back.Blank() {
				t.Fatalf("sheet %d: unexpected blank on 1x1 grid", i)
			}
			if front.Card.Ordinal != i || back.Card.Ordinal != i {
				t.Errorf("sheet %d: front=%d back=%d, want both %d",
					i, front.Card.Ordinal, back.Card.Ordinal, i)
			}
		}
	}
}
