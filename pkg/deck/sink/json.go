package sink

import (
	"encoding/json"

	"github.com/tunedeck/tunedeck/pkg/deck/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
	cfg   *layout.Config
}

// WithJSONTitle records the deck title in the JSON output.
func WithJSONTitle(title string) JSONOption {
	return func(r *jsonRenderer) { r.title = title }
}

// WithJSONConfig records the layout config used to produce the pairs, so an
// external renderer can reproduce the geometry without re-deriving it.
func WithJSONConfig(cfg layout.Config) JSONOption {
	return func(r *jsonRenderer) { r.cfg = &cfg }
}

type jsonOutput struct {
	Title  string           `json:"title,omitempty"`
	Config *layout.Config   `json:"config,omitempty"`
	Sheets []layout.PagePair `json:"sheets"`
}

// RenderJSON renders page pairs as indented, deterministic JSON. Sheets
// appear in page order; every cell is present, blanks included.
func RenderJSON(pairs []layout.PagePair, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:  r.title,
		Config: r.cfg,
		Sheets: pairs,
	}
	if out.Sheets == nil {
		out.Sheets = []layout.PagePair{}
	}
	return json.MarshalIndent(out, "", "  ")
}
