package sink

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/layout"
)

//go:embed deck.html.tmpl
var deckTemplate string

//go:embed deck.css
var deckStylesheet string

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	stylesheet string
	template   string
}

// WithTitle sets the document title shown in the browser tab and print header.
func WithTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// WithStylesheet replaces the embedded print stylesheet. The caller owns the
// CSS entirely; no defaults are merged in.
func WithStylesheet(css string) HTMLOption {
	return func(r *htmlRenderer) { r.stylesheet = css }
}

// WithTemplate replaces the embedded page template. The template is executed
// against the same data as the default one, so custom card designs can reuse
// the face fields without forking the sink.
func WithTemplate(tmpl string) HTMLOption {
	return func(r *htmlRenderer) { r.template = tmpl }
}

// htmlDoc is the root template context.
type htmlDoc struct {
	Title      string
	Stylesheet template.CSS
	Pages      []htmlPage
}

// htmlPage is one printed side, cells already resolved to the face matching
// that side.
type htmlPage struct {
	Index int
	Side  layout.Side
	Rows  int
	Cols  int
	Cells []htmlCell
}

type htmlCell struct {
	Blank bool
	Face  deck.Face
}

// RenderHTML renders page pairs as a printable HTML document. Pages appear in
// sheet order, front before back, each on its own printed page so the deck
// comes out of a duplex printer correctly aligned.
func RenderHTML(pairs []layout.PagePair, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title:      "tunedeck",
		stylesheet: deckStylesheet,
		template:   deckTemplate,
	}
	for _, opt := range opts {
		opt(&r)
	}

	tmpl, err := template.New("deck").Parse(r.template)
	if err != nil {
		return nil, fmt.Errorf("parse deck template: %w", err)
	}

	doc := htmlDoc{
		Title:      r.title,
		Stylesheet: template.CSS(r.stylesheet),
		Pages:      flattenPairs(pairs),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render deck template: %w", err)
	}
	return buf.Bytes(), nil
}

// flattenPairs interleaves fronts and backs in print order and resolves each
// cell to the face of its side. Blank cells stay present so the grid renders
// rectangular.
func flattenPairs(pairs []layout.PagePair) []htmlPage {
	pages := make([]htmlPage, 0, 2*len(pairs))
	for _, pair := range pairs {
		pages = append(pages, flattenPage(pair.Front), flattenPage(pair.Back))
	}
	return pages
}

func flattenPage(p layout.Page) htmlPage {
	out := htmlPage{Index: p.Index, Side: p.Side, Rows: p.Rows, Cols: p.Cols}
	out.Cells = make([]htmlCell, len(p.Cells))
	for i, cell := range p.Cells {
		if cell.Blank() {
			out.Cells[i] = htmlCell{Blank: true}
			continue
		}
		face := cell.Card.Front
		if p.Side == layout.SideBack {
			face = cell.Card.Back
		}
		out.Cells[i] = htmlCell{Face: face}
	}
	return out
}
