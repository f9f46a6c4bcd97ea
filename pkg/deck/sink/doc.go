// Package sink renders planned page pairs into output artifacts.
//
// The planner's output is a pure data structure; sinks turn it into something
// a printer or another tool can consume:
//
//   - [RenderHTML] emits a print-ready HTML document with one CSS-grid page
//     per sheet side, page-broken for double-sided printing.
//   - [RenderJSON] emits the canonical serialization of the page pairs, for
//     external renderers or round-tripping.
//   - [RenderCSV] exports the raw track dataset for spreadsheet post-editing.
//
// Sinks never reorder or drop cells: blanks render as empty cells so page
// geometry stays rectangular.
package sink
