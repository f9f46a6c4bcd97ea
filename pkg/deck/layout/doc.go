// Package layout paginates a card deck onto double-sided printable sheets.
//
// The planner partitions cards into pages of Rows×Cols cells and computes,
// for every front page, the mirrored back page such that printing fronts,
// flipping the physical sheet about the configured axis, and printing backs
// puts each card's reveal exactly behind its own hint.
//
// # Flip transform
//
// The binding axis decides which coordinate mirrors:
//
//   - [AxisLongEdge] (flip top-to-bottom): back row = Rows-1-row, column kept.
//   - [AxisShortEdge] (flip left-to-right): back col = Cols-1-col, row kept.
//
// A 1×1 grid degenerates to the identity transform, which is correct: a
// single cell has no position to mirror.
//
// # Determinism
//
// Plan is a pure function of its inputs. Same cards, same config — identical
// output, including the placement of padding blanks on the final sheet.
package layout
