package page

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/block"
)

// breakSignal reports a forced break encountered while filling a column,
// distinguishing "just this column is full" from "the next item demands a
// page break" so the caller can decide whether to advance to the next
// column or abandon the remaining columns on this page outright.
type breakSignal uint8

const (
	breakNone breakSignal = iota
	breakColumn
	breakPage
)

// fillColumn realizes one pass of the page builder's
// Empty -> FillingColumn(i) -> ColumnFull(i) state transition (spec §4.6):
// it places whole or fragmented flow items into colRect until nothing more
// fits, honoring break-before/-after, keep-together and keep-with-next,
// and reserving space at the bottom for any footnote bodies already
// pending plus any this column's own citations add.
func fillColumn(cur *flowCursor, colRect area.Rect, footnotes *FootnoteQueue, onFirstFragment func(*fo.Node)) (children []area.Area, usedHeight dimen.DU, sig breakSignal) {
	var cursor dimen.DU
	for !cur.done() {
		b, fns := cur.current()
		keep := b.Keep()
		firstFragment := cur.pending == nil

		if cursor == 0 && cur.pending == nil {
			switch keep.BreakBefore {
			case "page":
				return children, cursor, breakPage
			case "column":
				return children, cursor, breakColumn
			}
		}

		avail := colRect.Size.H - cursor - footnotes.ReservedHeight()
		if avail <= 0 {
			return children, cursor, breakColumn
		}

		nh := b.NaturalHeight()
		if nh <= avail {
			// keep-with-next/keep-with-previous: if placing this item
			// whole would leave no room for the very next item, and
			// either side of the boundary asks for the pair to stay
			// together, push both to the next column/page instead of
			// splitting them apart. block.EffectiveJoin merges this
			// item's keep-with-next with the next item's own
			// keep-with-previous (spec §4.6's symmetric keep-with-
			// previous), so a keep-with-previous declared only on the
			// next item still pulls it back even with no keep-with-next
			// declared here.
			if next := cur.peekNext(); next != nil {
				join := block.EffectiveJoin(keep.WithNext, next.Keep().WithPrevious)
				if join.Set && next.NaturalHeight() > avail-nh {
					return children, cursor, breakColumn
				}
			}
			if firstFragment {
				onFirstFragment(b.Node())
			}
			frag, _, _ := b.Fragment(nh)
			positionAt(frag, colRect.Origin.X, colRect.Origin.Y+cursor)
			children = append(children, frag)
			cursor += nh
			if len(fns) > 0 {
				enqueueFootnotes(footnotes, fns)
			}
			cur.advance()
			if keep.BreakAfter == "page" {
				return children, cursor, breakPage
			}
			if keep.BreakAfter == "column" {
				return children, cursor, breakColumn
			}
			continue
		}

		// keep-together disables splitting at any declared strength, not
		// only "always" (spec §4.6): an integer keep-together still means
		// "try not to split me", it just loses every tie against a
		// stronger competing constraint elsewhere (KeepConstraint.Stronger).
		if keep.Together.Set {
			return children, cursor, breakColumn
		}

		if firstFragment {
			onFirstFragment(b.Node())
		}
		frag, rest, done := b.Fragment(avail)
		if frag == nil {
			return children, cursor, breakColumn
		}
		positionAt(frag, colRect.Origin.X, colRect.Origin.Y+cursor)
		children = append(children, frag)
		cursor += frag.Rect().Size.H
		if done {
			if len(fns) > 0 {
				enqueueFootnotes(footnotes, fns)
			}
			cur.advance()
		} else {
			cur.setRemainder(rest)
		}
		return children, cursor, breakColumn
	}
	return children, cursor, breakNone
}

func enqueueFootnotes(q *FootnoteQueue, bodies []block.Block) {
	for _, body := range bodies {
		q.Enqueue(body)
	}
}

func positionAt(a area.Area, x, y dimen.DU) {
	switch v := a.(type) {
	case *area.BlockArea:
		v.Box.Origin = dimen.Point{X: x, Y: y}
	}
}
