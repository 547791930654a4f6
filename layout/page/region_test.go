package page

import (
	"testing"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/block"
	"github.com/stretchr/testify/require"
)

func colRect(height dimen.DU) area.Rect {
	return area.Rect{Size: area.Size{W: 200 * dimen.PT, H: height}}
}

func noopFirstFragment(*fo.Node) {}

func TestFillColumnPlacesWholeItemsWhileTheyFit(t *testing.T) {
	items := []FlowItem{
		{Block: &fakeBlock{height: 30 * dimen.PT, node: fo.New(fo.KindBlock)}},
		{Block: &fakeBlock{height: 30 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, used, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakNone, sig)
	require.Len(t, children, 2)
	require.Equal(t, 60*dimen.PT, used)
	require.True(t, cur.done())
}

func TestFillColumnFragmentsSecondItemThenStopsColumn(t *testing.T) {
	items := []FlowItem{
		{Block: &fakeBlock{height: 90 * dimen.PT, node: fo.New(fo.KindBlock)}},
		{Block: &fakeBlock{height: 90 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	_, _, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.False(t, cur.done())
}

func TestFillColumnHonorsBreakBeforePage(t *testing.T) {
	n := fo.New(fo.KindBlock)
	n.SetProp("break-before", "page")
	items := []FlowItem{{Block: &fakeBlock{height: 10 * dimen.PT, node: n, keep: block.Constraints{BreakBefore: "page"}}}}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, used, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakPage, sig)
	require.Empty(t, children)
	require.Equal(t, dimen.DU(0), used)
	require.False(t, cur.done())
}

func TestFillColumnHonorsBreakAfterColumn(t *testing.T) {
	n := fo.New(fo.KindBlock)
	items := []FlowItem{
		{Block: &fakeBlock{height: 10 * dimen.PT, node: n, keep: block.Constraints{BreakAfter: "column"}}},
		{Block: &fakeBlock{height: 10 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, _, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Len(t, children, 1)
	require.False(t, cur.done())
}

func TestFillColumnKeepTogetherMovesWholeItemToNextColumn(t *testing.T) {
	n := fo.New(fo.KindBlock)
	items := []FlowItem{
		{Block: &fakeBlock{height: 150 * dimen.PT, node: n, keep: block.Constraints{Together: block.KeepConstraint{Set: true, Always: true}}}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, _, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Empty(t, children)
	require.False(t, cur.done())
}

func TestFillColumnKeepWithNextPushesBothItemsOnward(t *testing.T) {
	keepNext := block.Constraints{WithNext: block.KeepConstraint{Set: true, Strength: 1}}
	items := []FlowItem{
		{Block: &fakeBlock{height: 40 * dimen.PT, node: fo.New(fo.KindBlock), keep: keepNext}},
		{Block: &fakeBlock{height: 40 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	// Only 50pt available: the first item (40pt) fits alone, but not with
	// the 40pt next item it must stay attached to, so neither is placed.
	children, _, sig := fillColumn(cur, colRect(50*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Empty(t, children)
	require.False(t, cur.done())
}

func TestFillColumnKeepWithPreviousOnlyPullsNextItemBack(t *testing.T) {
	// No keep-with-next on the first item at all -- only the second item
	// declares keep-with-previous. EffectiveJoin must still catch this.
	keepPrev := block.Constraints{WithPrevious: block.KeepConstraint{Set: true, Strength: 1}}
	items := []FlowItem{
		{Block: &fakeBlock{height: 40 * dimen.PT, node: fo.New(fo.KindBlock)}},
		{Block: &fakeBlock{height: 40 * dimen.PT, node: fo.New(fo.KindBlock), keep: keepPrev}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, _, sig := fillColumn(cur, colRect(50*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Empty(t, children)
	require.False(t, cur.done())
}

func TestFillColumnKeepTogetherIntegerStrengthAlsoForbidsSplit(t *testing.T) {
	n := fo.New(fo.KindBlock)
	items := []FlowItem{
		{Block: &fakeBlock{height: 150 * dimen.PT, node: n, keep: block.Constraints{Together: block.KeepConstraint{Set: true, Strength: 3}}}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, _, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Empty(t, children)
	require.False(t, cur.done())
}

func TestFillColumnFragmentsItemThatPartiallyFits(t *testing.T) {
	items := []FlowItem{
		{Block: &fakeBlock{height: 150 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	children, used, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Len(t, children, 1)
	require.Equal(t, 100*dimen.PT, used)
	require.False(t, cur.done())

	// Resuming should place the remaining 50pt in a fresh column.
	children2, used2, sig2 := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakNone, sig2)
	require.Len(t, children2, 1)
	require.Equal(t, 50*dimen.PT, used2)
	require.True(t, cur.done())
}

func TestFillColumnReservesSpaceForPendingFootnotes(t *testing.T) {
	items := []FlowItem{
		{Block: &fakeBlock{height: 90 * dimen.PT, node: fo.New(fo.KindBlock)}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()
	q.Enqueue(&fakeBlock{height: 20 * dimen.PT})

	children, _, sig := fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, breakColumn, sig)
	require.Len(t, children, 1) // the 90pt item is fragmented down to fit in 80pt
	require.False(t, cur.done())
}

func TestFillColumnEnqueuesFootnotesWhenItemPlaced(t *testing.T) {
	fn := &fakeBlock{height: 15 * dimen.PT}
	items := []FlowItem{
		{Block: &fakeBlock{height: 10 * dimen.PT, node: fo.New(fo.KindBlock)}, Footnotes: []block.Block{fn}},
	}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	fillColumn(cur, colRect(100*dimen.PT), q, noopFirstFragment)
	require.Equal(t, 15*dimen.PT, q.ReservedHeight())
}

func TestFillColumnCallsOnFirstFragmentOnceOnly(t *testing.T) {
	n := fo.New(fo.KindBlock)
	items := []FlowItem{{Block: &fakeBlock{height: 150 * dimen.PT, node: n}}}
	cur := newFlowCursor(items)
	q := NewFootnoteQueue()

	var calls int
	onFirst := func(got *fo.Node) {
		calls++
		require.Same(t, n, got)
	}

	fillColumn(cur, colRect(100*dimen.PT), q, onFirst)
	require.Equal(t, 1, calls)
	require.False(t, cur.done())

	fillColumn(cur, colRect(100*dimen.PT), q, onFirst)
	require.Equal(t, 1, calls)
	require.True(t, cur.done())
}
