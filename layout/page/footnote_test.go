package page

import (
	"testing"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/block"
	"github.com/stretchr/testify/require"
)

type fakeBlock struct {
	height dimen.DU
	node   *fo.Node
	keep   block.Constraints
}

func (f *fakeBlock) Node() *fo.Node          { return f.node }
func (f *fakeBlock) NaturalHeight() dimen.DU { return f.height }
func (f *fakeBlock) Keep() block.Constraints { return f.keep }
func (f *fakeBlock) Fragment(remaining dimen.DU) (area.Area, block.Block, bool) {
	if f.height <= remaining {
		return &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{H: f.height}}}}, nil, true
	}
	frag := &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{H: remaining}}}}
	rest := &fakeBlock{height: f.height - remaining, node: f.node}
	return frag, rest, false
}

func TestFootnoteQueueReservesSumOfPendingHeights(t *testing.T) {
	q := NewFootnoteQueue()
	require.True(t, q.Empty())
	require.Equal(t, dimen.DU(0), q.ReservedHeight())

	q.Enqueue(&fakeBlock{height: 10 * dimen.PT})
	q.Enqueue(&fakeBlock{height: 20 * dimen.PT})
	require.False(t, q.Empty())
	require.Equal(t, 30*dimen.PT, q.ReservedHeight())
}

func TestFootnoteQueueDrainPreservesCitationOrder(t *testing.T) {
	q := NewFootnoteQueue()
	first := &fakeBlock{height: 10 * dimen.PT}
	second := &fakeBlock{height: 20 * dimen.PT}
	third := &fakeBlock{height: 5 * dimen.PT}
	q.Enqueue(first)
	q.Enqueue(second)
	q.Enqueue(third)

	bodies := q.DrainForPage()
	require.Equal(t, []block.Block{first, second, third}, bodies)
	require.True(t, q.Empty())
	require.Equal(t, dimen.DU(0), q.ReservedHeight())
}
