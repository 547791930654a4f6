package page

import (
	"container/heap"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/layout/block"
)

// pendingFootnote is one footnote-body enqueued for the current page,
// ordered by arrival sequence (a footnote cited later in the flow is
// always printed after one cited earlier).
type pendingFootnote struct {
	seq   int
	body  block.Block
	index int // heap.Interface bookkeeping
}

// FootnoteQueue reserves bottom-of-region space for the cumulative height
// of pending footnote bodies (spec §4.6 "Footnotes"), implemented as a
// container/heap priority queue ordered by citation order, mirroring the
// teacher's engine/frame/layout.EventQ (a heap.Interface wrapping a typed
// event slice) adapted from page-reflow events to footnote bodies.
type FootnoteQueue struct {
	items []*pendingFootnote
	nextSeq int
}

// NewFootnoteQueue returns an empty queue.
func NewFootnoteQueue() *FootnoteQueue {
	return &FootnoteQueue{}
}

func (q FootnoteQueue) Len() int            { return len(q.items) }
func (q FootnoteQueue) Less(i, j int) bool  { return q.items[i].seq < q.items[j].seq }
func (q FootnoteQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *FootnoteQueue) Push(x interface{}) {
	n := len(q.items)
	it := x.(*pendingFootnote)
	it.index = n
	q.items = append(q.items, it)
}

func (q *FootnoteQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	q.items = old[0 : n-1]
	return item
}

// Enqueue adds a footnote body to the queue, preserving citation order.
func (q *FootnoteQueue) Enqueue(body block.Block) {
	heap.Push(q, &pendingFootnote{seq: q.nextSeq, body: body})
	q.nextSeq++
}

// ReservedHeight is the total natural height of every footnote body still
// pending for the current page.
func (q *FootnoteQueue) ReservedHeight() dimen.DU {
	var h dimen.DU
	for _, it := range q.items {
		h += it.body.NaturalHeight()
	}
	return h
}

// DrainForPage removes every pending footnote body (in citation order) so
// the caller can lay them out at the bottom of the region, resetting the
// queue for the next page.
func (q *FootnoteQueue) DrainForPage() []block.Block {
	bodies := make([]block.Block, 0, len(q.items))
	for q.Len() > 0 {
		it := heap.Pop(q).(*pendingFootnote)
		bodies = append(bodies, it.body)
	}
	return bodies
}

// Empty reports whether the queue currently holds no pending bodies.
func (q *FootnoteQueue) Empty() bool { return len(q.items) == 0 }
