package page

import "github.com/foliant/xslfo/layout/block"

// flowCursor walks a FlowBuilder's FlowItem sequence item by item, keeping
// track of a partially-fragmented item (the remainder block.Fragment
// returned when an item straddles a column/page boundary) so the page
// builder can resume exactly where the previous column left off.
type flowCursor struct {
	items   []FlowItem
	idx     int
	pending block.Block // non-nil: a remainder of items[idx].Block still to place
}

func newFlowCursor(items []FlowItem) *flowCursor {
	return &flowCursor{items: items}
}

func (c *flowCursor) done() bool { return c.idx >= len(c.items) }

// current returns the block.Block to place next (the pending remainder, if
// any, otherwise the current item's whole block) and that item's footnotes.
func (c *flowCursor) current() (block.Block, []block.Block) {
	if c.pending != nil {
		return c.pending, c.items[c.idx].Footnotes
	}
	return c.items[c.idx].Block, c.items[c.idx].Footnotes
}

// peekNext returns the block that will be current after the present item is
// fully placed, or nil if none remains -- used to honor keep-with-next.
func (c *flowCursor) peekNext() block.Block {
	if c.idx+1 < len(c.items) {
		return c.items[c.idx+1].Block
	}
	return nil
}

// advance marks the present item fully placed and moves to the next one.
func (c *flowCursor) advance() {
	c.idx++
	c.pending = nil
}

// setRemainder records an in-progress fragment of the present item, to be
// resumed by the next column/page.
func (c *flowCursor) setRemainder(rest block.Block) {
	c.pending = rest
}
