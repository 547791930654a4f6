package block

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
)

// Block is a piece of flow content ready to contribute to the page
// builder's ordered block sequence (spec §4.6: "Consumes the ordered block
// sequence of a flow and emits pages"). A Block may be laid out in one
// shot (Fragment returns done=true) or may need to be split across
// columns/pages, in which case Fragment returns the portion that fit plus
// a Block representing what remains.
type Block interface {
	// Node is the originating fo.Node, used for error source-location
	// references (spec §7) and keep/break constraint lookups.
	Node() *fo.Node

	// NaturalHeight is this block's height if laid out in one uninterrupted
	// fragment at its configured width.
	NaturalHeight() dimen.DU

	// Fragment lays out as much of the block as fits within `remaining`
	// height. If nothing fits, frag is nil. If the whole block fit, rest
	// is nil and done is true.
	Fragment(remaining dimen.DU) (frag area.Area, rest Block, done bool)

	// Keep returns the block's keep/break constraints, consulted by the
	// page builder (spec §4.6 "Keep/break constraints").
	Keep() Constraints
}

// Constraints bundles the keep/break properties the page builder consults
// when deciding whether (and where) to split a Block.
type Constraints struct {
	Together     KeepConstraint
	WithNext     KeepConstraint
	WithPrevious KeepConstraint
	BreakBefore  string // "", "page", "column"
	BreakAfter   string
}
