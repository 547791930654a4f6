package page

import (
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/block"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/layout/list"
	"github.com/foliant/xslfo/layout/table"
	"github.com/foliant/xslfo/props"
)

// FlowBuilder turns a `flow` or `static-content`'s direct children into the
// ordered block.Block sequence the page builder consumes (spec §4.6
// "Consumes the ordered block sequence of a flow and emits pages"). Unlike
// layout/block.Builder.Build, it dispatches `table` and `list-block`
// children to their own builders: layout/block's own Stack only recurses
// into `block`/`block-container` children (tables and lists are laid out
// by sibling packages, so the flow level is where all three meet).
type FlowBuilder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Options  *layout.Options

	blocks *block.Builder
	tables *table.Builder
	lists  *list.Builder

	markers *MarkerRegistry
}

// NewFlowBuilder returns a FlowBuilder sharing one MarkerRegistry across
// every flow built with it, so static content built afterwards can resolve
// retrieve-marker against the whole document.
func NewFlowBuilder(r *props.Resolver, fonts *fontregistry.Registry, opts *layout.Options, markers *MarkerRegistry) *FlowBuilder {
	return &FlowBuilder{
		Resolver: r, Fonts: fonts, Options: opts,
		blocks:  block.NewBuilder(r, fonts, opts),
		tables:  table.NewBuilder(r, fonts, opts),
		lists:   list.NewBuilder(r, fonts, opts),
		markers: markers,
	}
}

// FlowItem pairs one top-level flow child's laid-out Block with the
// footnote-bodies its own content cited, already built into Blocks, so the
// page builder can enqueue a block's footnotes exactly when that block
// itself is placed on a page (spec §4.6 "Footnotes"): a footnote cited on
// page N prints at the bottom of page N, not wherever the flow happened to
// finish building.
type FlowItem struct {
	Block     block.Block
	Footnotes []block.Block
}

// Build dispatches every direct child of n to the builder that owns its
// kind, in document order.
func (fb *FlowBuilder) Build(n *fo.Node, width dimen.DU) []FlowItem {
	var out []FlowItem
	for _, c := range n.Children {
		before := len(fb.blocks.Footnotes()) + len(fb.tables.Footnotes()) + len(fb.lists.Footnotes())
		var b block.Block
		switch c.Kind {
		case fo.KindTable:
			b = fb.tables.Build(c, width)
		case fo.KindListBlock:
			b = fb.lists.Build(c, width)
		case fo.KindBlock, fo.KindBlockContainer:
			b = fb.blocks.Build(c, width)
		case fo.KindMarker:
			// A marker's content is never rendered where it is declared
			// (spec §4.6 "Static content..."). RecordMarkers, called by
			// BuildSequence for each flow item as it is placed, registers
			// the markers inside that item's subtree; a marker that is a
			// direct child of the flow belongs to no item and is not
			// registered.
			continue
		default:
			continue
		}
		all := fb.Footnotes()
		var bodies []block.Block
		for _, fn := range all[before:] {
			bodies = append(bodies, fb.blocks.Build(fn, width))
		}
		out = append(out, FlowItem{Block: b, Footnotes: bodies})
	}
	return out
}

// Citations returns every page-number/page-number-citation placeholder
// produced by every Build call made on this FlowBuilder so far.
func (fb *FlowBuilder) Citations() []inline.Citation {
	var out []inline.Citation
	out = append(out, fb.blocks.Citations()...)
	out = append(out, fb.tables.Citations()...)
	out = append(out, fb.lists.Citations()...)
	return out
}

// Footnotes returns every footnote-body node encountered by every Build
// call made on this FlowBuilder so far, in document order.
func (fb *FlowBuilder) Footnotes() []*fo.Node {
	var out []*fo.Node
	out = append(out, fb.blocks.Footnotes()...)
	out = append(out, fb.tables.Footnotes()...)
	out = append(out, fb.lists.Footnotes()...)
	return out
}

// RecordMarkers walks n's subtree recording every `marker` node in
// document order against the given page number/sequence index, so
// static content laid out after the body can resolve retrieve-marker.
func (fb *FlowBuilder) RecordMarkers(n *fo.Node, pageNumber, seqIndex int) {
	if n == nil {
		return
	}
	if n.Kind == fo.KindMarker {
		class, _ := n.Prop("marker-class-name")
		fb.markers.Record(class, n, pageNumber, seqIndex)
	}
	for _, c := range n.Children {
		fb.RecordMarkers(c, pageNumber, seqIndex)
	}
}
