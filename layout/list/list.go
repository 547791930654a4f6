package list

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/block"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/props"
)

// Builder constructs a List (a block.Block) from a `list-block` fo.Node.
type Builder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Options  *layout.Options
	blocks   *block.Builder
}

// NewBuilder returns a list Builder.
func NewBuilder(r *props.Resolver, fonts *fontregistry.Registry, opts *layout.Options) *Builder {
	if opts == nil {
		opts = layout.NewDefaultOptions()
	}
	return &Builder{Resolver: r, Fonts: fonts, Options: opts, blocks: block.NewBuilder(r, fonts, opts)}
}

// Citations returns every page-number/page-number-citation placeholder
// produced while building item content so far, forwarded from the
// underlying block.Builder (layout/page.ResolveCitations).
func (b *Builder) Citations() []inline.Citation { return b.blocks.Citations() }

// Footnotes forwards every footnote-body node encountered while building
// item content so far.
func (b *Builder) Footnotes() []*fo.Node { return b.blocks.Footnotes() }

// List lays out a `list-block`'s items in sequence, collapsing adjoining
// margins between them the same way layout/block.Stack does for ordinary
// block siblings.
type List struct {
	node     *fo.Node
	width    dimen.DU
	items    []block.Block
	spaces   []*block.Space
	start    int
	keep     block.Constraints
}

func (b *Builder) Build(n *fo.Node, width dimen.DU) *List {
	distance, _ := b.Resolver.Length(n, "provisional-distance-between-starts", width, 24*dimen.PT)
	separation, _ := b.Resolver.Length(n, "provisional-label-separation", width, 6*dimen.PT)
	labelWidth := distance - separation
	if labelWidth < 0 {
		labelWidth = 0
	}
	bodyWidth := width - distance
	if bodyWidth < 0 {
		bodyWidth = 0
	}

	l := &List{node: n, width: width, keep: b.constraintsFor(n)}
	for _, c := range n.Children {
		if c.Kind != fo.KindListItem {
			continue
		}
		l.items = append(l.items, b.buildItem(c, labelWidth, distance, bodyWidth))
		d, _ := b.Resolver.Length(c, "margin-bottom", width, 0)
		l.spaces = append(l.spaces, &block.Space{Length: d})
	}
	return l
}

func (b *Builder) buildItem(n *fo.Node, labelWidth, bodyOffset, bodyWidth dimen.DU) *Item {
	it := &Item{labelWidth: labelWidth, bodyOffset: bodyOffset, bodyWidth: bodyWidth, node: n, constraints: b.constraintsFor(n)}
	for _, c := range n.Children {
		switch c.Kind {
		case fo.KindListItemLabel:
			it.label = b.blocks.Build(c, labelWidth)
		case fo.KindListItemBody:
			it.body = b.blocks.Build(c, bodyWidth)
		}
	}
	return it
}

func (b *Builder) constraintsFor(n *fo.Node) block.Constraints {
	return block.Constraints{
		Together:     block.KeepTogether(b.Resolver, n),
		WithNext:     block.KeepWithNext(b.Resolver, n),
		WithPrevious: block.KeepWithPrevious(b.Resolver, n),
		BreakBefore:  block.BreakBefore(b.Resolver, n),
		BreakAfter:   block.BreakAfter(b.Resolver, n),
	}
}

func (l *List) Node() *fo.Node          { return l.node }
func (l *List) Keep() block.Constraints { return l.keep }

func (l *List) NaturalHeight() dimen.DU {
	var h dimen.DU
	for i := l.start; i < len(l.items); i++ {
		h += l.items[i].NaturalHeight()
		if i+1 < len(l.items) {
			h += block.CollapseAdjoining(l.spaces[i], nil)
		}
	}
	return h
}

// Fragment moves whole items into the fragment until one doesn't fit, then
// recurses into that item (list items are never keep-together-protected
// from splitting the way a table row is -- spec §4.6 supplement).
func (l *List) Fragment(remaining dimen.DU) (area.Area, block.Block, bool) {
	frag := &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{W: l.width}}}}
	items := append([]block.Block(nil), l.items...)
	var cursor dimen.DU
	splitIndex := len(items)

	for i := l.start; i < len(items); i++ {
		item := items[i]
		avail := remaining - cursor
		if avail <= 0 {
			splitIndex = i
			break
		}
		nh := item.NaturalHeight()
		if nh <= avail {
			itemArea, _, _ := item.Fragment(nh)
			positionAt(itemArea, 0)
			setY(itemArea, cursor)
			frag.Children = append(frag.Children, itemArea)
			cursor += nh
			if i+1 < len(items) {
				cursor += block.CollapseAdjoining(l.spaces[i], nil)
			}
			continue
		}
		itemArea, rest, done := item.Fragment(avail)
		if itemArea == nil {
			splitIndex = i
			break
		}
		setY(itemArea, cursor)
		frag.Children = append(frag.Children, itemArea)
		cursor += itemArea.Rect().Size.H
		if done {
			splitIndex = i + 1
		} else {
			items[i] = rest
			splitIndex = i
		}
		break
	}

	frag.Box.Size.H = cursor
	if splitIndex >= len(items) {
		return frag, nil, true
	}
	if len(frag.Children) == 0 {
		return nil, l, false
	}
	rest := &List{node: l.node, width: l.width, items: items, spaces: l.spaces, keep: l.keep, start: splitIndex}
	return frag, rest, false
}

func setY(a area.Area, y dimen.DU) {
	if ba, ok := a.(*area.BlockArea); ok {
		ba.Box.Origin.Y = y
	}
}
