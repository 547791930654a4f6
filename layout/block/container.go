package block

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/props"
)

// Builder constructs a Block tree from an fo.Node subtree, resolving
// properties and shaping text along the way.
type Builder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Options  *layout.Options
	Markers  inline.MarkerResolver // optional; forwarded to every leaf's inline.Builder

	citations []inline.Citation
	footnotes []*fo.Node
}

// NewBuilder returns a block Builder.
func NewBuilder(r *props.Resolver, fonts *fontregistry.Registry, opts *layout.Options) *Builder {
	if opts == nil {
		opts = layout.NewDefaultOptions()
	}
	return &Builder{Resolver: r, Fonts: fonts, Options: opts}
}

// Build turns n (a `block`, `block-container`, `flow`, `static-content` or
// similar) into a Block, recursing into block-level children and treating
// any node whose children are purely inline-bearing as a LeafBlock.
func (b *Builder) Build(n *fo.Node, width dimen.DU) Block {
	if isLeafContent(n) {
		return b.buildLeaf(n, width)
	}
	return b.buildStack(n, width)
}

func isLeafContent(n *fo.Node) bool {
	for _, c := range n.Children {
		switch c.Kind {
		case fo.KindBlock, fo.KindBlockContainer, fo.KindTable, fo.KindListBlock:
			return false
		}
	}
	return true
}

func (b *Builder) buildLeaf(n *fo.Node, width dimen.DU) *LeafBlock {
	ib := inline.NewBuilder(b.Resolver, b.Fonts)
	ib.Markers = b.Markers
	seq := ib.Build(n)
	b.citations = append(b.citations, ib.Citations()...)
	b.footnotes = append(b.footnotes, ib.Footnotes()...)
	fontSize := b.Resolver.FontSize(n)
	c := b.constraintsFor(n)
	return NewLeafBlock(n, seq, width, fontSize, b.Options.LineBreaking, b.Fonts, c)
}

// Citations returns every page-number/page-number-citation placeholder
// produced by Build calls made on this Builder so far, for pagination's
// two-pass resolution (layout/page.ResolveCitations).
func (b *Builder) Citations() []inline.Citation { return b.citations }

// Footnotes returns every footnote-body node encountered by Build calls
// made on this Builder so far, in document order.
func (b *Builder) Footnotes() []*fo.Node { return b.footnotes }

func (b *Builder) constraintsFor(n *fo.Node) Constraints {
	return Constraints{
		Together:     KeepTogether(b.Resolver, n),
		WithNext:     KeepWithNext(b.Resolver, n),
		WithPrevious: KeepWithPrevious(b.Resolver, n),
		BreakBefore:  BreakBefore(b.Resolver, n),
		BreakAfter:   BreakAfter(b.Resolver, n),
	}
}

// AbsoluteChild is a block-container removed from normal flow
// (spec §4.4 "Block containers"): its `top`/`left` resolve against the
// page, not against its stacking position, so layout/page places it
// directly onto the region rather than folding its height into the
// Stack's own NaturalHeight.
type AbsoluteChild struct {
	Block    Block
	Top      dimen.DU
	Left     dimen.DU
	HasTop   bool
	HasLeft  bool
}

// Stack lays out a sequence of block-level children, collapsing adjoining
// margins between them (spec §4.4, item 1), and fragments by moving whole
// children between page/column fragments, recursing into whichever child
// straddles the boundary.
type Stack struct {
	node        *fo.Node
	children    []Block
	spaces      []*Space // spaces[i]: space-after used between children[i] and children[i+1]
	width       dimen.DU
	constraints Constraints

	Absolute []AbsoluteChild

	start int // index of the first not-yet-emitted child
}

func (b *Builder) buildStack(n *fo.Node, width dimen.DU) *Stack {
	s := &Stack{node: n, width: width, constraints: b.constraintsFor(n)}

	for _, c := range n.Children {
		switch c.Kind {
		case fo.KindBlock, fo.KindBlockContainer:
			if c.Kind == fo.KindBlockContainer && b.isAbsolute(c) {
				s.Absolute = append(s.Absolute, b.buildAbsolute(c, width))
				continue
			}
			s.children = append(s.children, b.Build(c, width))
			s.spaces = append(s.spaces, &Space{Length: mustLength(b.Resolver, c, "margin-bottom", width)})
		}
	}
	return s
}

func (b *Builder) isAbsolute(n *fo.Node) bool {
	pos := b.Resolver.Computed(n, "absolute-position")
	return pos == "absolute" || pos == "fixed"
}

func (b *Builder) buildAbsolute(n *fo.Node, pageWidth dimen.DU) AbsoluteChild {
	width := mustLength(b.Resolver, n, "width", pageWidth)
	if width == 0 {
		width = pageWidth
	}
	child := b.Build(n, width)
	top, hasTop := b.Resolver.Length(n, "top", 0, 0)
	left, hasLeft := b.Resolver.Length(n, "left", pageWidth, 0)
	return AbsoluteChild{Block: child, Top: top, Left: left, HasTop: hasTop, HasLeft: hasLeft}
}

func mustLength(r *props.Resolver, n *fo.Node, name string, containing dimen.DU) dimen.DU {
	d, _ := r.Length(n, name, containing, 0)
	return d
}

func (s *Stack) Node() *fo.Node    { return s.node }
func (s *Stack) Keep() Constraints { return s.constraints }

func (s *Stack) NaturalHeight() dimen.DU {
	var h dimen.DU
	for i := s.start; i < len(s.children); i++ {
		h += s.children[i].NaturalHeight()
		if i+1 < len(s.children) {
			h += CollapseAdjoining(s.spaces[i], nil)
		}
	}
	return h
}

// Fragment moves whole children into the fragment until one doesn't fit,
// then recurses into that child (unless it forbids splitting, per
// keep-together) to take as much of it as fits.
func (s *Stack) Fragment(remaining dimen.DU) (area.Area, Block, bool) {
	frag := &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{W: s.width}}}}
	children := append([]Block(nil), s.children...)
	var cursor dimen.DU
	splitIndex := len(children)

	for i := s.start; i < len(children); i++ {
		child := children[i]
		avail := remaining - cursor
		if avail <= 0 {
			splitIndex = i
			break
		}
		nh := child.NaturalHeight()
		if nh <= avail {
			childArea, _, _ := child.Fragment(nh)
			positionChild(childArea, cursor)
			frag.Children = append(frag.Children, childArea)
			cursor += nh
			if i+1 < len(children) {
				cursor += CollapseAdjoining(s.spaces[i], nil)
			}
			continue
		}
		// Any declared keep-together strength disables mid-child splitting
		// here, not only "always" (spec §4.6) -- Stronger only matters when
		// a keep-together request loses out to a stronger competing
		// constraint, which fillColumn (layout/page) arbitrates via
		// EffectiveJoin for the keep-with-next/-previous case.
		if child.Keep().Together.Set {
			splitIndex = i
			break
		}
		childArea, rest, done := child.Fragment(avail)
		if childArea == nil {
			splitIndex = i
			break
		}
		positionChild(childArea, cursor)
		frag.Children = append(frag.Children, childArea)
		cursor += childHeight(childArea)
		if done {
			splitIndex = i + 1
		} else {
			children[i] = rest
			splitIndex = i
		}
		break
	}

	frag.Box.Size.H = cursor
	if splitIndex >= len(children) {
		return frag, nil, true
	}
	if len(frag.Children) == 0 {
		return nil, s, false
	}
	rest := &Stack{
		node: s.node, children: children, spaces: s.spaces, width: s.width,
		constraints: s.constraints, Absolute: s.Absolute, start: splitIndex,
	}
	return frag, rest, false
}

func positionChild(a area.Area, y dimen.DU) {
	if v, ok := a.(*area.BlockArea); ok {
		v.Box.Origin.Y = y
	}
}

func childHeight(a area.Area) dimen.DU {
	return a.Rect().Size.H
}
