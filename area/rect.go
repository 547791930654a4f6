package area

import "github.com/foliant/xslfo/core/dimen"

// Size is a width/height pair, kept distinct from dimen.Point (an x/y
// position) even though both wrap two dimen.DU fields -- mixing up a size
// with a position is an easy, silent bug in layout code.
type Size struct {
	W, H dimen.DU
}

// Rect is a positioned rectangle: an origin in page coordinates (x right,
// y down, from the page's top-left corner, per spec §4.7) plus a size.
type Rect struct {
	Origin dimen.Point
	Size   Size
}

// Inset returns r with its edges moved in by the given four-edge
// inset (top, right, bottom, left order, matching the teacher's
// frame.Box edge-index convention), used to compute a block area's content
// rectangle from its border rectangle.
func (r Rect) Inset(edges [4]dimen.DU) Rect {
	return Rect{
		Origin: dimen.Point{X: r.Origin.X + edges[Left], Y: r.Origin.Y + edges[Top]},
		Size: Size{
			W: r.Size.W - edges[Left] - edges[Right],
			H: r.Size.H - edges[Top] - edges[Bottom],
		},
	}
}

// Contains reports whether other lies entirely within r -- the geometric-
// containment invariant checked for every non-exempt area (spec §8,
// invariant 1).
func (r Rect) Contains(other Rect) bool {
	if other.Origin.X < r.Origin.X || other.Origin.Y < r.Origin.Y {
		return false
	}
	if other.Origin.X+other.Size.W > r.Origin.X+r.Size.W {
		return false
	}
	if other.Origin.Y+other.Size.H > r.Origin.Y+r.Size.H {
		return false
	}
	return true
}

// Edge indices into four-edge arrays (BlockArea.Padding,
// BlockArea.BorderWidth, Paint.Borders), clockwise from the top -- identical ordering
// to the teacher's engine/frame.Box constants.
const (
	Top int = iota
	Right
	Bottom
	Left
)
