package area

import (
	"image/color"

	"github.com/foliant/xslfo/core/dimen"
)

// BorderStyle is the paint style of one border segment (XSL-FO
// border-style, restricted to the styles a PDF serializer can actually
// draw with stroked/filled rectangles).
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDashed
	BorderDotted
	BorderDouble
)

// BorderSegment describes one edge's border: width, style and color. A
// zero-width segment paints nothing.
type BorderSegment struct {
	Width dimen.DU
	Style BorderStyle
	Color color.RGBA
}

// Paint carries every per-area paint attribute the serializer needs:
// background color, per-edge border segments, per-corner border radius and
// an optional clipping rectangle (spec §4.7: "nodes carry only geometric
// positions, paint attributes, ... No layout decision is left to the
// serializer").
type Paint struct {
	Background   *color.RGBA
	Borders      [4]BorderSegment // Top, Right, Bottom, Left
	BorderRadius [4]dimen.DU      // top-left, top-right, bottom-right, bottom-left
	Clip         *Rect
}

// HasBorder reports whether any edge has a visible border.
func (p Paint) HasBorder() bool {
	for _, b := range p.Borders {
		if b.Style != BorderNone && b.Width > 0 {
			return true
		}
	}
	return false
}
