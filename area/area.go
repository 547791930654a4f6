package area

import (
	"image/color"

	"github.com/foliant/xslfo/core/dimen"
)

// Area is any node in the area tree. Every concrete area type embeds Base,
// which carries the geometry and paint attributes common to all of them;
// Area itself exists so containers can hold heterogeneous children
// (spec §4.7: area nodes carry "only geometric positions, paint
// attributes, glyph-run references, image references, and clipping
// rectangles").
type Area interface {
	Rect() Rect
	Paint() Paint
}

// Base is embedded by every concrete area type.
type Base struct {
	Box        Rect
	PaintAttrs Paint
}

func (b Base) Rect() Rect   { return b.Box }
func (b Base) Paint() Paint { return b.PaintAttrs }

// Exemption records why a child area is permitted to violate the
// geometric-containment invariant against its parent (spec §8, invariant
// 1's three stated exceptions).
type Exemption uint8

const (
	NotExempt Exemption = iota
	ExemptAbsolutelyPositioned
	ExemptFootnoteBody
	ExemptFloat
)

// PageArea is the root of one page's area tree: a fixed-size page canvas
// holding one RegionArea per region (body plus any static regions present
// on the page's simple-page-master).
type PageArea struct {
	Base
	PageNumber    int
	PageNumberStr string // formatted per the page-sequence's format property
	Regions       []*RegionArea
}

// RegionArea is one page region (region-body/-before/-after/-start/-end).
// Its Reference names which kind it realizes, mirroring fo.Kind.
type RegionArea struct {
	Base
	Reference string // "body", "before", "after", "start", "end"
	Columns   int    // column-count (region-body only); 1 elsewhere
	Children  []Area // BlockArea (flow content) or static content blocks
}

// BlockArea realizes a block, block-container, table, list-block or
// table-cell once positioned: a rectangle containing a vertical stack of
// further block areas or line areas. Margins are already folded into the
// area's position by the time it reaches the tree, so Base.Box is the
// border box and Padding gives the offset from there to the content box,
// matching the teacher's Box/Padding/BorderWidth split in
// engine/frame/box.go (with Margins dropped: a finished area's position
// already reflects any collapsed margin).
type BlockArea struct {
	Base
	Padding     [4]dimen.DU
	BorderWidth [4]dimen.DU
	Exempt      Exemption
	Children    []Area
}

// ContentRect returns the rectangle inside this block's border and
// padding, where its children are positioned.
func (b *BlockArea) ContentRect() Rect {
	inset := [4]dimen.DU{
		Top:    b.Padding[Top] + b.BorderWidth[Top],
		Right:  b.Padding[Right] + b.BorderWidth[Right],
		Bottom: b.Padding[Bottom] + b.BorderWidth[Bottom],
		Left:   b.Padding[Left] + b.BorderWidth[Left],
	}
	return b.Box.Inset(inset)
}

// LineArea is one line box within a block: the output of the line breaker,
// holding a left-to-right (or right-to-left, per writing-mode) sequence of
// inline-level areas sharing a common baseline.
type LineArea struct {
	Base
	Baseline dimen.DU // distance from Box.Origin.Y to the baseline
	Children []Area   // InlineArea, GlyphRunArea, ImageArea, RuleArea
}

// InlineArea realizes `inline`, `inline-container` and `basic-link`: a
// positioned run of further inline-level children sharing the line's
// baseline. `basic-link` areas additionally carry a destination, used by
// the serializer to emit a PDF link annotation.
type InlineArea struct {
	Base
	LinkDestination string // non-empty only for basic-link areas
	Children        []Area
}

// GlyphRunArea places one shaped glyph run (spec §4.2's font.GlyphRun) at a
// fixed position within a line. FontID identifies the embedded/subset font
// resource the serializer should reference.
type GlyphRunArea struct {
	Base
	FontID string
	Glyphs []GlyphPlacement
	Text   string // the run's source text, for text-extraction round-trip checks
	RefID  string // non-empty only for page-number/page-number-citation runs: the originating placeholder's ID, for ResolveCitations to find
}

// GlyphPlacement is one glyph of a GlyphRunArea's run, positioned relative
// to the run's origin (spec §6: "Kerning is realized via the TJ operator
// with per-glyph adjustments").
type GlyphPlacement struct {
	Glyph    uint32
	XAdvance dimen.DU
	XOffset  dimen.DU
	Cluster  int
}

// ImageArea places one external-graphic or instream-foreign-object. Data is
// the original encoded image bytes (JPEG/PNG/BMP/GIF/TIFF/SVG); the layout
// engine never decodes pixels, only reads intrinsic size (spec §6).
type ImageArea struct {
	Base
	Format string // "jpeg", "png", "bmp", "gif", "tiff", "svg"
	Data   []byte
}

// RuleArea paints a straight line segment: realizes an `fo:leader` with
// leader-pattern="rule", or a table/cell rule the table layout stage emits
// directly rather than via a bordered BlockArea.
type RuleArea struct {
	Base
	Thickness dimen.DU
	Color     color.RGBA
}
