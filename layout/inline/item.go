package inline

import (
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font"
	"github.com/foliant/xslfo/linebreak"
)

// TextBox is an unbreakable shaped run of glyphs: one word (or a run of
// CJK characters with no interior break opportunities). Embedding
// linebreak.Box gives it Item's Kind/W/MinW/MaxW/IsDiscardable for free,
// mirroring the teacher's pattern of small value-type items
// (engine/khipu/khipu.go's Knot variants) carrying payload alongside their
// measured geometry.
type TextBox struct {
	linebreak.Box
	Glyphs []font.GlyphRun
	FontID string
}

// LeaderPattern is the `leader-pattern` property value controlling how a
// leader's expanded space is painted.
type LeaderPattern uint8

const (
	LeaderSpace LeaderPattern = iota
	LeaderRule
	LeaderDots
)

// LeaderGlue is an `fo:leader`: stretchable like ordinary glue so the line
// breaker can treat it as a breakpoint-adjacent elastic item, but carries
// enough information for the inline area builder to paint a rule or a
// repeated dot-leader once the line's final width is fixed (spec §4.4:
// "rule and dots leaders become patterned fills that grow to fill the
// leader-length").
type LeaderGlue struct {
	linebreak.Glue
	Pattern LeaderPattern
	FontID  string // not read when painting: dots are sized with the "serif" font
}

// ImageBox is an unbreakable `external-graphic`/`instream-foreign-object`
// placed inline. It is sized from the node's `width`/`height` properties
// (0 when absent); the image's own intrinsic dimensions are not read, and
// Builder leaves Data empty.
type ImageBox struct {
	linebreak.Box
	Format string
	Data   []byte
}

// PagePlaceholder stands in for `page-number` or `page-number-citation`
// during the first layout pass; pagination/ResolveCitations patches
// Resolved once every page's number is known (spec §4.6 "Page-number
// citation is a two-pass affair").
type PagePlaceholder struct {
	linebreak.Box
	ID         string // unique per placeholder, copied onto its area.GlyphRunArea.RefID
	RefID      string // empty for `page-number` (current page)
	FontID     string
	Resolved   bool
	PageNumber string
}

// Citation is recorded per PagePlaceholder so the second pass can find and
// patch it without re-walking the whole area tree by hand.
type Citation struct {
	Placeholder *PagePlaceholder
	Node        *fo.Node
}

// glyphRunWidth sums the x-advances of a shaped run (font design units) and
// converts the sum to page units with unitsPerEm and fontSize (font units
// are per-em, not self-describing in dimen.DU without the font's
// unitsPerEm).
func glyphRunWidth(run []font.GlyphRun, unitsPerEm int32, fontSize dimen.DU) dimen.DU {
	var total int32
	for _, g := range run {
		total += g.XAdvance
	}
	if unitsPerEm == 0 {
		return 0
	}
	return dimen.DU(float64(total) / float64(unitsPerEm) * float64(fontSize))
}
