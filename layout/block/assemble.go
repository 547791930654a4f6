package block

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/linebreak"
)

// assembleLine packs items [from,to) of seq into one area.LineArea at the
// given width, applying TeX-style adjustment-ratio justification: glue
// stretches or shrinks by a single ratio derived from the gap between the
// line's natural width and its target width (spec §4.3's WSS elastic
// model, reused here at render time rather than only during breaking).
func assembleLine(seq *linebreak.Sequence, from, to int, target, lineHeight dimen.DU, fonts *fontregistry.Registry, fontSize dimen.DU) *area.LineArea {
	wss := seq.Measure(from, to)
	ratio := adjustmentRatio(wss, target)

	line := &area.LineArea{
		Base:     area.Base{Box: area.Rect{Size: area.Size{W: target, H: lineHeight}}},
		Baseline: lineHeight * 4 / 5,
	}
	var cursor dimen.DU
	for i := from; i < to; i++ {
		it := seq.At(i)
		switch v := it.(type) {
		case inline.TextBox:
			placements := make([]area.GlyphPlacement, len(v.Glyphs))
			for j, g := range v.Glyphs {
				placements[j] = area.GlyphPlacement{Glyph: uint32(g.Glyph), XAdvance: dimen.DU(g.XAdvance), Cluster: g.Cluster}
			}
			ga := &area.GlyphRunArea{
				Base:   area.Base{Box: area.Rect{Origin: dimen.Point{X: cursor}, Size: area.Size{W: v.Width, H: lineHeight}}},
				FontID: v.FontID,
				Glyphs: placements,
				Text:   v.Text,
			}
			line.Children = append(line.Children, ga)
			cursor += v.Width
		case *inline.PagePlaceholder:
			ga := &area.GlyphRunArea{
				Base:   area.Base{Box: area.Rect{Origin: dimen.Point{X: cursor}, Size: area.Size{W: v.Width, H: lineHeight}}},
				FontID: v.FontID,
				Text:   v.PageNumber,
				RefID:  v.ID,
			}
			line.Children = append(line.Children, ga)
			cursor += v.Width
		case inline.ImageBox:
			ia := &area.ImageArea{
				Base:   area.Base{Box: area.Rect{Origin: dimen.Point{X: cursor}, Size: area.Size{W: v.Width, H: v.Height}}},
				Format: v.Format,
				Data:   v.Data,
			}
			line.Children = append(line.Children, ia)
			cursor += v.Width
		case inline.LeaderGlue:
			w := elasticWidth(v.Glue, ratio)
			if a := inline.Expand(v, w, line.Baseline, fonts, fontSize); a != nil {
				positioned := repositionAt(a, cursor)
				line.Children = append(line.Children, positioned)
			}
			cursor += w
		case linebreak.Glue:
			cursor += elasticWidth(v, ratio)
		case linebreak.Discretionary:
			// Zero-width unless this is the line's final break, which the
			// caller (Fragment) already excludes from [from,to).
		}
	}
	return line
}

func elasticWidth(g linebreak.Glue, ratio float64) dimen.DU {
	if ratio >= 0 {
		return g.Width + dimen.DU(float64(g.Stretch)*clamp01(ratio))
	}
	return g.Width - dimen.DU(float64(g.Shrink)*clamp01(-ratio))
}

func clamp01(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

func adjustmentRatio(wss linebreak.WSS, target dimen.DU) float64 {
	switch {
	case target > wss.W && wss.Max > wss.W:
		return float64(target-wss.W) / float64(wss.Max-wss.W)
	case target < wss.W && wss.W > wss.Min:
		return -float64(wss.W-target) / float64(wss.W-wss.Min)
	default:
		return 0
	}
}

// repositionAt shifts an already-built area so its origin's X matches x,
// used for leader expansions which are built with a zero origin.
func repositionAt(a area.Area, x dimen.DU) area.Area {
	switch v := a.(type) {
	case *area.RuleArea:
		v.Box.Origin.X = x
		return v
	case *area.GlyphRunArea:
		v.Box.Origin.X = x
		return v
	}
	return a
}
