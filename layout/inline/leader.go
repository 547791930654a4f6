package inline

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/font/fontregistry"
)

// Expand realizes a leader's final painted form once the line breaker has
// fixed its width (spec §4.4: "Leaders expand at justification time").
// `space` leaders paint nothing (the glue itself already reserved the
// room); `rule` leaders become a thin RuleArea; `dots` leaders repeat a
// dot glyph to fill the available width.
func Expand(lg LeaderGlue, finalWidth dimen.DU, baseline dimen.DU, fonts *fontregistry.Registry, fontSize dimen.DU) area.Area {
	switch lg.Pattern {
	case LeaderRule:
		return &area.RuleArea{
			Base:      area.Base{Box: area.Rect{Size: area.Size{W: finalWidth, H: fontSize / 12}}},
			Thickness: fontSize / 12,
		}
	case LeaderDots:
		return expandDots(finalWidth, baseline, fonts, fontSize)
	default:
		return nil
	}
}

func expandDots(finalWidth, baseline dimen.DU, fonts *fontregistry.Registry, fontSize dimen.DU) area.Area {
	inst := fonts.Instance("serif", fontSize.Points())
	dotWidth := fontSize / 4
	if inst.File != nil {
		runs := inst.File.Shape([]rune{'.'})
		if w := glyphRunWidth(runs, inst.File.Header.UnitsPerEm, fontSize); w > 0 {
			dotWidth = w
		}
	}
	count := int(finalWidth / dotWidth)
	if count < 1 {
		count = 1
	}
	placements := make([]area.GlyphPlacement, count)
	for i := range placements {
		placements[i] = area.GlyphPlacement{XAdvance: dotWidth}
	}
	return &area.GlyphRunArea{
		Base:   area.Base{Box: area.Rect{Size: area.Size{W: finalWidth, H: fontSize}}},
		FontID: inst.Family,
		Glyphs: placements,
		Text:   "",
	}
}
