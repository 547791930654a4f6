package linebreak

import "github.com/foliant/xslfo/core/dimen"

// EmergencyBreak splits an overlong Box into pieces that fit within
// maxWidth, inserting a zero-width Discretionary with no hyphen glyph
// between pieces (Optimal charges it HyphenPenalty like any other), when no
// feasible breakpoint (glue, hyphenation) exists at all -- e.g. a single
// word or unbreakable token wider than the measure (spec §4.3 "Emergency
// intra-word breaking"). widthOf measures an arbitrary substring; callers
// typically close over a shaped-glyph-run measurer.
func EmergencyBreak(b Box, maxWidth dimen.DU, widthOf func(s string) dimen.DU) []Item {
	if b.Width <= maxWidth || len(b.Text) == 0 {
		return []Item{b}
	}
	runes := []rune(b.Text)
	var out []Item
	start := 0
	for start < len(runes) {
		end := start + 1
		lastFit := end
		for end <= len(runes) {
			piece := string(runes[start:end])
			if widthOf(piece) > maxWidth {
				break
			}
			lastFit = end
			end++
		}
		if lastFit == start {
			lastFit = start + 1 // always make progress, even if a single rune overflows
		}
		piece := string(runes[start:lastFit])
		out = append(out, Box{
			Width:    widthOf(piece),
			Height:   b.Height,
			Depth:    b.Depth,
			Position: b.Position + start,
			Text:     piece,
		})
		if lastFit < len(runes) {
			out = append(out, Discretionary{HyphenChar: 0, Width: 0})
		}
		start = lastFit
	}
	return out
}
