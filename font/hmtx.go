package font

import "fmt"

// parseHmtx reads the required hhea+hmtx tables into per-glyph advance
// widths and left side bearings (spec §4.2: "advance(glyph_id)" must be
// defined for every glyph). Missing or truncated hmtx is fatal: callers
// treat the returned error as MalformedError{Table:"hmtx"}.
func (f *File) parseHmtx() error {
	hhea := f.dir.table("hhea")
	if hhea == nil {
		return fmt.Errorf("missing hhea table")
	}
	numH, err := readU16(hhea, 34)
	if err != nil {
		return err
	}
	hmtx := f.dir.table("hmtx")
	if hmtx == nil {
		return fmt.Errorf("missing hmtx table")
	}
	n := f.GlyphCount
	if n == 0 {
		n = int(numH)
	}
	f.advances = make(map[GlyphID]int32, n)
	f.lsb = make(map[GlyphID]int32, n)

	var lastAdvance int32
	for g := 0; g < n; g++ {
		if g < int(numH) {
			rec := g * 4
			aw, err := readU16(hmtx, rec)
			if err != nil {
				return fmt.Errorf("hmtx truncated at glyph %d: %w", g, err)
			}
			lsb, err := readI16(hmtx, rec+2)
			if err != nil {
				return fmt.Errorf("hmtx truncated at glyph %d: %w", g, err)
			}
			lastAdvance = int32(aw)
			f.advances[GlyphID(g)] = lastAdvance
			f.lsb[GlyphID(g)] = int32(lsb)
			continue
		}
		// Glyphs beyond numberOfHMetrics repeat the last advance width;
		// their left side bearings follow in a trailing array of int16s.
		tail := int(numH)*4 + (g-int(numH))*2
		lsb, err := readI16(hmtx, tail)
		if err != nil {
			// No trailing lsb entry: fall back to 0, advance still valid.
			f.advances[GlyphID(g)] = lastAdvance
			f.lsb[GlyphID(g)] = 0
			continue
		}
		f.advances[GlyphID(g)] = lastAdvance
		f.lsb[GlyphID(g)] = int32(lsb)
	}
	return nil
}
