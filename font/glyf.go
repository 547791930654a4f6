package font

import "fmt"

// parseGlyf reads loca and glyf so glyph outlines can later be extracted
// verbatim for subsetting (spec §4.2 "Subsetting"). CFF-flavored (OpenType
// with a "CFF " table instead of glyf) fonts have no loca/glyf; subsetting
// then degrades to "unavailable" rather than failing the whole parse.
func (f *File) parseGlyf() error {
	glyf := f.dir.table("glyf")
	if glyf == nil {
		return fmt.Errorf("no glyf table (CFF-flavored font?)")
	}
	head := f.dir.table("head")
	if head == nil {
		return fmt.Errorf("no head table")
	}
	longLoca, err := readI16(head, 50) // indexToLocFormat
	if err != nil {
		return err
	}
	locaRaw := f.dir.table("loca")
	if locaRaw == nil {
		return fmt.Errorf("no loca table")
	}
	n := f.GlyphCount + 1
	loca := make([]uint32, 0, n)
	if longLoca == 0 {
		for i := 0; i < n; i++ {
			v, err := readU16(locaRaw, i*2)
			if err != nil {
				return fmt.Errorf("loca (short) truncated at glyph %d: %w", i, err)
			}
			loca = append(loca, uint32(v)*2)
		}
	} else {
		for i := 0; i < n; i++ {
			v, err := readU32(locaRaw, i*4)
			if err != nil {
				return fmt.Errorf("loca (long) truncated at glyph %d: %w", i, err)
			}
			loca = append(loca, v)
		}
	}
	f.loca = loca
	f.glyf = glyf
	return nil
}

// GlyphOutline returns the raw glyf-table bytes for a single glyph, or nil
// if outlines were not parsed (see parseGlyf) or the glyph is empty
// (e.g. space).
func (f *File) GlyphOutline(g GlyphID) []byte {
	if f.loca == nil || int(g)+1 >= len(f.loca) {
		return nil
	}
	start, end := f.loca[g], f.loca[g+1]
	if start >= end || int(end) > len(f.glyf) {
		return nil
	}
	return f.glyf[start:end]
}
