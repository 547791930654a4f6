package font

import "fmt"

// parseCmap selects a Unicode platform/encoding subtable and decodes it,
// supporting formats 0, 4, 6 and 12 (spec §4.2 "Table parsing": "cmap
// selects a Unicode platform/encoding subtable").
func (f *File) parseCmap() error {
	data := f.dir.table("cmap")
	if data == nil {
		return fmt.Errorf("no cmap table")
	}
	numTables, err := readU16(data, 2)
	if err != nil {
		return err
	}
	var best []byte
	bestScore := -1
	for i := 0; i < int(numTables); i++ {
		rec := 4 + i*8
		platformID, err := readU16(data, rec)
		if err != nil {
			break
		}
		encodingID, _ := readU16(data, rec+2)
		offset, err := readU32(data, rec+4)
		if err != nil {
			break
		}
		score := scoreUnicodeSubtable(platformID, encodingID)
		if score <= bestScore || int(offset) >= len(data) {
			continue
		}
		bestScore = score
		best = data[offset:]
	}
	if best == nil {
		return fmt.Errorf("no usable unicode cmap subtable")
	}
	m, err := decodeCmapSubtable(best)
	if err != nil {
		return err
	}
	f.cmap = m
	return nil
}

// scoreUnicodeSubtable ranks platform/encoding combinations by preference;
// higher is better. Non-Unicode subtables score -1 (never selected).
func scoreUnicodeSubtable(platformID, encodingID uint16) int {
	switch {
	case platformID == 3 && encodingID == 10: // Windows, UCS-4
		return 5
	case platformID == 3 && encodingID == 1: // Windows, BMP
		return 4
	case platformID == 0: // Unicode platform, any encoding
		return 3
	case platformID == 3 && encodingID == 0: // Windows, Symbol
		return 1
	}
	return -1
}

func decodeCmapSubtable(b []byte) (map[rune]GlyphID, error) {
	format, err := readU16(b, 0)
	if err != nil {
		return nil, err
	}
	switch format {
	case 0:
		return decodeCmapFormat0(b)
	case 4:
		return decodeCmapFormat4(b)
	case 6:
		return decodeCmapFormat6(b)
	case 12:
		return decodeCmapFormat12(b)
	default:
		return nil, fmt.Errorf("unsupported cmap format %d", format)
	}
}

func decodeCmapFormat0(b []byte) (map[rune]GlyphID, error) {
	if len(b) < 6+256 {
		return nil, fmt.Errorf("format 0 cmap truncated")
	}
	m := make(map[rune]GlyphID, 256)
	for c := 0; c < 256; c++ {
		g := b[6+c]
		if g != 0 {
			m[rune(c)] = GlyphID(g)
		}
	}
	return m, nil
}

func decodeCmapFormat6(b []byte) (map[rune]GlyphID, error) {
	first, err := readU16(b, 6)
	if err != nil {
		return nil, err
	}
	count, err := readU16(b, 8)
	if err != nil {
		return nil, err
	}
	m := make(map[rune]GlyphID, count)
	for i := 0; i < int(count); i++ {
		g, err := readU16(b, 10+i*2)
		if err != nil {
			break
		}
		if g != 0 {
			m[rune(int(first)+i)] = GlyphID(g)
		}
	}
	return m, nil
}

func decodeCmapFormat4(b []byte) (map[rune]GlyphID, error) {
	segX2, err := readU16(b, 6)
	if err != nil {
		return nil, err
	}
	segCount := int(segX2 / 2)
	endBase := 14
	startBase := endBase + int(segX2) + 2 // +2 skips reservedPad
	deltaBase := startBase + int(segX2)
	rangeBase := deltaBase + int(segX2)
	m := make(map[rune]GlyphID)
	for s := 0; s < segCount; s++ {
		end, err := readU16(b, endBase+s*2)
		if err != nil {
			return m, nil
		}
		start, err := readU16(b, startBase+s*2)
		if err != nil {
			return m, nil
		}
		delta, err := readI16(b, deltaBase+s*2)
		if err != nil {
			return m, nil
		}
		rangeOffset, err := readU16(b, rangeBase+s*2)
		if err != nil {
			return m, nil
		}
		if start == 0xFFFF && end == 0xFFFF {
			continue
		}
		for c := int(start); c <= int(end) && c != 0x10000; c++ {
			var g uint16
			if rangeOffset == 0 {
				g = uint16(int32(c) + int32(delta))
			} else {
				idx := rangeBase + s*2 + int(rangeOffset) + (c-int(start))*2
				gv, err := readU16(b, idx)
				if err != nil || gv == 0 {
					continue
				}
				g = uint16(int32(gv) + int32(delta))
			}
			if g != 0 {
				m[rune(c)] = GlyphID(g)
			}
		}
	}
	return m, nil
}

func decodeCmapFormat12(b []byte) (map[rune]GlyphID, error) {
	numGroups, err := readU32(b, 12)
	if err != nil {
		return nil, err
	}
	m := make(map[rune]GlyphID)
	for i := 0; i < int(numGroups); i++ {
		base := 16 + i*12
		startChar, err := readU32(b, base)
		if err != nil {
			break
		}
		endChar, err := readU32(b, base+4)
		if err != nil {
			break
		}
		startGlyph, err := readU32(b, base+8)
		if err != nil {
			break
		}
		for c := startChar; c <= endChar; c++ {
			m[rune(c)] = GlyphID(startGlyph + (c - startChar))
		}
	}
	return m, nil
}
