package font

import "fmt"

// GSUB lookup type constants, per the OpenType spec, matching the
// enumeration the teacher names in core/font/opentype/ot/gsub.go.
const (
	gsubLookupSingle          = 1
	gsubLookupMultiple        = 2
	gsubLookupAlternate       = 3
	gsubLookupLigature        = 4
	gsubLookupContext         = 5
	gsubLookupChainingContext = 6
	gsubLookupExtensionSubs   = 7
	gsubLookupReverseChaining = 8
)

type ligatureEntry struct {
	tail  []GlyphID // component glyphs after the first, in order
	glyph GlyphID   // resulting ligature glyph
}

// gsubTable holds the subset of GSUB lookups this package understands:
// single, multiple and alternate substitution, and ligature substitution.
// Lookup types 5-8 (contextual and extension lookups) are recognized
// during the lookup-list walk but their subtables are not decoded (spec
// §4.2 "Table parsing": "GSUB lookup types 1-4 parsed, 5-8 skipped").
type gsubTable struct {
	single     map[GlyphID]GlyphID
	multiple   map[GlyphID][]GlyphID
	alternate  map[GlyphID][]GlyphID
	ligatures  map[GlyphID][]ligatureEntry // keyed by first component glyph
	skipped    []uint16                    // lookup types seen but not decoded
}

// parseGSUB decodes the lookup list of a GSUB table, if present.
func (f *File) parseGSUB() error {
	data := f.dir.table("GSUB")
	if data == nil {
		return fmt.Errorf("no GSUB table")
	}
	lookupListOff, err := readU16(data, 8)
	if err != nil {
		return err
	}
	if int(lookupListOff) >= len(data) {
		return fmt.Errorf("GSUB lookup list offset out of range")
	}
	lookupList := data[lookupListOff:]
	count, err := readU16(lookupList, 0)
	if err != nil {
		return err
	}
	g := &gsubTable{
		single:    make(map[GlyphID]GlyphID),
		multiple:  make(map[GlyphID][]GlyphID),
		alternate: make(map[GlyphID][]GlyphID),
		ligatures: make(map[GlyphID][]ligatureEntry),
	}
	for i := 0; i < int(count); i++ {
		off, err := readU16(lookupList, 2+i*2)
		if err != nil {
			break
		}
		if int(off) >= len(lookupList) {
			continue
		}
		parseGSUBLookup(lookupList[off:], g)
	}
	f.gsub = g
	return nil
}

func parseGSUBLookup(lookup []byte, g *gsubTable) {
	lookupType, err := readU16(lookup, 0)
	if err != nil {
		return
	}
	subCount, err := readU16(lookup, 4)
	if err != nil {
		return
	}
	switch lookupType {
	case gsubLookupSingle, gsubLookupMultiple, gsubLookupAlternate, gsubLookupLigature:
		for i := 0; i < int(subCount); i++ {
			off, err := readU16(lookup, 6+i*2)
			if err != nil {
				break
			}
			if int(off) >= len(lookup) {
				continue
			}
			sub := lookup[off:]
			switch lookupType {
			case gsubLookupSingle:
				decodeSingleSubst(sub, g)
			case gsubLookupMultiple:
				decodeMultipleSubst(sub, g)
			case gsubLookupAlternate:
				decodeMultipleSubst(sub, g) // identical wire shape, different semantics
				migrateToAlternate(sub, g)
			case gsubLookupLigature:
				decodeLigatureSubst(sub, g)
			}
		}
	default:
		g.skipped = append(g.skipped, lookupType)
	}
}

// migrateToAlternate repairs the alternate-lookup bookkeeping: alternate
// subtables share the multiple-substitution wire format (coverage +
// per-glyph sequence tables) but mean "choose one of these", not "expand
// to all of these". decodeMultipleSubst already populated g.multiple for
// this coverage; move those entries into g.alternate instead.
func migrateToAlternate(sub []byte, g *gsubTable) {
	cov, err := coverageGlyphs(sub, 2)
	if err != nil {
		return
	}
	seqOff := 6 // offsets follow format, coverage offset and set count
	for i, glyph := range cov {
		off, err := readU16(sub, seqOff+i*2)
		if err != nil {
			continue
		}
		seq, ok := decodeGlyphSequence(sub, int(off))
		if !ok {
			continue
		}
		delete(g.multiple, glyph)
		g.alternate[glyph] = seq
	}
}

func decodeSingleSubst(sub []byte, g *gsubTable) {
	format, err := readU16(sub, 0)
	if err != nil {
		return
	}
	cov, err := coverageGlyphs(sub, 2)
	if err != nil {
		return
	}
	switch format {
	case 1:
		delta, err := readI16(sub, 4)
		if err != nil {
			return
		}
		for _, glyph := range cov {
			g.single[glyph] = GlyphID(int32(glyph) + int32(delta))
		}
	case 2:
		glyphCount, err := readU16(sub, 4)
		if err != nil {
			return
		}
		for i, glyph := range cov {
			if i >= int(glyphCount) {
				break
			}
			sub2, err := readU16(sub, 6+i*2)
			if err != nil {
				break
			}
			g.single[glyph] = GlyphID(sub2)
		}
	}
}

func decodeMultipleSubst(sub []byte, g *gsubTable) {
	cov, err := coverageGlyphs(sub, 2)
	if err != nil {
		return
	}
	seqOff := 6 // offsets follow format, coverage offset and sequence count
	for i, glyph := range cov {
		off, err := readU16(sub, seqOff+i*2)
		if err != nil {
			continue
		}
		seq, ok := decodeGlyphSequence(sub, int(off))
		if !ok {
			continue
		}
		g.multiple[glyph] = seq
	}
}

func decodeGlyphSequence(sub []byte, at int) ([]GlyphID, bool) {
	count, err := readU16(sub, at)
	if err != nil {
		return nil, false
	}
	out := make([]GlyphID, 0, count)
	for i := 0; i < int(count); i++ {
		v, err := readU16(sub, at+2+i*2)
		if err != nil {
			return nil, false
		}
		out = append(out, GlyphID(v))
	}
	return out, true
}

func decodeLigatureSubst(sub []byte, g *gsubTable) {
	cov, err := coverageGlyphs(sub, 2)
	if err != nil {
		return
	}
	setCount, err := readU16(sub, 4)
	if err != nil {
		return
	}
	for i, first := range cov {
		if i >= int(setCount) {
			break
		}
		setOff, err := readU16(sub, 6+i*2)
		if err != nil {
			continue
		}
		ligSet := sub[setOff:]
		ligCount, err := readU16(ligSet, 0)
		if err != nil {
			continue
		}
		for j := 0; j < int(ligCount); j++ {
			ligOff, err := readU16(ligSet, 2+j*2)
			if err != nil {
				break
			}
			lig := ligSet[ligOff:]
			glyph, err := readU16(lig, 0)
			if err != nil {
				continue
			}
			compCount, err := readU16(lig, 2)
			if err != nil {
				continue
			}
			tail := make([]GlyphID, 0, compCount)
			ok := true
			for k := 0; k < int(compCount)-1; k++ {
				v, err := readU16(lig, 4+k*2)
				if err != nil {
					ok = false
					break
				}
				tail = append(tail, GlyphID(v))
			}
			if !ok {
				continue
			}
			g.ligatures[first] = append(g.ligatures[first], ligatureEntry{tail: tail, glyph: GlyphID(glyph)})
		}
	}
}

// coverageGlyphs decodes a Coverage table (format 1 or 2) at the given
// offset (relative to base), returning glyphs in coverage-index order.
func coverageGlyphs(base []byte, offsetField int) ([]GlyphID, error) {
	off, err := readU16(base, offsetField)
	if err != nil {
		return nil, err
	}
	cov := base[off:]
	format, err := readU16(cov, 0)
	if err != nil {
		return nil, err
	}
	switch format {
	case 1:
		count, err := readU16(cov, 2)
		if err != nil {
			return nil, err
		}
		out := make([]GlyphID, count)
		for i := 0; i < int(count); i++ {
			v, err := readU16(cov, 4+i*2)
			if err != nil {
				return nil, err
			}
			out[i] = GlyphID(v)
		}
		return out, nil
	case 2:
		rangeCount, err := readU16(cov, 2)
		if err != nil {
			return nil, err
		}
		var out []GlyphID
		for i := 0; i < int(rangeCount); i++ {
			rec := 4 + i*6
			start, err := readU16(cov, rec)
			if err != nil {
				return nil, err
			}
			end, err := readU16(cov, rec+2)
			if err != nil {
				return nil, err
			}
			for g := start; g <= end; g++ {
				out = append(out, GlyphID(g))
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported coverage format %d", format)
}
