package font

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// Subset emits a reduced TrueType font containing only the requested
// glyphs (plus glyph 0, .notdef), with loca, hmtx, maxp, head and cmap
// rebuilt against the new glyph numbering (spec §4.2 "Subsetting").
// Requires glyf/loca to have been parsed; CFF-flavored fonts return an
// error.
func (f *File) Subset(used []GlyphID) ([]byte, error) {
	if f.loca == nil || f.glyf == nil {
		return nil, fmt.Errorf("font %s: no glyf/loca, subsetting unavailable", f.Name)
	}
	old2new, order := remapGlyphs(used)

	newGlyf, newLoca := f.rebuildGlyf(order)
	newHmtx, numH := f.rebuildHmtx(order)
	newHead, err := f.rebuildHead(len(newLoca) <= 0x20001)
	if err != nil {
		return nil, err
	}
	newMaxp, err := f.rebuildMaxp(len(order))
	if err != nil {
		return nil, err
	}
	newHhea, err := f.rebuildHhea(numH)
	if err != nil {
		return nil, err
	}
	newCmap := f.rebuildCmap(old2new)

	tables := map[string][]byte{
		"glyf": newGlyf,
		"loca": encodeLoca(newLoca, len(newLoca) <= 0x20001),
		"hmtx": newHmtx,
		"head": newHead,
		"maxp": newMaxp,
		"hhea": newHhea,
		"cmap": newCmap,
	}
	for _, keep := range []string{"name", "post", "OS/2", "cvt ", "fpgm", "prep"} {
		if b := f.dir.table(keep); b != nil {
			tables[keep] = b
		}
	}
	return assembleSFNT(tables), nil
}

// remapGlyphs builds an old-glyph -> new-glyph mapping. Glyph 0 (.notdef)
// is always retained; requested glyphs are appended in ascending order so
// the mapping, and therefore the resulting subset, is deterministic.
func remapGlyphs(used []GlyphID) (map[GlyphID]GlyphID, []GlyphID) {
	set := map[GlyphID]bool{0: true}
	for _, g := range used {
		set[g] = true
	}
	order := make([]GlyphID, 0, len(set))
	for g := range set {
		order = append(order, g)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	old2new := make(map[GlyphID]GlyphID, len(order))
	for i, g := range order {
		old2new[g] = GlyphID(i)
	}
	return old2new, order
}

func (f *File) rebuildGlyf(order []GlyphID) ([]byte, []uint32) {
	var buf bytes.Buffer
	loca := make([]uint32, 0, len(order)+1)
	for _, g := range order {
		loca = append(loca, uint32(buf.Len()))
		if outline := f.GlyphOutline(g); outline != nil {
			buf.Write(outline)
			if pad := len(outline) % 2; pad != 0 {
				buf.WriteByte(0)
			}
		}
	}
	loca = append(loca, uint32(buf.Len()))
	return buf.Bytes(), loca
}

func encodeLoca(loca []uint32, short bool) []byte {
	var buf bytes.Buffer
	for _, v := range loca {
		if short {
			binary.Write(&buf, binary.BigEndian, uint16(v/2))
		} else {
			binary.Write(&buf, binary.BigEndian, v)
		}
	}
	return buf.Bytes()
}

func (f *File) rebuildHmtx(order []GlyphID) ([]byte, int) {
	var buf bytes.Buffer
	for _, g := range order {
		binary.Write(&buf, binary.BigEndian, uint16(f.advances[g]))
		binary.Write(&buf, binary.BigEndian, int16(f.lsb[g]))
	}
	return buf.Bytes(), len(order)
}

func (f *File) rebuildHead(shortLoca bool) ([]byte, error) {
	head := f.dir.table("head")
	if head == nil || len(head) < 54 {
		return nil, fmt.Errorf("missing or short head table")
	}
	out := make([]byte, len(head))
	copy(out, head)
	var flag int16
	if !shortLoca {
		flag = 1
	}
	binary.BigEndian.PutUint16(out[50:52], uint16(flag))
	return out, nil
}

func (f *File) rebuildMaxp(numGlyphs int) ([]byte, error) {
	maxp := f.dir.table("maxp")
	if maxp == nil || len(maxp) < 6 {
		return nil, fmt.Errorf("missing or short maxp table")
	}
	out := make([]byte, len(maxp))
	copy(out, maxp)
	binary.BigEndian.PutUint16(out[4:6], uint16(numGlyphs))
	return out, nil
}

func (f *File) rebuildHhea(numHMetrics int) ([]byte, error) {
	hhea := f.dir.table("hhea")
	if hhea == nil || len(hhea) < 36 {
		return nil, fmt.Errorf("missing or short hhea table")
	}
	out := make([]byte, len(hhea))
	copy(out, hhea)
	binary.BigEndian.PutUint16(out[34:36], uint16(numHMetrics))
	return out, nil
}

// rebuildCmap synthesizes a minimal format-4 cmap covering the BMP
// codepoints present in old2new, mapped through to the new glyph ids.
func (f *File) rebuildCmap(old2new map[GlyphID]GlyphID) []byte {
	type pair struct {
		r rune
		g GlyphID
	}
	var pairs []pair
	for r, old := range f.cmap {
		if r > 0xFFFF {
			continue
		}
		if nb, ok := old2new[old]; ok {
			pairs = append(pairs, pair{r, nb})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].r < pairs[j].r })

	var body bytes.Buffer
	segCount := len(pairs) + 1 // +1 for the terminal 0xFFFF segment
	for _, p := range pairs {
		binary.Write(&body, binary.BigEndian, uint16(p.r))
	}
	binary.Write(&body, binary.BigEndian, uint16(0xFFFF))
	binary.Write(&body, binary.BigEndian, uint16(0)) // reservedPad
	for _, p := range pairs {
		binary.Write(&body, binary.BigEndian, uint16(p.r))
	}
	binary.Write(&body, binary.BigEndian, uint16(0xFFFF))
	for _, p := range pairs {
		delta := int32(p.g) - int32(p.r)
		binary.Write(&body, binary.BigEndian, uint16(int16(delta)))
	}
	binary.Write(&body, binary.BigEndian, uint16(1)) // delta for terminal segment
	for range pairs {
		binary.Write(&body, binary.BigEndian, uint16(0))
	}
	binary.Write(&body, binary.BigEndian, uint16(0))

	var sub bytes.Buffer
	binary.Write(&sub, binary.BigEndian, uint16(4))                    // format
	binary.Write(&sub, binary.BigEndian, uint16(14+body.Len()))        // length
	binary.Write(&sub, binary.BigEndian, uint16(0))                    // language
	binary.Write(&sub, binary.BigEndian, uint16(segCount*2))           // segCountX2
	searchRange, entrySelector, rangeShift := cmapSearchParams(segCount)
	binary.Write(&sub, binary.BigEndian, searchRange)
	binary.Write(&sub, binary.BigEndian, entrySelector)
	binary.Write(&sub, binary.BigEndian, rangeShift)
	sub.Write(body.Bytes())

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint16(0)) // version
	binary.Write(&out, binary.BigEndian, uint16(1)) // numTables
	binary.Write(&out, binary.BigEndian, uint16(3)) // platformID Windows
	binary.Write(&out, binary.BigEndian, uint16(1)) // encodingID BMP
	binary.Write(&out, binary.BigEndian, uint32(12))
	out.Write(sub.Bytes())
	return out.Bytes()
}

func cmapSearchParams(segCount int) (searchRange, entrySelector, rangeShift uint16) {
	entries := uint16(1)
	for (1 << (entries + 1)) <= segCount {
		entries++
	}
	searchRange = (1 << entries) * 2
	entrySelector = entries
	rangeShift = uint16(segCount*2) - searchRange
	return
}

// ToUnicodeCMap synthesizes a PDF ToUnicode CMap stream body mapping the
// subset's new glyph ids back to their original Unicode codepoints (spec
// §4.2 "Subsetting": "a ToUnicode CMap synthesized for the subset").
func (f *File) ToUnicodeCMap(old2new map[GlyphID]GlyphID) string {
	type entry struct {
		g GlyphID
		r rune
	}
	var entries []entry
	for r, old := range f.cmap {
		if nb, ok := old2new[old]; ok {
			entries = append(entries, entry{nb, r})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].g < entries[j].g })

	var b bytes.Buffer
	fmt.Fprintf(&b, "/CIDInit /ProcSet findresource begin\n")
	fmt.Fprintf(&b, "12 dict begin\nbegincmap\n")
	fmt.Fprintf(&b, "1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")
	fmt.Fprintf(&b, "%d beginbfchar\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "<%04X> <%04X>\n", e.g, e.r)
	}
	fmt.Fprintf(&b, "endbfchar\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
	return b.String()
}

// assembleSFNT writes a sfnt directory plus the given tables, 4-byte
// aligned, with per-table checksums. The whole-file checksumAdjustment
// field in head is left untouched, as the teacher's own writer does --
// most PDF consumers never validate it.
func assembleSFNT(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	numTables := len(tags)
	entrySelector := uint16(0)
	for (1 << (entrySelector + 1)) <= numTables {
		entrySelector++
	}
	searchRange := uint16(1<<entrySelector) * 16
	rangeShift := uint16(numTables*16) - searchRange

	var header bytes.Buffer
	binary.Write(&header, binary.BigEndian, uint32(0x00010000))
	binary.Write(&header, binary.BigEndian, uint16(numTables))
	binary.Write(&header, binary.BigEndian, searchRange)
	binary.Write(&header, binary.BigEndian, entrySelector)
	binary.Write(&header, binary.BigEndian, rangeShift)

	headerLen := 12 + numTables*16
	offset := uint32(headerLen)
	var dirBuf, dataBuf bytes.Buffer
	for _, tag := range tags {
		data := tables[tag]
		padded := padTo4(data)
		dirBuf.WriteString(tag)
		binary.Write(&dirBuf, binary.BigEndian, tableChecksum(padded))
		binary.Write(&dirBuf, binary.BigEndian, offset)
		binary.Write(&dirBuf, binary.BigEndian, uint32(len(data)))
		dataBuf.Write(padded)
		offset += uint32(len(padded))
	}

	var out bytes.Buffer
	out.Write(header.Bytes())
	out.Write(dirBuf.Bytes())
	out.Write(dataBuf.Bytes())
	return out.Bytes()
}

func padTo4(b []byte) []byte {
	if r := len(b) % 4; r != 0 {
		return append(append([]byte{}, b...), make([]byte, 4-r)...)
	}
	return b
}

func tableChecksum(padded []byte) uint32 {
	var sum uint32
	for i := 0; i+4 <= len(padded); i += 4 {
		sum += binary.BigEndian.Uint32(padded[i : i+4])
	}
	return sum
}
