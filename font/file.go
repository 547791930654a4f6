package font

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Header carries the coarse font metrics spec §3 lists for a "Font file"
// snapshot.
type Header struct {
	UnitsPerEm  int32
	BBoxXMin    int32
	BBoxYMin    int32
	BBoxXMax    int32
	BBoxYMax    int32
	ItalicAngle float64
	CapHeight   int32
	XHeight     int32
	WeightClass int32
}

// File is a decoded snapshot of a TrueType/OpenType font (spec §3 "Font
// file"): header, glyph count, cmap, per-glyph advances, optional kerning
// and GSUB data, and the raw glyph outlines retained verbatim for
// subsetting.
type File struct {
	Name       string
	Raw        []byte // retained verbatim for subsetting
	sfnt       *sfnt.Font
	dir        *sfntDirectory
	Header     Header
	GlyphCount int

	cmap     map[rune]GlyphID // codepoint -> glyph, parsed directly (see cmap.go)
	advances map[GlyphID]int32
	lsb      map[GlyphID]int32
	kerning  map[kernPairKey]int16
	gsub     *gsubTable
	loca     []uint32 // glyph offsets into glyf, len = GlyphCount+1
	glyf     []byte
}

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Parse decodes raw font bytes into a File snapshot (spec §4.2 "Contract").
// Malformed optional tables (kern, GSUB) never fail the load: the
// capability degrades and a warning is logged (spec §4.2 "Table parsing").
func Parse(name string, data []byte) (*File, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, &MalformedError{Table: "sfnt", Err: err}
	}
	dir, err := parseSFNTDirectory(data)
	if err != nil {
		return nil, &MalformedError{Table: "directory", Err: err}
	}
	f := &File{Name: name, Raw: data, sfnt: sf, dir: dir}
	var buf sfnt.Buffer
	f.GlyphCount = sf.NumGlyphs()
	upm, err := sf.UnitsPerEm()
	if err != nil {
		return nil, &MalformedError{Table: "head", Err: err}
	}
	f.Header.UnitsPerEm = int32(upm)
	// Querying metrics at ppem == UnitsPerEm yields values in font units,
	// 26.6 fixed point, so a Round() recovers the integer unit count.
	if m, err := sf.Metrics(&buf, fixed.I(int(upm)), 0); err == nil {
		f.Header.CapHeight = int32(m.CapHeight.Round())
		f.Header.XHeight = int32(m.XHeight.Round())
	}

	if err := f.parseCmap(); err != nil {
		T().Infof("font %s: cmap degraded: %v", name, err)
	}
	if err := f.parseHmtx(); err != nil {
		return nil, &MalformedError{Table: "hmtx", Err: err}
	}
	if err := f.parseKern(); err != nil {
		T().Infof("font %s: kern degraded: %v", name, err)
	}
	if err := f.parseGSUB(); err != nil {
		T().Infof("font %s: GSUB degraded: %v", name, err)
	}
	if err := f.parseGlyf(); err != nil {
		T().Infof("font %s: glyf/loca unavailable, subsetting disabled: %v", name, err)
	}
	return f, nil
}

// MalformedError reports a required font table that is missing or corrupt
// (spec §7 FontMalformed): fatal for required tables.
type MalformedError struct {
	Table string
	Err   error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("font table %q malformed: %v", e.Table, e.Err)
}
func (e *MalformedError) Unwrap() error { return e.Err }

// GlyphIDFor looks up the glyph id mapped to a Unicode codepoint (spec
// §4.2 "glyph_id(codepoint) -> Option<u16>").
func (f *File) GlyphIDFor(r rune) (GlyphID, bool) {
	g, ok := f.cmap[r]
	return g, ok
}

// Advance returns a glyph's advance width in font units (spec §4.2
// "advance(glyph_id) -> i32").
//
// Invariant: every mapped glyph has an advance-width entry; a missing
// advance is a parse error surfaced at load time, not here.
func (f *File) Advance(g GlyphID) int32 {
	return f.advances[g]
}

// EmAdvance converts a glyph's advance width from font units to ems.
func (f *File) EmAdvance(g GlyphID) float64 {
	if f.Header.UnitsPerEm == 0 {
		return 0
	}
	return float64(f.Advance(g)) / float64(f.Header.UnitsPerEm)
}
