package font

// GlyphRun is a shaped, positioned run of glyphs ready for area-tree
// placement (spec §4.2 "Shaping": "a sequence of (glyph, x-advance,
// x-offset, cluster) tuples").
type GlyphRun struct {
	Glyph    GlyphID
	XAdvance int32 // font units, includes any applied kerning
	XOffset  int32 // font units, always 0 until mark positioning exists
	Cluster  int   // rune index into the originating text run
}

// Shape maps text to glyphs, applying GSUB ligature and single
// substitution and kern-table pair adjustments (spec §4.2 "Shaping").
// Unmapped runes produce a GlyphID of 0 (the .notdef glyph); callers may
// treat that as a FontMalformed-class condition or substitute a fallback
// font, per spec §7.
func (f *File) Shape(text []rune) []GlyphRun {
	glyphs := make([]GlyphRun, 0, len(text))
	clusters := make([]int, 0, len(text))
	for i, r := range text {
		g, _ := f.GlyphIDFor(r)
		glyphs = append(glyphs, GlyphRun{Glyph: g, Cluster: i})
		clusters = append(clusters, i)
	}
	glyphs = f.applyLigatures(glyphs)
	glyphs = f.applySingleSubst(glyphs)
	for i := range glyphs {
		glyphs[i].XAdvance = f.Advance(glyphs[i].Glyph)
	}
	f.applyKerning(glyphs)
	return glyphs
}

func (f *File) applySingleSubst(in []GlyphRun) []GlyphRun {
	if f.gsub == nil || len(f.gsub.single) == 0 {
		return in
	}
	for i := range in {
		if sub, ok := f.gsub.single[in[i].Glyph]; ok {
			in[i].Glyph = sub
		}
	}
	return in
}

// applyLigatures merges, left to right, the first ligature entry (in GSUB
// ligature-set order) whose component sequence matches at each glyph into
// its ligature glyph; later, possibly longer, entries are not tried once
// one matches.
func (f *File) applyLigatures(in []GlyphRun) []GlyphRun {
	if f.gsub == nil || len(f.gsub.ligatures) == 0 {
		return in
	}
	out := make([]GlyphRun, 0, len(in))
	for i := 0; i < len(in); {
		entries := f.gsub.ligatures[in[i].Glyph]
		matched := false
		for _, e := range entries {
			if i+1+len(e.tail) > len(in) {
				continue
			}
			if matchesTail(in, i+1, e.tail) {
				out = append(out, GlyphRun{Glyph: e.glyph, Cluster: in[i].Cluster})
				i += 1 + len(e.tail)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, in[i])
			i++
		}
	}
	return out
}

func matchesTail(glyphs []GlyphRun, at int, tail []GlyphID) bool {
	for k, want := range tail {
		if glyphs[at+k].Glyph != want {
			return false
		}
	}
	return true
}

func (f *File) applyKerning(glyphs []GlyphRun) {
	if len(f.kerning) == 0 {
		return
	}
	for i := 0; i+1 < len(glyphs); i++ {
		if adj := f.Kerning(glyphs[i].Glyph, glyphs[i+1].Glyph); adj != 0 {
			glyphs[i].XAdvance += int32(adj)
		}
	}
}
