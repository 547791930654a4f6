package font

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
)

// BasePDFFonts are the 14 standard PDF fonts, always available without
// embedding (spec §4.2 "Fallback": "the 14 standard PDF fonts as the
// final fallback tier").
var BasePDFFonts = []string{
	"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique",
	"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic",
	"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique",
	"Symbol", "ZapfDingbats",
}

// genericFamilies maps XSL-FO generic-family keywords to a representative
// system font name findfont.Find can resolve, and their PDF base-font
// fallback (spec §4.2 "Fallback" tier 3 and tier 4).
var genericFamilies = map[string]struct {
	systemName string
	baseFont   string
}{
	"serif":      {"Times New Roman", "Times-Roman"},
	"sans-serif": {"Arial", "Helvetica"},
	"monospace":  {"Courier New", "Courier"},
	"cursive":    {"Comic Sans MS", "Helvetica"},
	"fantasy":    {"Impact", "Helvetica"},
}

// Resolver locates font files for a requested family name, following the
// tiered fallback of spec §4.2: explicit user mapping, then system font
// directories, then a generic-family substitute, then a PDF base font.
type Resolver struct {
	// Explicit maps a family name exactly as it appears in a
	// font-family property to a font file path, set up by the caller
	// from document or engine configuration.
	Explicit map[string]string
	cache    map[string]*File
}

// NewResolver returns a Resolver with an empty explicit-mapping table.
func NewResolver() *Resolver {
	return &Resolver{Explicit: make(map[string]string), cache: make(map[string]*File)}
}

// Resolve finds and parses a font file for the given family name, trying
// each fallback tier in turn. It never returns an error for a missing
// family: the last tier always succeeds by falling back to a base-14
// font name with no backing file (baseFontOnly==true, file==nil).
func (r *Resolver) Resolve(family string) (file *File, baseFontOnly bool, baseFontName string) {
	if cached, ok := r.cache[family]; ok {
		return cached, false, ""
	}
	if path, ok := r.Explicit[family]; ok {
		if f, err := loadFontFile(path); err == nil {
			r.cache[family] = f
			return f, false, ""
		}
		T().Infof("font: explicit mapping for %q unusable, falling back", family)
	}
	if path, err := findfont.Find(family); err == nil {
		if f, err := loadFontFile(path); err == nil {
			r.cache[family] = f
			return f, false, ""
		}
	}
	if g, ok := genericFamilies[strings.ToLower(family)]; ok {
		if path, err := findfont.Find(g.systemName); err == nil {
			if f, err := loadFontFile(path); err == nil {
				r.cache[family] = f
				return f, false, ""
			}
		}
		return nil, true, g.baseFont
	}
	return nil, true, "Helvetica"
}

func loadFontFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: reading %s: %w", path, err)
	}
	return Parse(path, data)
}
