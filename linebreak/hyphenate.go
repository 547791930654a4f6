package linebreak

import (
	"strings"

	"github.com/derekparker/trie"
)

// Hyphenator splits words at acceptable hyphenation points using Liang's
// pattern-matching algorithm (as used by TeX and troff): patterns like
// "1n2th1" encode a hyphenation-level digit between each pair of letters;
// overlaying every matching pattern's levels onto a word and breaking at
// odd levels yields the hyphenation points.
//
// The teacher's core/locate package references a per-language
// locate.Dictionary with a Hyphenate method but never implements pattern
// matching (core/font and khipukamayuq.go both call it, with the body
// left as "TODO not yet implemented"); this package supplies that body.
type Hyphenator struct {
	patterns *trie.Trie
}

// NewHyphenator returns a Hyphenator with no patterns loaded.
func NewHyphenator() *Hyphenator {
	return &Hyphenator{patterns: trie.New()}
}

// AddPattern registers a single Liang-style pattern, e.g. "1n2th1" or
// ".con1".
func (h *Hyphenator) AddPattern(pattern string) {
	letters, levels := parsePattern(pattern)
	if letters == "" {
		return
	}
	h.patterns.Add(letters, levels)
}

// AddPatterns registers a whitespace-separated list of patterns.
func (h *Hyphenator) AddPatterns(patterns string) {
	for _, p := range strings.Fields(patterns) {
		h.AddPattern(p)
	}
}

// parsePattern splits a Liang pattern into its letter sequence and the
// hyphenation-level digit following each letter (0 where absent).
func parsePattern(pattern string) (string, []int) {
	var letters strings.Builder
	levels := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			levels[len(levels)-1] = int(r - '0')
			continue
		}
		letters.WriteRune(r)
		levels = append(levels, 0)
	}
	return letters.String(), levels
}

// Hyphenate splits word into syllables at acceptable hyphenation points.
// ok is false if the word is too short to hyphenate or no break was
// found; in that case syllables contains just the original word.
func (h *Hyphenator) Hyphenate(word string, params *Parameters) (syllables []string, ok bool) {
	if params == nil {
		params = DefaultParameters
	}
	runes := []rune(strings.ToLower(word))
	if len(runes) < params.MinHyphenWordLength {
		return []string{word}, false
	}
	padded := "." + string(runes) + "."
	levels := make([]int, len(padded)+1)

	for start := 0; start < len(padded); start++ {
		for end := start + 1; end <= len(padded); end++ {
			sub := padded[start:end]
			node, found := h.patterns.Find(sub)
			if !found {
				continue
			}
			meta, ok := node.Meta().([]int)
			if !ok {
				continue
			}
			for i, lvl := range meta {
				pos := start + i
				if pos < len(levels) && lvl > levels[pos] {
					levels[pos] = lvl
				}
			}
		}
	}

	var breaks []int
	// levels[i] corresponds to the gap before padded[i]; padded has a
	// leading '.', so a break before rune index k of the original word
	// is levels[k+1].
	for k := 1; k < len(runes); k++ {
		if levels[k+1]%2 == 1 &&
			k >= params.MinCharsBeforeBreak &&
			len(runes)-k >= params.MinCharsAfterBreak {
			breaks = append(breaks, k)
		}
	}
	if len(breaks) == 0 {
		return []string{word}, false
	}
	orig := []rune(word)
	prev := 0
	for _, b := range breaks {
		syllables = append(syllables, string(orig[prev:b]))
		prev = b
	}
	syllables = append(syllables, string(orig[prev:]))
	return syllables, true
}

// DefaultEnglishPatterns is a small starter set of common English
// hyphenation patterns, sufficient for demonstration and testing; a
// production deployment loads a full language pattern file instead.
const DefaultEnglishPatterns = `
1na5cy4ti 1ning 4tio1n 2ab1le con1si1der 1pho1to 1graph1ic
ea1si1ly com1pu1ter pro1gram1ming hy1phen1ate ty1pe1set1ting
`

// NewDefaultHyphenator returns a Hyphenator pre-loaded with
// DefaultEnglishPatterns.
func NewDefaultHyphenator() *Hyphenator {
	h := NewHyphenator()
	h.AddPatterns(DefaultEnglishPatterns)
	return h
}
