package inline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/linebreak"
	"github.com/foliant/xslfo/props"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/unicode/norm"
)

// MarkerResolver resolves a `retrieve-marker` to the marker node it names,
// given the already-parsed retrieve-class-name/retrieve-position/
// retrieve-boundary properties. Defined here (rather than imported from
// layout/page, which already depends on this package) so Builder can stay
// ignorant of how markers are recorded; layout/page supplies the concrete
// implementation bound to a specific page.
type MarkerResolver interface {
	Retrieve(class, position, boundary string) *fo.Node
}

// Builder descends an fo.Node's inline content and produces a
// linebreak.Sequence ready for the line breaker, plus every page-number
// placeholder it created (for pagination's two-pass resolution).
type Builder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Markers  MarkerResolver // optional; nil leaves retrieve-marker unresolved

	citations []Citation
	footnotes []*fo.Node
}

// NewBuilder returns a Builder using the given property resolver and font
// registry.
func NewBuilder(r *props.Resolver, fonts *fontregistry.Registry) *Builder {
	return &Builder{Resolver: r, Fonts: fonts}
}

// Build splices n's inline descendants into a single item sequence
// (spec §4.4 "Inline sequence construction"). n is typically a `block` or
// an inline-level container; Build recurses through every inline-bearing
// child kind the spec names.
func (b *Builder) Build(n *fo.Node) *linebreak.Sequence {
	seq := linebreak.NewSequence()
	b.walk(n, seq)
	seq.Append(linebreak.Penalty(linebreak.InfinityMerits))
	return seq
}

// Citations returns every page-number-citation/page-number placeholder
// produced by the most recent Build call.
func (b *Builder) Citations() []Citation { return b.citations }

// Footnotes returns every `footnote-body` node encountered by the most
// recent Build call, in document order, for the page builder to lay out
// and enqueue at the bottom of the region (spec §4.6 "Footnotes"). Build
// itself only splices the footnote's inline citation content into the
// line; the body is never part of the line's own flow.
func (b *Builder) Footnotes() []*fo.Node { return b.footnotes }

func (b *Builder) walk(n *fo.Node, seq *linebreak.Sequence) {
	if n == nil {
		return
	}
	switch n.Kind {
	case fo.KindCharacter:
		b.appendText(n, seq)
	case fo.KindBasicLink, fo.KindInline, fo.KindInlineContainer, fo.KindWrapper:
		for _, c := range n.Children {
			b.walk(c, seq)
		}
	case fo.KindBidiOverride:
		b.walkBidiOverride(n, seq)
	case fo.KindLeader:
		seq.Append(b.buildLeader(n))
	case fo.KindPageNumber:
		seq.Append(b.buildPlaceholder(n, ""))
	case fo.KindPageNumberCitation:
		refID, _ := n.Prop("ref-id")
		seq.Append(b.buildPlaceholder(n, refID))
	case fo.KindExternalGraphic, fo.KindInstreamForeignObject:
		seq.Append(b.buildImage(n))
	case fo.KindFootnote:
		for _, c := range n.Children {
			if c.Kind == fo.KindFootnoteBody {
				b.footnotes = append(b.footnotes, c)
				continue
			}
			b.walk(c, seq)
		}
	case fo.KindRetrieveMarker:
		if b.Markers == nil {
			return
		}
		class, _ := n.Prop("retrieve-class-name")
		position, _ := n.Prop("retrieve-position")
		boundary, _ := n.Prop("retrieve-boundary")
		if marker := b.Markers.Retrieve(class, position, boundary); marker != nil {
			for _, c := range marker.Children {
				b.walk(c, seq)
			}
		}
	default:
		for _, c := range n.Children {
			b.walk(c, seq)
		}
	}
}

// walkBidiOverride realizes the "flips the whole directional run as a
// unit" decision (DESIGN.md Open Question): items from the subtree are
// appended in forward order, then reversed as a block, rather than
// attempting nested embedding runs.
func (b *Builder) walkBidiOverride(n *fo.Node, seq *linebreak.Sequence) {
	inner := linebreak.NewSequence()
	for _, c := range n.Children {
		b.walk(c, inner)
	}
	items := make([]linebreak.Item, inner.Len())
	for i := 0; i < inner.Len(); i++ {
		items[inner.Len()-1-i] = inner.At(i)
	}
	for _, it := range items {
		seq.Append(it)
	}
}

// appendText shapes a character node's literal text into word boxes
// separated by interword glue, using the node's computed font. Word-space
// stretch/shrink are the conventional TeX ratios (stretch = 1/2 space
// width, shrink = 1/3), matching the defaults already exercised by
// linebreak's own tests. Text is NFC-normalized and split on UAX#29 word
// boundaries (a whitespace run is its own token under UAX#29) rather than
// a hand-rolled space split, matching the pipeline set up by the teacher's
// khipukamayuq.go ("PrepareTypesettingPipeline": norm.NFC reader feeding a
// segment.Segmenter over a uax29.WordBreaker).
func (b *Builder) appendText(n *fo.Node, seq *linebreak.Sequence) {
	family := b.Resolver.Computed(n, "font-family")
	fontSize := b.Resolver.FontSize(n)
	inst := b.Fonts.Instance(family, fontSize.Points())

	text := norm.NFC.String(n.Text)
	spaceWidth := spaceAdvance(inst, fontSize)
	glue := linebreak.NewGlue(spaceWidth, spaceWidth/3, spaceWidth/2)

	words := segment.NewSegmenter(uax29.NewWordBreaker(1))
	words.BreakOnZero(true, false)
	words.Init(strings.NewReader(text))
	for words.Next() {
		tok := words.Text()
		if strings.TrimFunc(tok, unicode.IsSpace) == "" {
			if seq.Len() > 0 {
				seq.Append(glue)
			}
			continue
		}
		seq.Append(b.shapeWord(tok, inst, fontSize))
	}
}

func (b *Builder) shapeWord(word string, inst *fontregistry.Instance, fontSize dimen.DU) TextBox {
	if inst.File == nil {
		// base-14 fallback has no embedded metrics; approximate with a
		// fixed average-advance heuristic rather than refusing to lay out.
		width := dimen.DU(len([]rune(word))) * fontSize / 2
		return TextBox{Box: linebreak.Box{Width: width, Text: word}, FontID: inst.BaseFontName}
	}
	runs := inst.File.Shape([]rune(word))
	width := glyphRunWidth(runs, inst.File.Header.UnitsPerEm, fontSize)
	return TextBox{Box: linebreak.Box{Width: width, Text: word}, Glyphs: runs, FontID: inst.Family}
}

func spaceAdvance(inst *fontregistry.Instance, fontSize dimen.DU) dimen.DU {
	if inst.File == nil {
		return fontSize / 4
	}
	runs := inst.File.Shape([]rune{' '})
	w := glyphRunWidth(runs, inst.File.Header.UnitsPerEm, fontSize)
	if w == 0 {
		return fontSize / 4
	}
	return w
}

func (b *Builder) buildLeader(n *fo.Node) LeaderGlue {
	family := b.Resolver.Computed(n, "font-family")
	fontSize := b.Resolver.FontSize(n)
	inst := b.Fonts.Instance(family, fontSize.Points())

	patternStr := b.Resolver.Computed(n, "leader-pattern")
	pattern := LeaderSpace
	switch patternStr {
	case "rule":
		pattern = LeaderRule
	case "dots":
		pattern = LeaderDots
	}

	minL, _ := b.Resolver.Length(n, "leader-length.minimum", 0, 0)
	optL, ok := b.Resolver.Length(n, "leader-length.optimum", 0, 0)
	if !ok || optL == 0 {
		optL, _ = b.Resolver.Length(n, "leader-length", 0, 12*fontSize)
	}
	maxL, ok := b.Resolver.Length(n, "leader-length.maximum", 0, 0)
	if !ok || maxL < optL {
		maxL = optL
	}
	if minL > optL {
		minL = optL
	}

	return LeaderGlue{
		Glue:    linebreak.NewGlue(optL, optL-minL, maxL-optL),
		Pattern: pattern,
		FontID:  inst.Family,
	}
}

func (b *Builder) buildImage(n *fo.Node) ImageBox {
	format := b.Resolver.Computed(n, "content-type")
	w, _ := b.Resolver.Length(n, "width", 0, 0)
	h, _ := b.Resolver.Length(n, "height", 0, 0)
	return ImageBox{
		Box:    linebreak.Box{Width: w, Height: h},
		Format: format,
	}
}

func (b *Builder) buildPlaceholder(n *fo.Node, refID string) *PagePlaceholder {
	family := b.Resolver.Computed(n, "font-family")
	fontSize := b.Resolver.FontSize(n)
	inst := b.Fonts.Instance(family, fontSize.Points())
	// A placeholder is sized as if it already held three digits; pages
	// beyond 999 simply grow their line slightly during the patch pass,
	// matching the teacher's tolerance for post-hoc glyph-run width drift
	// (no re-breaking is triggered by citation resolution, spec §4.6).
	width := b.shapeWord(strconv.Itoa(888), inst, fontSize).Width
	ph := &PagePlaceholder{
		Box:    linebreak.Box{Width: width, Text: "??"},
		RefID:  refID,
		FontID: inst.Family,
	}
	// Identity, not a counter: a fresh inline.Builder is created per leaf
	// block (block.Builder.buildLeaf), so a per-builder counter would
	// collide across blocks. The pointer is unique for the process's
	// lifetime, which is all ResolveCitations needs.
	ph.ID = fmt.Sprintf("%p", ph)
	b.citations = append(b.citations, Citation{Placeholder: ph, Node: n})
	return ph
}
