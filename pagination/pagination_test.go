package pagination

import (
	"context"
	"testing"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/props"
	"github.com/stretchr/testify/require"
)

func testFonts() *fontregistry.Registry {
	return fontregistry.NewRegistry(font.NewResolver())
}

func simplePageMaster(name, width, height string) *fo.Node {
	m := fo.New(fo.KindSimplePageMaster)
	m.SetProp("master-name", name)
	m.SetProp("page-width", width)
	m.SetProp("page-height", height)

	before := fo.New(fo.KindRegionBefore)
	before.SetProp("extent", "24pt")
	after := fo.New(fo.KindRegionAfter)
	after.SetProp("extent", "24pt")
	body := fo.New(fo.KindRegionBody)
	body.SetProp("margin", "18pt")
	props.ExpandShorthands(body)

	m.Append(before)
	m.Append(after)
	m.Append(body)
	return m
}

func documentRoot(masters []*fo.Node, seqs ...*fo.Node) *fo.Node {
	root := fo.New(fo.KindRoot)
	masterSet := fo.New(fo.KindLayoutMasterSet)
	for _, m := range masters {
		masterSet.Append(m)
	}
	root.Append(masterSet)
	for _, s := range seqs {
		root.Append(s)
	}
	return root
}

func pageSeq(masterName string, flowChildren ...*fo.Node) *fo.Node {
	seq := fo.New(fo.KindPageSequence)
	seq.SetProp("master-reference", masterName)
	flow := fo.New(fo.KindFlow)
	for _, c := range flowChildren {
		flow.Append(c)
	}
	seq.Append(flow)
	return seq
}

func paraBlock(text string) *fo.Node {
	b := fo.New(fo.KindBlock)
	c := fo.New(fo.KindCharacter)
	c.Text = text
	b.Append(c)
	return b
}

func walkGlyphText(areas []area.Area, visit func(string)) {
	for _, a := range areas {
		switch v := a.(type) {
		case *area.BlockArea:
			walkGlyphText(v.Children, visit)
		case *area.LineArea:
			walkGlyphText(v.Children, visit)
		case *area.InlineArea:
			walkGlyphText(v.Children, visit)
		case *area.RegionArea:
			walkGlyphText(v.Children, visit)
		case *area.GlyphRunArea:
			visit(v.Text)
		}
	}
}

func allText(pages []*area.PageArea) string {
	var out string
	for _, pg := range pages {
		for _, r := range pg.Regions {
			walkGlyphText(r.Children, func(s string) { out += s + " " })
		}
	}
	return out
}

func TestLayoutPageSequencesHelloWorld(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "200pt")
	seq := pageSeq("plain", paraBlock("hello, world"))
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Equal(t, 1, pages[0].PageNumber)
}

func TestLayoutPageSequencesMultiPageFlowOverflows(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "100pt")
	var children []*fo.Node
	for i := 0; i < 20; i++ {
		children = append(children, paraBlock("a reasonably long paragraph of filler text meant to consume vertical space on the page"))
	}
	seq := pageSeq("plain", children...)
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Greater(t, len(pages), 1)
	for i, pg := range pages {
		require.Equal(t, i+1, pg.PageNumber)
	}
}

func TestLayoutPageSequencesMultiPageTable(t *testing.T) {
	master := simplePageMaster("plain", "300pt", "140pt")

	tbl := fo.New(fo.KindTable)
	col := fo.New(fo.KindTableColumn)
	tbl.Append(col)
	body := fo.New(fo.KindTableBody)
	for i := 0; i < 12; i++ {
		row := fo.New(fo.KindTableRow)
		cell := fo.New(fo.KindTableCell)
		cell.Append(paraBlock("row content"))
		row.Append(cell)
		body.Append(row)
	}
	tbl.Append(body)

	seq := pageSeq("plain", tbl)
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Greater(t, len(pages), 1)
}

func TestLayoutPageSequencesKeepWithNextHeading(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "150pt")

	var filler []*fo.Node
	for i := 0; i < 4; i++ {
		filler = append(filler, paraBlock("filler paragraph to push the heading near the bottom of the column"))
	}
	heading := paraBlock("A Heading")
	heading.SetProp("keep-with-next", "always")
	body := paraBlock("the paragraph that must stay attached to the heading above")

	seq := pageSeq("plain", append(append([]*fo.Node{}, filler...), heading, body)...)
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pages), 1)

	// keep-with-next must keep "Heading" and the distinctive word
	// "attached" from its following paragraph on the same page.
	headingPage, bodyPage := -1, -1
	for i, pg := range pages {
		var runs []string
		for _, r := range pg.Regions {
			walkGlyphText(r.Children, func(s string) { runs = append(runs, s) })
		}
		for _, r := range runs {
			if r == "Heading" {
				headingPage = i
			}
			if r == "attached" {
				bodyPage = i
			}
		}
	}
	require.NotEqual(t, -1, headingPage)
	require.NotEqual(t, -1, bodyPage)
	require.Equal(t, headingPage, bodyPage)
}

func TestLayoutPageSequencesFootnoteLandsOnCitingPage(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "200pt")

	para := fo.New(fo.KindBlock)
	text := fo.New(fo.KindCharacter)
	text.Text = "a paragraph with a footnote"
	para.Append(text)

	footnote := fo.New(fo.KindFootnote)
	cite := fo.New(fo.KindCharacter)
	cite.Text = "1"
	footnote.Append(cite)
	footnoteBody := fo.New(fo.KindFootnoteBody)
	footnoteBody.Append(paraBlock("the footnote text itself"))
	footnote.Append(footnoteBody)
	para.Append(footnote)

	seq := pageSeq("plain", para)
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Contains(t, allText(pages), "the footnote text itself")
}

func TestLayoutPageSequencesOptimalLineBreakingWithHyphenation(t *testing.T) {
	master := simplePageMaster("plain", "120pt", "400pt")
	seq := pageSeq("plain", paraBlock("internationalization and counterrevolutionaries are both famously long words"))
	root := documentRoot([]*fo.Node{master}, seq)

	opts := layout.NewDefaultOptions()
	opts.LineBreaking = layout.Optimal
	opts.EnableHyphenation = true

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), opts)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	// Round-trip property (spec §8): the glyph runs' codepoints concatenate
	// back to the source text modulo whitespace collapsing.
	got := allText(pages)
	require.Contains(t, got, "international")
}

func TestLayoutPageSequencesThreadsPageNumbersAcrossSequences(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "200pt")
	seq1 := pageSeq("plain", paraBlock("first sequence"))
	seq2 := pageSeq("plain", paraBlock("second sequence"))
	root := documentRoot([]*fo.Node{master}, seq1, seq2)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Len(t, pages, 2)
	require.Equal(t, 1, pages[0].PageNumber)
	require.Equal(t, 2, pages[1].PageNumber)
}

func TestLayoutPageSequencesHonorsExplicitInitialPageNumber(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "200pt")
	seq := pageSeq("plain", paraBlock("restarted numbering"))
	seq.SetProp("initial-page-number", "5")
	root := documentRoot([]*fo.Node{master}, seq)

	pages, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, pages[0].PageNumber)
}

func TestLayoutPageSequencesErrorsOnMissingLayoutMasterSet(t *testing.T) {
	root := fo.New(fo.KindRoot)
	_, err := LayoutPageSequences(context.Background(), root, testFonts(), layout.NewDefaultOptions())
	require.Error(t, err)
}

func TestLayoutPageSequencesHonorsCancellation(t *testing.T) {
	master := simplePageMaster("plain", "400pt", "200pt")
	seq := pageSeq("plain", paraBlock("content"))
	root := documentRoot([]*fo.Node{master}, seq)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LayoutPageSequences(ctx, root, testFonts(), layout.NewDefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
