package page

import (
	"context"
	"fmt"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/block"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/props"
)

// Masters bundles the layout-master-set lookups a page-sequence needs:
// simple-page-masters and page-sequence-masters, both keyed by their
// master-name.
type Masters struct {
	Simple       map[string]*fo.Node
	PageSequence map[string]*fo.Node
}

// Builder lays out one `page-sequence`'s flow into a run of *area.PageArea
// (spec §4.6 "Page builder"): a state machine of
// Empty -> FillingColumn(i) -> ColumnFull(i) -> NextPage, driven by
// fillColumn, that also handles footnote reservation, static-content
// marker retrieval, page-master selection (once per sequence, see
// BuildSequence) and force-page-count blank trailers.
type Builder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Options  *layout.Options
}

// NewBuilder returns a page Builder.
func NewBuilder(r *props.Resolver, fonts *fontregistry.Registry, opts *layout.Options) *Builder {
	if opts == nil {
		opts = layout.NewDefaultOptions()
	}
	return &Builder{Resolver: r, Fonts: fonts, Options: opts}
}

// SequenceResult is everything BuildSequence produces for one page-sequence:
// the pages themselves, plus what pagination's final ResolveCitations pass
// needs (every placeholder it must patch, and the id->page map those
// placeholders resolve against).
type SequenceResult struct {
	Pages     []*area.PageArea
	Citations []inline.Citation
	IDs       IDRegistry
}

type markerResolverAdapter struct {
	registry             *MarkerRegistry
	pageNumber, seqIndex int
}

func (a markerResolverAdapter) Retrieve(class, position, boundary string) *fo.Node {
	return a.registry.Retrieve(class, position, boundary, a.pageNumber, a.seqIndex)
}

// BuildSequence lays out seq (a `page-sequence`) against masters, starting
// page numbering at startPageNumber (spec §4.6 "initial-page-number").
// seqIndex identifies this page-sequence for retrieve-boundary="page-sequence"
// scoping. ctx is checked once per page boundary (spec §5 "Cancellation &
// timeouts"), so a long page-sequence can be aborted between pages without
// waiting for the whole sequence to finish.
//
// The master is selected once per sequence: SelectMaster is asked for page
// 1, treated as both the first and the last page, and every content page
// of the sequence uses that master's geometry. Conditional alternatives of
// a page-sequence-master are not re-evaluated for later pages, so
// odd/even, rest and last-page conditions do not change the master of any
// page after the first. The only other selection is for the blank trailer
// page force-page-count may add, which is matched as a blank last page
// under its own page number.
func (b *Builder) BuildSequence(ctx context.Context, seq *fo.Node, seqIndex int, masters Masters, startPageNumber int) (*SequenceResult, error) {
	masterRef, _ := seq.Prop("master-reference")
	seqMasterNode := masters.PageSequence[masterRef]
	if seqMasterNode == nil {
		seqMasterNode = masters.Simple[masterRef]
	}
	if seqMasterNode == nil {
		return nil, fmt.Errorf("page-sequence master-reference %q does not resolve", masterRef)
	}

	firstMaster := SelectMaster(seqMasterNode, masters.Simple, 1, 1, false)
	if firstMaster == nil {
		return nil, fmt.Errorf("no page master matches page 1 of sequence %d", seqIndex)
	}
	geom := ResolveGeometry(b.Resolver, firstMaster)
	bodyGeom, ok := geom.Regions["body"]
	if !ok {
		return nil, fmt.Errorf("simple-page-master has no region-body")
	}
	colRects := bodyGeom.ColumnRects()
	width := colRects[0].Size.W

	var flowNode *fo.Node
	staticByFlowName := make(map[string]*fo.Node)
	for _, c := range seq.Children {
		switch c.Kind {
		case fo.KindFlow:
			flowNode = c
		case fo.KindStaticContent:
			name, _ := c.Prop("flow-name")
			staticByFlowName[name] = c
		}
	}
	if flowNode == nil {
		return nil, fmt.Errorf("page-sequence has no flow")
	}

	markers := NewMarkerRegistry()
	fb := NewFlowBuilder(b.Resolver, b.Fonts, b.Options, markers)
	items := fb.Build(flowNode, width)
	cur := newFlowCursor(items)

	ids := make(IDRegistry)
	result := &SequenceResult{IDs: ids}

	pageNum := startPageNumber
	for !cur.done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pg := area.PageArea{PageNumber: pageNum}
		pg.Box = area.Rect{Size: area.Size{W: geom.Width, H: geom.Height}}

		onFirst := func(n *fo.Node) {
			recordIDs(n, pageNum, ids)
			fb.RecordMarkers(n, pageNum, seqIndex)
		}

		body := &area.RegionArea{Reference: "body", Columns: bodyGeom.Columns}
		body.Box = bodyGeom.Rect
		footnotes := NewFootnoteQueue()

		before := len(body.Children)
		for ci := 0; ci < len(colRects) && !cur.done(); ci++ {
			children, _, sig := fillColumn(cur, colRects[ci], footnotes, onFirst)
			body.Children = append(body.Children, children...)
			if sig == breakPage {
				break
			}
		}
		if len(body.Children) == before && !cur.done() {
			// No column on this page could fit even a fragment of the next
			// item (spec §7 LayoutOverflow): force it through whole rather
			// than looping forever producing empty pages.
			b, _ := cur.current()
			onFirst(b.Node())
			overflowed, _, _ := b.Fragment(b.NaturalHeight())
			positionAt(overflowed, colRects[0].Origin.X, colRects[0].Origin.Y)
			body.Children = append(body.Children, overflowed)
			cur.advance()
		}

		if !footnotes.Empty() {
			bodies := footnotes.DrainForPage()
			var total dimen.DU
			for _, fn := range bodies {
				total += fn.NaturalHeight()
			}
			y := bodyGeom.Rect.Origin.Y + bodyGeom.Rect.Size.H - total
			for _, fn := range bodies {
				frag, _, _ := fn.Fragment(fn.NaturalHeight())
				positionAt(frag, bodyGeom.Rect.Origin.X, y)
				body.Children = append(body.Children, frag)
				y += frag.Rect().Size.H
			}
		}

		pg.Regions = append(pg.Regions, body)
		if before, ok := geom.Regions["before"]; ok {
			pg.Regions = append(pg.Regions, b.buildStaticRegion(staticByFlowName, "xsl-region-before", before, markers, pageNum, seqIndex))
		}
		if after, ok := geom.Regions["after"]; ok {
			pg.Regions = append(pg.Regions, b.buildStaticRegion(staticByFlowName, "xsl-region-after", after, markers, pageNum, seqIndex))
		}

		result.Pages = append(result.Pages, &pg)
		pageNum++
	}

	force := ForcePageCount(b.Resolver.Computed(seq, "force-page-count"))
	if NeedsBlankTrailer(force, len(result.Pages)) {
		blankMaster := SelectMaster(seqMasterNode, masters.Simple, pageNum, pageNum, true)
		if blankMaster == nil {
			blankMaster = firstMaster
		}
		blankGeom := ResolveGeometry(b.Resolver, blankMaster)
		pg := &area.PageArea{PageNumber: pageNum}
		pg.Box = area.Rect{Size: area.Size{W: blankGeom.Width, H: blankGeom.Height}}
		if bg, ok := blankGeom.Regions["body"]; ok {
			region := &area.RegionArea{Reference: "body", Columns: bg.Columns}
			region.Box = bg.Rect
			pg.Regions = append(pg.Regions, region)
		}
		result.Pages = append(result.Pages, pg)
	}

	result.Citations = fb.Citations()
	return result, nil
}

// buildStaticRegion lays out one static-content flow for the given region,
// resolving any retrieve-marker it contains against markers as recorded up
// to (and including) pageNum.
func (b *Builder) buildStaticRegion(staticByFlowName map[string]*fo.Node, flowName string, geom RegionGeometry, markers *MarkerRegistry, pageNum, seqIndex int) *area.RegionArea {
	region := &area.RegionArea{Reference: regionReferenceFor(flowName)}
	region.Box = geom.Rect
	static := staticByFlowName[flowName]
	if static == nil {
		return region
	}
	bb := block.NewBuilder(b.Resolver, b.Fonts, b.Options)
	bb.Markers = markerResolverAdapter{registry: markers, pageNumber: pageNum, seqIndex: seqIndex}
	content := bb.Build(static, geom.Rect.Size.W)
	frag, _, _ := content.Fragment(geom.Rect.Size.H)
	positionAt(frag, geom.Rect.Origin.X, geom.Rect.Origin.Y)
	region.Children = append(region.Children, frag)
	return region
}

func regionReferenceFor(flowName string) string {
	switch flowName {
	case "xsl-region-before":
		return "before"
	case "xsl-region-after":
		return "after"
	case "xsl-region-start":
		return "start"
	case "xsl-region-end":
		return "end"
	default:
		return "body"
	}
}
