package table

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/block"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/props"
)

// Builder constructs a Table (a block.Block) from a `table` fo.Node.
type Builder struct {
	Resolver *props.Resolver
	Fonts    *fontregistry.Registry
	Options  *layout.Options
	blocks   *block.Builder
}

// NewBuilder returns a table Builder.
func NewBuilder(r *props.Resolver, fonts *fontregistry.Registry, opts *layout.Options) *Builder {
	if opts == nil {
		opts = layout.NewDefaultOptions()
	}
	return &Builder{Resolver: r, Fonts: fonts, Options: opts, blocks: block.NewBuilder(r, fonts, opts)}
}

// Citations returns every page-number/page-number-citation placeholder
// produced while building cell content so far, forwarded from the
// underlying block.Builder (layout/page.ResolveCitations).
func (b *Builder) Citations() []inline.Citation { return b.blocks.Citations() }

// Footnotes forwards every footnote-body node encountered while building
// cell content so far.
func (b *Builder) Footnotes() []*fo.Node { return b.blocks.Footnotes() }

// Table lays out a `table`'s header/body/footer sections, fragmenting by
// whole rows across pages with the header always repeated and the footer
// repeated unless `table-omit-footer-at-break` is set (spec §4.5
// "Pagination").
type Table struct {
	node              *fo.Node
	width             dimen.DU
	colWidths         []dimen.DU
	header            *RowsLayout
	footer            *RowsLayout
	body              *RowsLayout
	omitFooterAtBreak bool
	constraints       block.Constraints
	start             int // index into body.Heights: first not-yet-emitted row
}

func (b *Builder) Build(n *fo.Node, width dimen.DU) *Table {
	var colNodes []*fo.Node
	var headerNode, footerNode *fo.Node
	var bodyNodes []*fo.Node
	for _, c := range n.Children {
		switch c.Kind {
		case fo.KindTableColumn:
			colNodes = append(colNodes, c)
		case fo.KindTableHeader:
			headerNode = c
		case fo.KindTableFooter:
			footerNode = c
		case fo.KindTableBody:
			bodyNodes = append(bodyNodes, c)
		}
	}

	specs := make([]ColumnSpec, len(colNodes))
	for i, c := range colNodes {
		raw := b.Resolver.Computed(c, "column-width")
		specs[i] = parseColumnWidth(raw, b.Resolver, c, width)
	}

	var allRows []*fo.Node
	if headerNode != nil {
		allRows = append(allRows, rowsOf(headerNode)...)
	}
	for _, bn := range bodyNodes {
		allRows = append(allRows, rowsOf(bn)...)
	}
	if footerNode != nil {
		allRows = append(allRows, rowsOf(footerNode)...)
	}
	autoMeasure := b.measureAutoColumns(allRows, len(specs))
	colWidths := ResolveColumnWidths(specs, autoMeasure, width)

	t := &Table{
		node:      n,
		width:     width,
		colWidths: colWidths,
	}
	t.constraints = block.Constraints{
		Together:     block.KeepTogether(b.Resolver, n),
		WithNext:     block.KeepWithNext(b.Resolver, n),
		WithPrevious: block.KeepWithPrevious(b.Resolver, n),
		BreakBefore:  block.BreakBefore(b.Resolver, n),
		BreakAfter:   block.BreakAfter(b.Resolver, n),
	}
	t.omitFooterAtBreak = b.Resolver.Computed(n, "table-omit-footer-at-break") == "true"

	if headerNode != nil {
		rows := rowsOf(headerNode)
		grid := PlaceRows(rows, len(specs))
		t.header = LayoutRows(b.blocks, rows, grid, colWidths)
	}
	if footerNode != nil {
		rows := rowsOf(footerNode)
		grid := PlaceRows(rows, len(specs))
		t.footer = LayoutRows(b.blocks, rows, grid, colWidths)
	}
	var bodyRows []*fo.Node
	for _, bn := range bodyNodes {
		bodyRows = append(bodyRows, rowsOf(bn)...)
	}
	grid := PlaceRows(bodyRows, len(specs))
	t.body = LayoutRows(b.blocks, bodyRows, grid, colWidths)

	return t
}

func rowsOf(section *fo.Node) []*fo.Node {
	var rows []*fo.Node
	for _, c := range section.Children {
		if c.Kind == fo.KindTableRow {
			rows = append(rows, c)
		}
	}
	return rows
}

// measureAutoColumns finds, per column, the widest unbreakable item in any
// cell occupying that column (spec §4.5: "the longest word or the widest
// non-breakable inline run").
func (b *Builder) measureAutoColumns(rows []*fo.Node, numCols int) []dimen.DU {
	widths := make([]dimen.DU, numCols)
	grid := PlaceRows(rows, numCols)
	for _, p := range grid.Placements {
		w := widestUnbreakableRun(b, p.Node)
		perCol := w / dimen.DU(max(p.ColSpan, 1))
		for c := p.Col; c < p.Col+p.ColSpan && c < numCols; c++ {
			if perCol > widths[c] {
				widths[c] = perCol
			}
		}
	}
	return widths
}

func (t *Table) Node() *fo.Node          { return t.node }
func (t *Table) Keep() block.Constraints { return t.constraints }

func (t *Table) NaturalHeight() dimen.DU {
	var h dimen.DU
	if t.header != nil {
		h += t.header.RowTotal(0, len(t.header.Heights))
	}
	h += t.body.RowTotal(t.start, len(t.body.Heights))
	if t.footer != nil {
		h += t.footer.RowTotal(0, len(t.footer.Heights))
	}
	return h
}

// Fragment lays out as many whole rows as fit in `remaining`, always
// opening with the header (if any) and closing with the footer per
// table-omit-footer-at-break (spec §4.5 "Pagination"). No row is ever split
// across fragments.
func (t *Table) Fragment(remaining dimen.DU) (area.Area, block.Block, bool) {
	frag := &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{W: t.width}}}}
	var cursor dimen.DU

	if t.header != nil {
		hh := t.header.RowTotal(0, len(t.header.Heights))
		if hh > remaining {
			return nil, t, false
		}
		t.appendSection(frag, t.header, 0, len(t.header.Heights), &cursor)
	}

	// Unless table-omit-footer-at-break is set, every fragment closes with
	// the footer, so its height is held back while rows are placed; with it
	// set, the footer's height is held back only beside the last body row.
	var footerH dimen.DU
	if t.footer != nil {
		footerH = t.footer.RowTotal(0, len(t.footer.Heights))
	}
	n := len(t.body.Heights)
	i := t.start
	for i < n {
		rh := t.body.Heights[i]
		room := footerH
		if t.omitFooterAtBreak && i < n-1 {
			room = 0
		}
		if cursor+rh+room > remaining {
			break
		}
		t.appendSection(frag, t.body, i, i+1, &cursor)
		i++
	}
	allDone := i >= n

	showFooter := t.footer != nil && (allDone || !t.omitFooterAtBreak)
	if showFooter {
		fh := t.footer.RowTotal(0, len(t.footer.Heights))
		if cursor+fh <= remaining {
			t.appendSection(frag, t.footer, 0, len(t.footer.Heights), &cursor)
		}
	}

	frag.Box.Size.H = cursor
	if allDone {
		return frag, nil, true
	}
	rest := &Table{
		node: t.node, width: t.width, colWidths: t.colWidths,
		header: t.header, footer: t.footer, body: t.body,
		omitFooterAtBreak: t.omitFooterAtBreak, constraints: t.constraints,
		start: i,
	}
	return frag, rest, false
}

func (t *Table) appendSection(frag *area.BlockArea, rl *RowsLayout, fromRow, toRow int, cursor *dimen.DU) {
	colX := make([]dimen.DU, len(t.colWidths)+1)
	for i, w := range t.colWidths {
		colX[i+1] = colX[i] + w
	}
	rowY := make([]dimen.DU, toRow-fromRow)
	var y dimen.DU
	for r := fromRow; r < toRow; r++ {
		rowY[r-fromRow] = y
		y += rl.Heights[r]
	}
	for _, c := range rl.Cells {
		if c.Row < fromRow || c.Row >= toRow {
			continue
		}
		cellArea, _, _ := c.Block.Fragment(c.Height)
		if cellArea == nil {
			continue
		}
		if ba, ok := cellArea.(*area.BlockArea); ok {
			ba.Box.Origin = dimen.Point{X: colX[c.Col], Y: *cursor + rowY[c.Row-fromRow]}
		}
		frag.Children = append(frag.Children, cellArea)
	}
	*cursor += y
}
