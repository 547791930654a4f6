package table

import (
	"sort"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/block"
)

// CellLayout is one placed cell's resolved content block, ready to be
// positioned within its row.
type CellLayout struct {
	Placement
	Width  dimen.DU
	Block  block.Block
	Height dimen.DU
}

// RowsLayout is a table section's (header/footer/body) rows, each reduced
// to its final height and the cells starting in it.
type RowsLayout struct {
	Grid    *Grid
	Cells   []CellLayout
	Heights []dimen.DU // one per row
}

// LayoutRows builds each placed cell's content block at its spanned column
// width, then resolves row heights per spec §4.5: a non-spanning cell's
// height is a candidate for its own row's maximum; a row-spanning cell
// instead contributes (its height) minus the heights its span's earlier
// rows already consumed, to its *final* row only.
func LayoutRows(builder *block.Builder, rows []*fo.Node, grid *Grid, colWidths []dimen.DU) *RowsLayout {
	rl := &RowsLayout{Grid: grid, Heights: make([]dimen.DU, len(rows))}
	for _, p := range grid.Placements {
		w := spanWidth(colWidths, p.Col, p.ColSpan)
		blk := builder.Build(p.Node, w)
		h := blk.NaturalHeight()
		rl.Cells = append(rl.Cells, CellLayout{Placement: p, Width: w, Block: blk, Height: h})
	}

	single := append([]CellLayout(nil), rl.Cells...)
	sort.SliceStable(single, func(i, j int) bool { return single[i].RowSpan < single[j].RowSpan })

	for _, c := range single {
		finalRow := c.Row + c.RowSpan - 1
		if c.RowSpan <= 1 {
			if c.Height > rl.Heights[c.Row] {
				rl.Heights[c.Row] = c.Height
			}
			continue
		}
		var consumed dimen.DU
		for r := c.Row; r < finalRow; r++ {
			consumed += rl.Heights[r]
		}
		needed := c.Height - consumed
		if needed > rl.Heights[finalRow] {
			rl.Heights[finalRow] = needed
		}
	}
	return rl
}

func spanWidth(colWidths []dimen.DU, col, span int) dimen.DU {
	var w dimen.DU
	for i := col; i < col+span && i < len(colWidths); i++ {
		w += colWidths[i]
	}
	return w
}

// RowTotal returns the sum of rows[from:to)'s heights.
func (rl *RowsLayout) RowTotal(from, to int) dimen.DU {
	var h dimen.DU
	for i := from; i < to && i < len(rl.Heights); i++ {
		h += rl.Heights[i]
	}
	return h
}
