package table

import (
	"strconv"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/foliant/xslfo/fo"
)

// slot identifies one (row, column) cell of the occupancy grid.
type slot struct {
	row, col int
}

// Placement is a `table-cell` positioned onto the occupancy grid.
type Placement struct {
	Node     *fo.Node
	Row, Col int // zero-based
	RowSpan  int
	ColSpan  int
}

// Grid is the row/column occupancy grid a table-header/-footer/-body's rows
// resolve into (spec §4.5 "Occupancy grid"): cells are placed at their row's
// lowest free column, with number-columns-spanned/number-rows-spanned
// marking additional slots occupied so a later row's cell cannot land on a
// slot a spanning cell above already claims.
type Grid struct {
	Placements []Placement
	NumCols    int
	occupied   *hashset.Set
}

// PlaceRows walks rows in order, placing each row's cells left to right at
// the row's lowest free column. Columns are not bounded by NumCols: a cell
// with no free column below NumCols is placed at the next free column past
// it.
func PlaceRows(rows []*fo.Node, numCols int) *Grid {
	g := &Grid{NumCols: numCols, occupied: hashset.New()}
	for rowIdx, row := range rows {
		col := 0
		for _, cell := range row.Children {
			if cell.Kind != fo.KindTableCell {
				continue
			}
			for g.occupied.Contains(slot{rowIdx, col}) {
				col++
			}
			rowSpan := intProp(cell, "number-rows-spanned", 1)
			colSpan := intProp(cell, "number-columns-spanned", 1)
			for r := 0; r < rowSpan; r++ {
				for c := 0; c < colSpan; c++ {
					g.occupied.Add(slot{rowIdx + r, col + c})
				}
			}
			g.Placements = append(g.Placements, Placement{
				Node: cell, Row: rowIdx, Col: col, RowSpan: rowSpan, ColSpan: colSpan,
			})
			col += colSpan
		}
	}
	return g
}

func intProp(n *fo.Node, name string, fallback int) int {
	raw, ok := n.Prop(name)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
