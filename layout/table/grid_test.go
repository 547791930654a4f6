package table

import (
	"strconv"
	"testing"

	"github.com/foliant/xslfo/fo"
	"github.com/stretchr/testify/require"
)

func cellNode(rowSpan, colSpan int) *fo.Node {
	n := fo.New(fo.KindTableCell)
	if rowSpan > 1 {
		n.SetProp("number-rows-spanned", strconv.Itoa(rowSpan))
	}
	if colSpan > 1 {
		n.SetProp("number-columns-spanned", strconv.Itoa(colSpan))
	}
	return n
}

func rowNode(cells ...*fo.Node) *fo.Node {
	n := fo.New(fo.KindTableRow)
	for _, c := range cells {
		n.Append(c)
	}
	return n
}

func TestPlaceRowsSimpleGrid(t *testing.T) {
	rows := []*fo.Node{
		rowNode(cellNode(1, 1), cellNode(1, 1)),
		rowNode(cellNode(1, 1), cellNode(1, 1)),
	}
	grid := PlaceRows(rows, 2)
	require.Len(t, grid.Placements, 4)
	require.Equal(t, 0, grid.Placements[0].Col)
	require.Equal(t, 1, grid.Placements[1].Col)
}

func TestPlaceRowsSkipsSlotOccupiedBySpanningCellAbove(t *testing.T) {
	rows := []*fo.Node{
		rowNode(cellNode(2, 1), cellNode(1, 1)), // first cell spans 2 rows
		rowNode(cellNode(1, 1)),                 // must land in column 1, not 0
	}
	grid := PlaceRows(rows, 2)
	require.Len(t, grid.Placements, 3)
	second := grid.Placements[2]
	require.Equal(t, 1, second.Row)
	require.Equal(t, 1, second.Col)
}

func TestPlaceRowsColumnSpanSkipsSlots(t *testing.T) {
	rows := []*fo.Node{
		rowNode(cellNode(1, 2), cellNode(1, 1)),
	}
	grid := PlaceRows(rows, 3)
	require.Equal(t, 0, grid.Placements[0].Col)
	require.Equal(t, 2, grid.Placements[1].Col)
}
