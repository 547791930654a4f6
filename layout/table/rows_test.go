package table

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/block"
	"github.com/foliant/xslfo/props"
	"github.com/stretchr/testify/require"
)

func testBlockBuilder() *block.Builder {
	reg := fontregistry.NewRegistry(font.NewResolver())
	return block.NewBuilder(props.NewResolver(), reg, layout.NewDefaultOptions())
}

func cellWithText(text string) *fo.Node {
	cell := fo.New(fo.KindTableCell)
	blk := fo.New(fo.KindBlock)
	ch := fo.New(fo.KindCharacter)
	ch.Text = text
	blk.Append(ch)
	cell.Append(blk)
	return cell
}

func TestLayoutRowsNonSpanningRowHeightIsMaxCellHeight(t *testing.T) {
	bb := testBlockBuilder()
	rows := []*fo.Node{
		rowNode(cellWithText("short"), cellWithText("a somewhat longer line of cell text")),
	}
	grid := PlaceRows(rows, 2)
	rl := LayoutRows(bb, rows, grid, []dimen.DU{100 * dimen.PT, 100 * dimen.PT})
	require.Len(t, rl.Heights, 1)
	require.Greater(t, rl.Heights[0], dimen.DU(0))
}

func TestLayoutRowsSpanningCellContributesOnlyToFinalRow(t *testing.T) {
	bb := testBlockBuilder()
	spanning := cellWithText("tall")
	spanning.SetProp("number-rows-spanned", "2")
	rows := []*fo.Node{
		rowNode(spanning, cellWithText("x")),
		rowNode(cellWithText("y")),
	}
	grid := PlaceRows(rows, 2)
	rl := LayoutRows(bb, rows, grid, []dimen.DU{100 * dimen.PT, 100 * dimen.PT})
	require.Len(t, rl.Heights, 2)
	total := rl.RowTotal(0, 2)
	spanHeight := rl.Cells[0].Height
	require.GreaterOrEqual(t, total, spanHeight)
}
