package table

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/stretchr/testify/require"
)

func TestResolveColumnWidthsFixedThenProportional(t *testing.T) {
	cols := []ColumnSpec{
		{Kind: ColumnFixed, Fixed: 100 * dimen.PT},
		{Kind: ColumnProportional, Factor: 1},
		{Kind: ColumnProportional, Factor: 3},
	}
	widths := ResolveColumnWidths(cols, make([]dimen.DU, 3), 500*dimen.PT)
	require.Equal(t, 100*dimen.PT, widths[0])
	require.InDelta(t, 100, widths[1].Points(), 1)
	require.InDelta(t, 300, widths[2].Points(), 1)
}

func TestResolveColumnWidthsAutoProportionsByMeasurement(t *testing.T) {
	cols := []ColumnSpec{
		{Kind: ColumnAuto},
		{Kind: ColumnAuto},
	}
	autoMeasure := []dimen.DU{10 * dimen.PT, 30 * dimen.PT}
	widths := ResolveColumnWidths(cols, autoMeasure, 400*dimen.PT)
	require.InDelta(t, 100, widths[0].Points(), 1)
	require.InDelta(t, 300, widths[1].Points(), 1)
}

func TestResolveColumnWidthsShrinksWhenFixedExceedsAvailable(t *testing.T) {
	cols := []ColumnSpec{
		{Kind: ColumnFixed, Fixed: 600 * dimen.PT},
		{Kind: ColumnAuto},
	}
	widths := ResolveColumnWidths(cols, []dimen.DU{50 * dimen.PT, 0}, 400*dimen.PT)
	require.Equal(t, 600*dimen.PT, widths[0])
	require.Equal(t, dimen.DU(0), widths[1])
}

func TestParseColumnWidthProportional(t *testing.T) {
	spec := parseColumnWidth("proportional-column-width(2)", nil, nil, 0)
	require.Equal(t, ColumnProportional, spec.Kind)
	require.Equal(t, 2.0, spec.Factor)
}

func TestParseColumnWidthAuto(t *testing.T) {
	spec := parseColumnWidth("auto", nil, nil, 0)
	require.Equal(t, ColumnAuto, spec.Kind)
}
