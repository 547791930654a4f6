package table

import (
	"strconv"
	"strings"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/props"
)

// ColumnKind distinguishes the three declared `column-width` forms (spec
// §4.5 "Column widths").
type ColumnKind uint8

const (
	ColumnAuto ColumnKind = iota
	ColumnFixed
	ColumnProportional
)

// ColumnSpec is a resolved `table-column`'s declared width, before the
// available-width distribution pass.
type ColumnSpec struct {
	Kind   ColumnKind
	Fixed  dimen.DU // meaningful when Kind == ColumnFixed
	Factor float64  // proportional-column-width(N); meaningful when Kind == ColumnProportional
}

// parseColumnWidth reads a `column-width` value: a length, "auto", or
// "proportional-column-width(N)".
func parseColumnWidth(raw string, r *props.Resolver, n *fo.Node, containing dimen.DU) ColumnSpec {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "auto" {
		return ColumnSpec{Kind: ColumnAuto}
	}
	if strings.HasPrefix(raw, "proportional-column-width(") && strings.HasSuffix(raw, ")") {
		inner := raw[len("proportional-column-width(") : len(raw)-1]
		f, err := strconv.ParseFloat(strings.TrimSpace(inner), 64)
		if err != nil || f <= 0 {
			f = 1
		}
		return ColumnSpec{Kind: ColumnProportional, Factor: f}
	}
	d, _ := r.Length(n, "column-width", containing, 0)
	return ColumnSpec{Kind: ColumnFixed, Fixed: d}
}

// ResolveColumnWidths distributes `available` width across columns per spec
// §4.5: fixed widths first, then proportional factors share what's left,
// then auto columns share what's left again in proportion to each auto
// column's widest unbreakable content (`autoMeasure`, one entry per column,
// meaningless for non-auto columns; equal shares when every measure is 0).
// Fixed widths are never shrunk: when they alone exceed `available`,
// proportional and auto columns get 0 and the total exceeds `available`.
func ResolveColumnWidths(cols []ColumnSpec, autoMeasure []dimen.DU, available dimen.DU) []dimen.DU {
	widths := make([]dimen.DU, len(cols))
	var fixedTotal dimen.DU
	var proportionalTotal float64
	var autoMeasureTotal dimen.DU

	for i, c := range cols {
		switch c.Kind {
		case ColumnFixed:
			widths[i] = c.Fixed
			fixedTotal += c.Fixed
		case ColumnProportional:
			proportionalTotal += c.Factor
		case ColumnAuto:
			autoMeasureTotal += autoMeasure[i]
		}
	}

	remaining := available - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	var proportionalTotalWidth dimen.DU
	if proportionalTotal > 0 {
		for i, c := range cols {
			if c.Kind != ColumnProportional {
				continue
			}
			share := dimen.DU(float64(remaining) * c.Factor / proportionalTotal)
			widths[i] = share
			proportionalTotalWidth += share
		}
	}

	autoRemaining := remaining - proportionalTotalWidth
	if autoRemaining < 0 {
		autoRemaining = 0
	}

	if autoMeasureTotal > 0 {
		for i, c := range cols {
			if c.Kind != ColumnAuto {
				continue
			}
			widths[i] = autoRemaining * autoMeasure[i] / autoMeasureTotal
		}
	} else {
		autoCount := 0
		for _, c := range cols {
			if c.Kind == ColumnAuto {
				autoCount++
			}
		}
		if autoCount > 0 {
			each := autoRemaining / dimen.DU(autoCount)
			for i, c := range cols {
				if c.Kind == ColumnAuto {
					widths[i] = each
				}
			}
		}
	}

	return widths
}
