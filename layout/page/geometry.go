package page

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/props"
)

// PageGeometry is a simple-page-master's resolved page box plus every
// region it defines, keyed by region reference ("body", "before", "after",
// "start", "end").
type PageGeometry struct {
	Width, Height dimen.DU
	Regions       map[string]RegionGeometry
}

// RegionGeometry is one region's resolved content rectangle (already inset
// by the region's own margin/extent) plus the properties the builder needs
// while filling it.
type RegionGeometry struct {
	Node      *fo.Node
	Rect      area.Rect
	Columns   int
	ColumnGap dimen.DU
}

// ResolveGeometry computes a PageGeometry from a simple-page-master node
// (spec §4.6 "Page geometry"): the master's page-width/page-height size
// the page canvas; region-before/-after reserve extent off the top/bottom
// of the page; region-body fills what remains, inset by its own margin.
// region-start/-end get an empty rectangle: their extent is not subtracted
// from the body and nothing is laid into them.
func ResolveGeometry(r *props.Resolver, master *fo.Node) PageGeometry {
	width, _ := r.Length(master, "page-width", 0, dimen.DU(8.5*float64(dimen.IN)))
	height, _ := r.Length(master, "page-height", 0, 11*dimen.IN)
	g := PageGeometry{Width: width, Height: height, Regions: make(map[string]RegionGeometry)}

	var beforeExtent, afterExtent dimen.DU
	var before, after, body, start, end *fo.Node
	for _, c := range master.Children {
		switch c.Kind {
		case fo.KindRegionBefore:
			before = c
			beforeExtent, _ = r.Length(c, "extent", height, 0)
		case fo.KindRegionAfter:
			after = c
			afterExtent, _ = r.Length(c, "extent", height, 0)
		case fo.KindRegionBody:
			body = c
		case fo.KindRegionStart:
			start = c
		case fo.KindRegionEnd:
			end = c
		}
	}

	if before != nil {
		g.Regions["before"] = RegionGeometry{
			Node: before,
			Rect: area.Rect{Origin: dimen.Point{X: 0, Y: 0}, Size: area.Size{W: width, H: beforeExtent}},
		}
	}
	if after != nil {
		g.Regions["after"] = RegionGeometry{
			Node: after,
			Rect: area.Rect{Origin: dimen.Point{X: 0, Y: height - afterExtent}, Size: area.Size{W: width, H: afterExtent}},
		}
	}
	if body != nil {
		margins := r.FourEdges(body, "margin", width)
		bodyRect := area.Rect{
			Origin: dimen.Point{X: margins[area.Left], Y: beforeExtent + margins[area.Top]},
			Size: area.Size{
				W: width - margins[area.Left] - margins[area.Right],
				H: height - beforeExtent - afterExtent - margins[area.Top] - margins[area.Bottom],
			},
		}
		cols := intProp(r, body, "column-count", 1)
		gap, _ := r.Length(body, "column-gap", 0, 12*dimen.PT)
		g.Regions["body"] = RegionGeometry{Node: body, Rect: bodyRect, Columns: cols, ColumnGap: gap}
	}
	if start != nil {
		g.Regions["start"] = RegionGeometry{Node: start}
	}
	if end != nil {
		g.Regions["end"] = RegionGeometry{Node: end}
	}
	return g
}

func intProp(r *props.Resolver, n *fo.Node, name string, fallback int) int {
	raw := r.Computed(n, name)
	v := 0
	matched := false
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			matched = false
			break
		}
		matched = true
		v = v*10 + int(ch-'0')
	}
	if !matched || raw == "" {
		return fallback
	}
	return v
}

// ColumnRects splits a region's content rect into its column-count equal
// sub-rectangles, separated by column-gap (spec §4.6 "Multi-column
// regions").
func (g RegionGeometry) ColumnRects() []area.Rect {
	n := g.Columns
	if n < 1 {
		n = 1
	}
	if n == 1 {
		return []area.Rect{g.Rect}
	}
	totalGap := g.ColumnGap * dimen.DU(n-1)
	colWidth := (g.Rect.Size.W - totalGap) / dimen.DU(n)
	out := make([]area.Rect, n)
	x := g.Rect.Origin.X
	for i := 0; i < n; i++ {
		out[i] = area.Rect{Origin: dimen.Point{X: x, Y: g.Rect.Origin.Y}, Size: area.Size{W: colWidth, H: g.Rect.Size.H}}
		x += colWidth + g.ColumnGap
	}
	return out
}
