/*
Package area implements the area tree: the sole handoff between the layout
engine and a PDF serializer (spec §4.7). An area tree is a tree of
positioned rectangles with optional paint attributes, built bottom-up by
layout/block, layout/table, layout/list and layout/page and owned by its
builder until returned — never mutated thereafter (spec §5 "Shared state").

The tree shape is PageArea -> RegionArea -> BlockArea -> LineArea ->
InlineArea | GlyphRunArea | ImageArea | RuleArea. This mirrors the geometry
fields of the teacher's engine/frame.Box (Rect, Size, Padding, BorderWidth,
Margins) but restructures them from a single mutable layout box into a
read-only, finished output tree: by the time a node becomes part of an area
tree its position is fixed, so there is no ContentWidth/FixContentWidth
resolution machinery left to carry over, only the settled numbers.
*/
package area

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the area package, following the
// teacher's per-package T() convention.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
