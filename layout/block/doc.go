/*
Package block lays out `block`, `block-container` and the bodies of
`list-item`/`table-cell` into a vertical stack of area.BlockArea /
area.LineArea values (spec §4.4). It owns margin collapsing (with
`discard` conditionality at region edges) and the inline-sequence
construction/splicing that feeds the line breaker, grounded on the
teacher's engine/frame.Box geometry and engine/frame.CollapseMargins.
*/
package block

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the block layout package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
