/*
Package table lays out `table`/`table-column`/`table-header`/
`table-footer`/`table-body`/`table-row`/`table-cell` content (spec §4.5):
it resolves column widths from the three declared kinds, places cells into
a row/column occupancy grid honoring spans, computes row heights, and
paginates a table body's rows with header/footer repetition at each break.
*/
package table

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the table layout package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
