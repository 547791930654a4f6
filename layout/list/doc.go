/*
Package list lays out `list-block`/`list-item`/`list-item-label`/
`list-item-body` content: a list-block is a sequence of list-items, each a
two-column pair of a label and a body sharing a common top edge. Unlike a
table row (layout/table), a list-item is an ordinary block container and
may split across a page break.
*/
package list

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the list layout package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
