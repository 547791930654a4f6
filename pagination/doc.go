/*
Package pagination is the module's top-level driver (spec §5, §6): it wires
an fo:root *fo.Node, a *fontregistry.Registry and layout.Options into the finished area
tree, resolving layout-master-set once and then laying out every
page-sequence in document order via layout/page.Builder, threading page
numbering across sequences and running the final document-wide
page-number-citation resolution pass.
*/
package pagination

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the pagination package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
