/*
Package fo implements the formatting-object (FO) tree: the polymorphic,
parent-linked tree of XSL-FO nodes produced by an (external) XML parser and
consumed read-only by the layout pipeline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fo

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
