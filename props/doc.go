/*
Package props computes XSL-FO property values on formatting-object nodes:
inheritance, shorthand expansion, directional-to-absolute mapping, and
length/percentage resolution (spec §4.1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package props

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
