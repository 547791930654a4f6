/*
Package fontregistry caches resolved font files and shaped-instance
state by family name and size, adapted from the teacher's core/font.Registry
(same sync.Once global singleton, same Mutex-guarded maps, same
Normalize-name-then-lookup shape) but built on top of this module's own
font.Resolver and font.File rather than golang.org/x/image/font/opentype
typecases.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontregistry

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
