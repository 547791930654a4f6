/*
Package linebreak implements paragraph line-breaking (spec §4.3): an item
sequence of boxes, glue, penalties and discretionaries; a greedy breaker;
an optimal Knuth-Plass-style breaker; hyphenation; and emergency
intra-word breaking when no feasible breakpoint exists.

Grounded on the teacher's engine/frame/khipu package and its linebreak
sub-package, re-expressed under plain English names (Item/Box/Glue/
Penalty/Discretionary/Sequence) rather than the teacher's Quechua-themed
khipu/knot terminology.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
