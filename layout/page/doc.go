/*
Package page is the page builder (spec §4.6): it consumes the ordered block
sequence of a `flow` and emits pages, running a small state machine per
region (Empty → FillingColumn(i) → ColumnFull(i) → NextPage), enforcing
keep/break constraints, reserving space for pending footnote bodies,
resolving `retrieve-marker` against static content placed after the body,
and two-pass resolving `page-number-citation`. A sequence's page master,
conditional or not, is selected once, for its first page, and governs
every content page of the sequence.
*/
package page

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the page-builder package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
