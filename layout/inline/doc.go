/*
Package inline builds the inline item sequence that feeds package
linebreak: it descends through `inline`, `basic-link`, `wrapper`,
`bidi-override`, `leader`, `character`, `page-number`,
`page-number-citation`, `external-graphic` and `instream-foreign-object`,
splicing their text content and child items into one linebreak.Sequence
(spec §4.4 "Inline sequence construction"). Leader expansion to its final
width happens once the line breaker has fixed each line's length (spec
§4.4: "Leaders expand at justification time").
*/
package inline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the default tracer for the inline layout package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
