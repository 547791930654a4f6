/*
Package font implements the font engine (spec §4.2): parsing TrueType/
OpenType tables (cmap, hmtx, kern, GSUB, glyf/loca), glyph-width
measurement, kerning-pair application, shaping and subsetting.

Baseline glyph-index and advance-width lookups are delegated to
golang.org/x/image/font/sfnt, exactly as the teacher's core/font/font.go
does. sfnt does not expose kerning or GSUB, so this package parses those
tables itself directly off the raw font bytes, in the teacher's own
byte-level style (core/font/opentype/ot/bytes.go), using encoding/binary
rather than a third-party binary-font library -- table parsing is
low-level-binary work the teacher itself hand-rolls rather than delegating.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
