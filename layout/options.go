/*
Package layout holds the types shared by every layout stage: the options
struct the embedder configures a run with (spec §6), and the typed error
kinds layout stages report (spec §7). Sub-packages (layout/block,
layout/table, layout/list, layout/page) depend on this package but not on
each other's internals.
*/
package layout

import (
	"fmt"

	"github.com/foliant/xslfo/fo"
)

// LineBreakingAlgo selects the line-breaking strategy (spec §4.3).
type LineBreakingAlgo string

const (
	Greedy  LineBreakingAlgo = "greedy"
	Optimal LineBreakingAlgo = "optimal"
)

// Options bundles every layout option spec §6 enumerates. Construction
// mirrors the teacher's knuthplass.NewKPDefaultParameters: a plain
// constructor returning sane defaults, not a package-level global.
type Options struct {
	LineBreaking             LineBreakingAlgo
	EnableHyphenation        bool
	HyphenationLanguage      string // BCP-47 tag
	HyphenationMinWordLength int
	HyphenationMinLeftChars  int
	HyphenationMinRightChars int
	SubsetFonts              bool
	EnableFontFallback       bool
	TrueTypeFonts            map[string][]byte // family -> font bytes
}

// NewDefaultOptions returns the options a caller gets when not overriding
// anything explicitly.
func NewDefaultOptions() *Options {
	return &Options{
		LineBreaking:             Optimal,
		EnableHyphenation:        false,
		HyphenationLanguage:      "en",
		HyphenationMinWordLength: 5,
		HyphenationMinLeftChars:  2,
		HyphenationMinRightChars: 3,
		SubsetFonts:              true,
		EnableFontFallback:       true,
		TrueTypeFonts:            map[string][]byte{},
	}
}

// ErrorKind enumerates the error taxonomy of spec §7.
type ErrorKind uint8

const (
	InvalidDocument ErrorKind = iota
	InvalidValue
	UnknownReference
	FontUnavailable
	FontMalformed
	LayoutOverflow
	Cancelled
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDocument:
		return "InvalidDocument"
	case InvalidValue:
		return "InvalidValue"
	case UnknownReference:
		return "UnknownReference"
	case FontUnavailable:
		return "FontUnavailable"
	case FontMalformed:
		return "FontMalformed"
	case LayoutOverflow:
		return "LayoutOverflow"
	case Cancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Error is the typed error every layout stage reports fatal conditions with.
// Every fatal error carries a source-location reference into the FO tree
// (spec §7 "Propagation policy").
type Error struct {
	Kind    ErrorKind
	Node    *fo.Node
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	loc := "<unknown location>"
	if e.Node != nil {
		loc = e.Node.Loc.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Kind, loc, e.Message, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, loc, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFatal reports whether an error kind always aborts layout outright, as
// opposed to degrading locally with a warning.
func (k ErrorKind) IsFatal() bool {
	switch k {
	case InvalidDocument, FontUnavailable, Cancelled:
		return true
	}
	return false
}

// Warning is a recoverable defect: the layout continues, but the embedder
// may want to surface it (spec §7: leaf style defaults, UnknownReference in
// page-number-citation, LayoutOverflow, degraded optional font tables).
type Warning struct {
	Kind    ErrorKind
	Node    *fo.Node
	Message string
}

func (w Warning) String() string {
	loc := "<unknown location>"
	if w.Node != nil {
		loc = w.Node.Loc.String()
	}
	return fmt.Sprintf("%s at %s: %s", w.Kind, loc, w.Message)
}

// Diagnostics collects warnings emitted during a layout run without
// aborting it.
type Diagnostics struct {
	Warnings []Warning
}

func (d *Diagnostics) Warn(kind ErrorKind, node *fo.Node, format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, Warning{Kind: kind, Node: node, Message: fmt.Sprintf(format, args...)})
}
