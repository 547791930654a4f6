package linebreak

import (
	"fmt"

	"github.com/foliant/xslfo/core/dimen"
)

// Merits is a signed cost/benefit value used for badness and demerits
// (spec §4.3 "Merits").
type Merits int32

// InfinityDemerits is the worst (least desirable) demerits value.
const InfinityDemerits Merits = 10000

// InfinityMerits is the best (most desirable, i.e. "must break here")
// demerits value.
const InfinityMerits Merits = -10000

// CapDemerits clamps a demerits value to the representable range.
func CapDemerits(d Merits) Merits {
	if d > InfinityDemerits {
		return InfinityDemerits
	}
	if d < InfinityMerits-1000 {
		return InfinityMerits - 1000
	}
	return d
}

// WSS (width, stretch, shrink) holds an elastic measurement of a run of
// items: its natural width plus the range it can occupy.
type WSS struct {
	W   dimen.DU
	Min dimen.DU
	Max dimen.DU
}

// FromItem sets a WSS's fields from a single item's measurements.
func (wss WSS) FromItem(it Item) WSS {
	if it == nil {
		return wss
	}
	wss.W = it.W()
	wss.Min = it.MinW()
	wss.Max = it.MaxW()
	return wss
}

// Add returns the sum of two WSS values.
func (wss WSS) Add(other WSS) WSS {
	return WSS{W: wss.W + other.W, Min: wss.Min + other.Min, Max: wss.Max + other.Max}
}

// Subtract returns the difference of two WSS values.
func (wss WSS) Subtract(other WSS) WSS {
	return WSS{W: wss.W - other.W, Min: wss.Min - other.Min, Max: wss.Max - other.Max}
}

func (wss WSS) String() string {
	return fmt.Sprintf("{%.2f < %.2f < %.2f}", wss.Min.Points(), wss.W.Points(), wss.Max.Points())
}

// Parameters configures a line-breaking run: tolerances, per-line and
// per-hyphen penalties, and the elastic glue bracketing each paragraph.
type Parameters struct {
	Tolerance            Merits
	LinePenalty          Merits
	HyphenPenalty        Merits
	DoubleHyphenDemerits Merits
	FinalHyphenDemerits  Merits
	FitnessDemerits      Merits // added when adjacent lines' fitness classes differ by more than one band
	EmergencyStretch     dimen.DU
	LeftSkip             Glue
	RightSkip            Glue
	ParFillSkip          Glue

	MinHyphenWordLength int // words shorter than this are never hyphenated
	MinCharsBeforeBreak int // minimum characters before a hyphen break
	MinCharsAfterBreak  int // minimum characters after a hyphen break
}

// DefaultParameters are tolerant line-breaking parameters suitable for
// most XSL-FO content (spec §4.3 "Parameters").
var DefaultParameters = &Parameters{
	Tolerance:            5000,
	LinePenalty:          10,
	HyphenPenalty:        50,
	DoubleHyphenDemerits: 0,
	FinalHyphenDemerits:  50,
	FitnessDemerits:      100,
	EmergencyStretch:     dimen.DU(dimen.BP * 50),
	LeftSkip:             NewGlue(0, 0, 0),
	RightSkip:            NewGlue(0, 0, 0),
	ParFillSkip:          NewGlue(0, 0, dimen.Fil),
	MinHyphenWordLength:  5,
	MinCharsBeforeBreak:  2,
	MinCharsAfterBreak:   3,
}

// ParShape returns the available line length for a given (zero-based)
// line number, allowing indent-first-line and shaped paragraphs.
type ParShape interface {
	LineLength(line int) dimen.DU
}

type rectParShape dimen.DU

func (r rectParShape) LineLength(int) dimen.DU { return dimen.DU(r) }

// RectangularParShape returns a ParShape of constant line length.
func RectangularParShape(width dimen.DU) ParShape {
	return rectParShape(width)
}
