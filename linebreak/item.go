package linebreak

import (
	"fmt"

	"github.com/foliant/xslfo/core/dimen"
)

// ItemKind distinguishes the flavours of Item, mirroring the teacher's
// KnotType (engine/khipu/khipu.go).
type ItemKind int8

const (
	KindBox ItemKind = iota
	KindGlue
	KindPenalty
	KindDiscretionary
)

// Item is a single element of a paragraph's item sequence: a measured
// unit that participates in line-breaking (spec §4.3 "Item sequence").
type Item interface {
	Kind() ItemKind
	W() dimen.DU
	MinW() dimen.DU
	MaxW() dimen.DU
	IsDiscardable() bool
}

// Box is a fixed-width item: shaped text, an inline image, or any other
// non-breakable content.
type Box struct {
	Width    dimen.DU
	Height   dimen.DU
	Depth    dimen.DU
	Position int // rune offset into the originating text
	Text     string
}

func (b Box) Kind() ItemKind      { return KindBox }
func (b Box) W() dimen.DU         { return b.Width }
func (b Box) MinW() dimen.DU      { return b.Width }
func (b Box) MaxW() dimen.DU      { return b.Width }
func (b Box) IsDiscardable() bool { return false }
func (b Box) String() string      { return fmt.Sprintf("«%s»", b.Text) }

// Glue is elastic space: a natural width plus shrink and stretch
// components (spec §4.3 "WSS").
type Glue struct {
	Width, Shrink, Stretch dimen.DU
}

func (g Glue) Kind() ItemKind      { return KindGlue }
func (g Glue) W() dimen.DU         { return g.Width }
func (g Glue) MinW() dimen.DU      { return g.Width - g.Shrink }
func (g Glue) MaxW() dimen.DU      { return g.Width + g.Stretch }
func (g Glue) IsDiscardable() bool { return true }
func (g Glue) String() string      { return fmt.Sprintf("glue(%.2f)", g.Width.Points()) }

// NewGlue constructs a Glue with the given natural width, shrink and
// stretch.
func NewGlue(w, shrink, stretch dimen.DU) Glue {
	return Glue{Width: w, Shrink: shrink, Stretch: stretch}
}

// NewFill returns an infinitely stretchable glue of the given order
// (1 = fil, 2 = fill, 3 = filll, in TeX's terms).
func NewFill(order int) Glue {
	stretch := dimen.Fil
	switch order {
	case 2:
		stretch = dimen.Fill
	case 3:
		stretch = dimen.Filll
	}
	return NewGlue(0, 0, stretch)
}

// Penalty contributes to a breakpoint's demerits; it has zero width and
// never holds content of its own.
type Penalty int32

func (p Penalty) Kind() ItemKind      { return KindPenalty }
func (p Penalty) W() dimen.DU         { return 0 }
func (p Penalty) MinW() dimen.DU      { return 0 }
func (p Penalty) MaxW() dimen.DU      { return 0 }
func (p Penalty) IsDiscardable() bool { return true }
func (p Penalty) String() string      { return fmt.Sprintf("penalty(%d)", int32(p)) }

// Demerits treats the penalty value as a demerits contribution.
func (p Penalty) Demerits() Merits { return Merits(p) }

// Discretionary is a hyphenation opportunity: zero width when the line
// does not break here, Width when it does (the hyphen glyph).
type Discretionary struct {
	HyphenChar rune
	Width      dimen.DU
}

func (d Discretionary) Kind() ItemKind      { return KindDiscretionary }
func (d Discretionary) W() dimen.DU         { return 0 }
func (d Discretionary) MinW() dimen.DU      { return 0 }
func (d Discretionary) MaxW() dimen.DU      { return d.Width }
func (d Discretionary) IsDiscardable() bool { return false }
func (d Discretionary) String() string      { return "­" }

// Sequence is an ordered list of items representing a paragraph's
// content, ready for line-breaking (renamed from the teacher's Khipu).
type Sequence struct {
	items []Item
}

// NewSequence returns an empty item sequence.
func NewSequence() *Sequence {
	return &Sequence{items: make([]Item, 0, 64)}
}

// Append adds an item to the end of the sequence.
func (s *Sequence) Append(it Item) *Sequence {
	s.items = append(s.items, it)
	return s
}

// AppendSequence concatenates another sequence's items onto this one.
func (s *Sequence) AppendSequence(other *Sequence) *Sequence {
	s.items = append(s.items, other.items...)
	return s
}

// Len returns the number of items in the sequence.
func (s *Sequence) Len() int { return len(s.items) }

// At returns the item at index i.
func (s *Sequence) At(i int) Item { return s.items[i] }

// Measure returns the natural, minimum and maximum width of items in
// [from, to).
func (s *Sequence) Measure(from, to int) WSS {
	var wss WSS
	if to > len(s.items) {
		to = len(s.items)
	}
	for i := from; i < to; i++ {
		wss = wss.Add(WSS{}.FromItem(s.items[i]))
	}
	return wss
}

func (s *Sequence) String() string {
	out := "{"
	for i, it := range s.items {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%v", it)
	}
	return out + "}"
}
