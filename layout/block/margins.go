package block

import "github.com/foliant/xslfo/core/dimen"

// Conditionality is the `space-before`/`space-after` conditionality
// sub-property: whether the space survives at a region edge.
type Conditionality uint8

const (
	Retain Conditionality = iota
	Discard
)

// Space is a resolved `space-before`/`space-after`/`space-between`
// specifier: a length, a precedence (XSL-FO allows an integer or the
// keyword "force", modeled here as a very large int), and a
// conditionality.
type Space struct {
	Length         dimen.DU
	Precedence     int
	Conditionality Conditionality
}

// ForcePrecedence is the precedence value "force" resolves to: it always
// wins over any finite integer precedence.
const ForcePrecedence = 1<<31 - 1

// CollapseAdjoining combines the space-after of one block with the
// space-before of its following sibling into the single space actually
// used between them, following XSL-FO's adjoining-space resolution rule:
// the higher-precedence space wins; on a precedence tie, the larger
// length wins (grounded on the teacher's engine/frame.CollapseMargins,
// which picks the greater of two adjoining margins, generalized here to
// also account for precedence).
func CollapseAdjoining(after, before *Space) dimen.DU {
	switch {
	case after == nil && before == nil:
		return 0
	case after == nil:
		return before.Length
	case before == nil:
		return after.Length
	}
	if after.Precedence != before.Precedence {
		if after.Precedence > before.Precedence {
			return after.Length
		}
		return before.Length
	}
	return dimen.Max(after.Length, before.Length)
}

// AtRegionEdge resolves a single space at the start or end of a region:
// `discard` conditionality drops it to zero (spec §4.4, item 1: "space-
// before/space-after participate as resolution candidates with
// conditionality discard at region edges").
func AtRegionEdge(s *Space) dimen.DU {
	if s == nil || s.Conditionality == Discard {
		return 0
	}
	return s.Length
}
