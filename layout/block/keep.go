package block

import (
	"strconv"

	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/props"
)

// KeepConstraint is a parsed `keep-together`/`keep-with-next`/
// `keep-with-previous` value: either absent, an integer strength, or the
// unconditional `always`.
type KeepConstraint struct {
	Set     bool
	Always  bool
	Strength int
}

// Stronger reports whether a wins a tie against b, resolving the Open
// Question recorded in DESIGN.md: higher strength wins; on an exact tie,
// the earlier-declared constraint (a) wins.
func (a KeepConstraint) Stronger(b KeepConstraint) bool {
	if a.Always != b.Always {
		return a.Always
	}
	return a.Strength >= b.Strength
}

// EffectiveJoin merges a node's keep-with-next constraint with its
// successor's keep-with-previous constraint into the single constraint
// governing whether a break may fall between them (spec §4.6:
// keep-with-previous is symmetric to keep-with-next). The stronger of the
// two requests wins, resolving ties in favor of the earlier-declared one
// (the keep-with-next side) per the Open Question recorded in DESIGN.md;
// a keep-with-previous declared only on the successor still keeps the pair
// together even when the predecessor itself carries no keep-with-next.
func EffectiveJoin(withNext, withPrevious KeepConstraint) KeepConstraint {
	if !withNext.Set {
		return withPrevious
	}
	if !withPrevious.Set {
		return withNext
	}
	if withNext.Stronger(withPrevious) {
		return withNext
	}
	return withPrevious
}

func parseKeep(raw string) KeepConstraint {
	switch raw {
	case "", "auto":
		return KeepConstraint{}
	case "always":
		return KeepConstraint{Set: true, Always: true}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return KeepConstraint{Set: true, Strength: n}
	}
	return KeepConstraint{}
}

// KeepTogether returns n's `keep-together` constraint.
func KeepTogether(r *props.Resolver, n *fo.Node) KeepConstraint {
	return parseKeep(r.Computed(n, "keep-together"))
}

// KeepWithNext returns n's `keep-with-next` constraint.
func KeepWithNext(r *props.Resolver, n *fo.Node) KeepConstraint {
	return parseKeep(r.Computed(n, "keep-with-next"))
}

// KeepWithPrevious returns n's `keep-with-previous` constraint.
func KeepWithPrevious(r *props.Resolver, n *fo.Node) KeepConstraint {
	return parseKeep(r.Computed(n, "keep-with-previous"))
}

// BreakBefore returns n's `break-before` value: "", "page" or "column".
func BreakBefore(r *props.Resolver, n *fo.Node) string {
	v := r.Computed(n, "break-before")
	if v == "auto" {
		return ""
	}
	return v
}

// BreakAfter returns n's `break-after` value: "", "page" or "column".
func BreakAfter(r *props.Resolver, n *fo.Node) string {
	v := r.Computed(n, "break-after")
	if v == "auto" {
		return ""
	}
	return v
}
