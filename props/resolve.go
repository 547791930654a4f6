package props

import (
	"strings"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
)

// Resolver computes property values on FO nodes, following the computed-
// value contract of spec §4.1. It keeps a per-node cache of every value it
// computes; entries are never evicted, so the cache grows with the number of
// distinct (node, property) lookups. The cache is not safe for concurrent
// use (spec §5 "Shared state": "not shared across threads"), so each
// goroutine laying out an independent page sequence should use its own
// Resolver.
type Resolver struct {
	cache map[*fo.Node]map[string]string
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[*fo.Node]map[string]string)}
}

// Computed returns the computed (string) value of a property on n: first the
// node's own bag, then (if inheritable) the nearest ancestor's value, then
// the property's defined default.
func (r *Resolver) Computed(n *fo.Node, name string) string {
	if n == nil {
		return DefaultFor(name)
	}
	if cached, ok := r.cache[n]; ok {
		if v, ok := cached[name]; ok {
			return v
		}
	}
	v := r.computeUncached(n, name)
	bucket := r.cache[n]
	if bucket == nil {
		bucket = make(map[string]string)
		r.cache[n] = bucket
	}
	bucket[name] = v
	return v
}

func (r *Resolver) computeUncached(n *fo.Node, name string) string {
	if v, ok := n.Prop(name); ok {
		return v
	}
	if IsInheritable(name) {
		for p := n.Parent; p != nil; p = p.Parent {
			if v, ok := p.Prop(name); ok {
				return v
			}
		}
	}
	return DefaultFor(name)
}

// WritingMode returns the computed writing-mode of n.
func (r *Resolver) WritingMode(n *fo.Node) WritingMode {
	return WritingMode(r.Computed(n, "writing-mode"))
}

// Absolute resolves an absolute-direction property (e.g. "padding-top" or
// "top"). It follows spec §4.1's lookup order: the absolute key itself, then
// the key with its edge segment replaced by the relative edge mapped under
// the current writing-mode (so "padding-right" finds "padding-before" under
// tb-rl), then alternate relative keys mapping to the same absolute edge,
// then generic shorthand residue, then (for inheritable properties) the
// nearest ancestor's value, then default.
func (r *Resolver) Absolute(n *fo.Node, absolute string) string {
	if v, ok := n.Prop(absolute); ok {
		return v
	}
	mode := r.WritingMode(n)
	parts := strings.Split(absolute, "-")
	for i, p := range parts {
		rels := RelativeEdgesFor(mode, p)
		if len(rels) == 0 {
			continue
		}
		for _, rel := range rels {
			parts[i] = rel
			if v, ok := n.Prop(strings.Join(parts, "-")); ok {
				return v
			}
		}
		break
	}
	if v, ok := n.Prop(shorthandResidueKey(absolute)); ok {
		return v
	}
	if IsInheritable(absolute) {
		for p := n.Parent; p != nil; p = p.Parent {
			if v, ok := p.Prop(absolute); ok {
				return v
			}
		}
	}
	return DefaultFor(absolute)
}

// shorthandResidueKey maps an absolute edge-suffixed property name (e.g.
// "margin-top") to the bare shorthand name ("margin"), used as a last
// lookup before falling back to the default.
func shorthandResidueKey(absolute string) string {
	for _, suffix := range fourEdges {
		if strings.HasSuffix(absolute, "-"+suffix) {
			return strings.TrimSuffix(absolute, "-"+suffix)
		}
	}
	return absolute
}

// Length resolves a length-valued property to an absolute dimension, given
// the node's computed font-size (for `em`) and a containing dimension (for
// `%`). Unparsable values report InvalidValue via the returned ok=false and
// leave fallback in the result -- callers decide whether that is fatal
// (spec §7: "leaf style properties substitute default and emit a warning").
func (r *Resolver) Length(n *fo.Node, name string, containing dimen.DU, fallback dimen.DU) (dimen.DU, bool) {
	raw := r.Computed(n, name)
	l, err := ParseLength(raw)
	if err != nil {
		return fallback, false
	}
	if l.IsAuto() {
		return fallback, true
	}
	fontSize := r.FontSize(n)
	return l.Resolve(fontSize, containing, fallback), true
}

// FontSize resolves the node's computed font-size to an absolute dimension,
// resolving `em` recursively against the parent's font-size as spec §4.1
// requires ("em resolves against the node's current font-size ... which
// itself resolves up the chain").
func (r *Resolver) FontSize(n *fo.Node) dimen.DU {
	raw := r.Computed(n, "font-size")
	l, err := ParseLength(raw)
	if err != nil || l.IsAuto() {
		return 12 * dimen.PT
	}
	if l.Kind == LengthEm {
		var parentSize dimen.DU
		if n.Parent != nil {
			parentSize = r.FontSize(n.Parent)
		} else {
			parentSize = 12 * dimen.PT
		}
		return dimen.DU(l.Value * float64(parentSize))
	}
	if l.Kind == LengthAbsolute {
		return l.Du
	}
	return 12 * dimen.PT
}

// FourEdges resolves a padding/margin/border-width style property across
// all four absolute edges in top,right,bottom,left order.
func (r *Resolver) FourEdges(n *fo.Node, prefix string, containing dimen.DU) [4]dimen.DU {
	var out [4]dimen.DU
	for i, edge := range fourEdges {
		d, _ := r.Length(n, prefix+"-"+edge, containing, 0)
		out[i] = d
	}
	return out
}
