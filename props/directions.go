package props

// WritingMode is one of the four XSL-FO writing modes (spec §3, §4.1).
type WritingMode string

const (
	LrTb WritingMode = "lr-tb"
	RlTb WritingMode = "rl-tb"
	TbRl WritingMode = "tb-rl"
	TbLr WritingMode = "tb-lr"
)

// edge names directional properties map to/from.
const (
	EdgeTop    = "top"
	EdgeRight  = "right"
	EdgeBottom = "bottom"
	EdgeLeft   = "left"

	EdgeBefore = "before"
	EdgeAfter  = "after"
	EdgeStart  = "start"
	EdgeEnd    = "end"
)

// directionalMap gives, for each writing-mode, the mapping from relative
// edge name to absolute edge name (spec §4.1 "Directional mapping").
var directionalMap = map[WritingMode]map[string]string{
	LrTb: {EdgeBefore: EdgeTop, EdgeAfter: EdgeBottom, EdgeStart: EdgeLeft, EdgeEnd: EdgeRight},
	RlTb: {EdgeBefore: EdgeTop, EdgeAfter: EdgeBottom, EdgeStart: EdgeRight, EdgeEnd: EdgeLeft},
	TbRl: {EdgeBefore: EdgeRight, EdgeAfter: EdgeLeft, EdgeStart: EdgeTop, EdgeEnd: EdgeBottom},
	TbLr: {EdgeBefore: EdgeLeft, EdgeAfter: EdgeRight, EdgeStart: EdgeTop, EdgeEnd: EdgeBottom},
}

// AbsoluteEdge maps a relative edge name to its absolute counterpart under
// the given writing-mode. Unknown relative names (or already-absolute
// names) pass through unchanged.
func AbsoluteEdge(mode WritingMode, relative string) string {
	m, ok := directionalMap[mode]
	if !ok {
		m = directionalMap[LrTb]
	}
	if abs, ok := m[relative]; ok {
		return abs
	}
	switch relative {
	case EdgeTop, EdgeRight, EdgeBottom, EdgeLeft:
		return relative
	}
	return relative
}

// RelativeEdgesFor returns, for a given writing-mode and absolute edge, every
// relative edge name that maps onto it. Used by the resolver when an
// absolute property is requested but only a relative one was set (spec
// §4.1: "the resolver first checks the absolute key, then the relative key
// mapped under the current writing-mode, then alternate relative keys that
// map to the same absolute under the current mode").
func RelativeEdgesFor(mode WritingMode, absolute string) []string {
	m, ok := directionalMap[mode]
	if !ok {
		m = directionalMap[LrTb]
	}
	var rel []string
	for r, a := range m {
		if a == absolute {
			rel = append(rel, r)
		}
	}
	return rel
}

// fourEdges lists the canonical edge-suffix order used when expanding
// shorthands: top, right, bottom, left (clockwise from top), matching the
// teacher's frame.Box edge-index convention (engine/frame/box.go).
var fourEdges = [4]string{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}
