package page

import "github.com/foliant/xslfo/fo"

// markerInstance is one `marker` encountered while laying out the body flow,
// recorded in document order so `retrieve-marker` can find it afterwards
// (spec §4.6: "Static content is laid out after the body so retrieve-marker
// can see the set of markers that started/ended on the just-finished page").
type markerInstance struct {
	class      string
	node       *fo.Node
	pageNumber int
	seqIndex   int // which page-sequence this marker belongs to
}

// MarkerRegistry accumulates every marker seen across a document, grouped
// by class-name, so static content (headers/footers) built after the body
// can resolve retrieve-marker/retrieve-position/retrieve-boundary.
type MarkerRegistry struct {
	byClass map[string][]markerInstance
}

// NewMarkerRegistry returns an empty registry.
func NewMarkerRegistry() *MarkerRegistry {
	return &MarkerRegistry{byClass: make(map[string][]markerInstance)}
}

// Record registers one marker instance. Callers walk the body flow in
// document order and call Record for every `marker` node encountered.
func (r *MarkerRegistry) Record(class string, node *fo.Node, pageNumber, seqIndex int) {
	r.byClass[class] = append(r.byClass[class], markerInstance{class, node, pageNumber, seqIndex})
}

// Retrieve resolves a retrieve-marker (spec §4.6): position is one of
// first-starting-within-page, first-including-carryover,
// last-starting-within-page, last-ending-within-page; boundary is one of
// page, page-sequence, document.
func (r *MarkerRegistry) Retrieve(class, position, boundary string, pageNumber, seqIndex int) *fo.Node {
	all := r.byClass[class]
	var scoped []markerInstance
	for _, m := range all {
		switch boundary {
		case "page-sequence":
			if m.seqIndex != seqIndex {
				continue
			}
		case "document":
			// no filter
		default: // "page"
			if m.pageNumber != pageNumber {
				continue
			}
		}
		scoped = append(scoped, m)
	}

	switch position {
	case "first-starting-within-page":
		for _, m := range scoped {
			if m.pageNumber == pageNumber {
				return m.node
			}
		}
	case "last-starting-within-page":
		var found *fo.Node
		for _, m := range scoped {
			if m.pageNumber == pageNumber {
				found = m.node
			}
		}
		return found
	case "last-ending-within-page":
		var found *fo.Node
		for _, m := range scoped {
			if m.pageNumber <= pageNumber {
				found = m.node
			}
		}
		return found
	case "first-including-carryover":
		for _, m := range scoped {
			if m.pageNumber == pageNumber {
				return m.node
			}
		}
		var found *fo.Node
		for _, m := range scoped {
			if m.pageNumber < pageNumber {
				found = m.node
			}
		}
		return found
	}
	return nil
}
