package page

import "github.com/foliant/xslfo/fo"

// ForcePageCount is the `force-page-count` value controlling whether a
// blank trailing page is inserted at the end of a page-sequence.
type ForcePageCount string

const (
	ForceAuto       ForcePageCount = "auto"
	ForceEven       ForcePageCount = "even"
	ForceOdd        ForcePageCount = "odd"
	ForceEndOnEven  ForcePageCount = "end-on-even"
	ForceEndOnOdd   ForcePageCount = "end-on-odd"
	ForceNoForce    ForcePageCount = "no-force"
)

// SelectMaster picks the simple-page-master in effect for page number
// pageNum (1-based) out of a page-sequence-master's
// repeatable-page-master-alternatives: the first
// conditional-page-master-reference whose page-position/odd-or-even/
// blank-or-not-blank clauses all match (spec §4.6 "Conditional page
// masters"), resolved against a lookup of master-name -> simple-page-master
// node. A page-sequence with a single simple-page-master (no
// page-sequence-master indirection) is passed straight through.
func SelectMaster(seqMaster *fo.Node, mastersByName map[string]*fo.Node, pageNum, totalPages int, isBlank bool) *fo.Node {
	if seqMaster == nil {
		return nil
	}
	if seqMaster.Kind == fo.KindSimplePageMaster {
		return seqMaster
	}
	for _, alt := range seqMaster.Children {
		switch alt.Kind {
		case fo.KindSinglePageMasterReference:
			name, _ := alt.Prop("master-reference")
			if m, ok := mastersByName[name]; ok {
				return m
			}
		case fo.KindRepeatablePageMasterAlternatives:
			for _, cond := range alt.Children {
				if cond.Kind != fo.KindConditionalPageMasterReference {
					continue
				}
				if !matchesConditions(cond, pageNum, totalPages, isBlank) {
					continue
				}
				name, _ := cond.Prop("master-reference")
				if m, ok := mastersByName[name]; ok {
					return m
				}
			}
		}
	}
	return nil
}

func matchesConditions(cond *fo.Node, pageNum, totalPages int, isBlank bool) bool {
	if pos, ok := cond.Prop("page-position"); ok && pos != "any" {
		isFirst := pageNum == 1
		isLast := pageNum == totalPages
		switch pos {
		case "first":
			if !isFirst {
				return false
			}
		case "last":
			if !isLast {
				return false
			}
		case "rest":
			if isFirst || isLast {
				return false
			}
		}
	}
	if oe, ok := cond.Prop("odd-or-even"); ok && oe != "any" {
		odd := pageNum%2 == 1
		if oe == "odd" && !odd {
			return false
		}
		if oe == "even" && odd {
			return false
		}
	}
	if bb, ok := cond.Prop("blank-or-not-blank"); ok && bb != "any" {
		if bb == "blank" && !isBlank {
			return false
		}
		if bb == "not-blank" && isBlank {
			return false
		}
	}
	return true
}

// NeedsBlankTrailer reports whether force-page-count requires one more
// blank page be appended after the last content page (spec §4.6
// "force-page-count may cause insertion of a blank trailing page").
func NeedsBlankTrailer(force ForcePageCount, pagesSoFar int) bool {
	switch force {
	case ForceEven, ForceEndOnEven:
		return pagesSoFar%2 == 1
	case ForceOdd, ForceEndOnOdd:
		return pagesSoFar%2 == 0
	}
	return false
}
