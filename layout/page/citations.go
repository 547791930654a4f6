package page

import (
	"strconv"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/inline"
)

// recordIDs walks n's subtree recording every node's `id` property against
// pageNum, the first time that node's containing flow item is placed (spec
// §4.6: "any formatting object may carry an id"). A node that starts on one
// page and fragments onto the next is recorded against the page it started
// on, not every page it spans.
func recordIDs(n *fo.Node, pageNum int, ids IDRegistry) {
	if n == nil || ids == nil {
		return
	}
	if id, ok := n.Prop("id"); ok && id != "" {
		ids[id] = pageNum
	}
	for _, c := range n.Children {
		recordIDs(c, pageNum, ids)
	}
}

// IDRegistry maps an fo:node's `id` property to the page number the body
// flow placed it on, recorded while the main builder walks the flow
// (spec §4.6: "any formatting object may carry an id, referenced by a
// later page-number-citation's ref-id").
type IDRegistry map[string]int

// ResolveCitations is pagination's second pass (spec §4.6 "Page-number
// citation is a two-pass affair"): every GlyphRunArea built from a
// PagePlaceholder carries that placeholder's ID as RefID, and its Text
// still holds the "??" estimate from the first pass. This walks the
// finished page tree, and for each such run looks up the placeholder that
// produced it: a plain page-number placeholder (Citation.Placeholder.RefID
// empty) resolves to the page the run itself landed on; a
// page-number-citation placeholder resolves via ids, falling back to "??"
// for a dangling ref-id (spec §7's fatal-error-avoidance rule).
//
// Patching Text does not re-measure or re-shape the run: a page number
// that grows past the three-digit estimate buildPlaceholder sized for
// will overflow its box slightly rather than trigger a re-break.
func ResolveCitations(pages []*area.PageArea, citations []inline.Citation, ids IDRegistry) {
	byPlaceholderID := make(map[string]inline.Citation, len(citations))
	for _, c := range citations {
		byPlaceholderID[c.Placeholder.ID] = c
	}

	for _, p := range pages {
		for _, r := range p.Regions {
			for _, c := range r.Children {
				patchArea(c, p.PageNumber, byPlaceholderID, ids)
			}
		}
	}
}

func patchArea(a area.Area, ownPage int, byPlaceholderID map[string]inline.Citation, ids IDRegistry) {
	switch v := a.(type) {
	case *area.BlockArea:
		for _, c := range v.Children {
			patchArea(c, ownPage, byPlaceholderID, ids)
		}
	case *area.LineArea:
		for _, c := range v.Children {
			patchArea(c, ownPage, byPlaceholderID, ids)
		}
	case *area.InlineArea:
		for _, c := range v.Children {
			patchArea(c, ownPage, byPlaceholderID, ids)
		}
	case *area.GlyphRunArea:
		if v.RefID == "" {
			return
		}
		cit, ok := byPlaceholderID[v.RefID]
		if !ok {
			return
		}
		if cit.Placeholder.RefID == "" {
			v.Text = strconv.Itoa(ownPage)
			return
		}
		if n, ok := ids[cit.Placeholder.RefID]; ok {
			v.Text = strconv.Itoa(n)
		} else {
			v.Text = "??"
		}
	}
}
