package pagination

import (
	"context"
	"fmt"
	"strconv"

	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/layout/page"
	"github.com/foliant/xslfo/props"
)

// LayoutPageSequences is the module's single entry point (spec §5, §6
// "external interfaces"). root is the document's fo:root: its
// layout-master-set is resolved once, then every page-sequence child is
// laid out in document order through a shared layout/page.Builder, page
// numbering threaded from one sequence to the next. ctx is checked once per
// page boundary inside each sequence (layout/page.Builder.BuildSequence
// already does so) and once more between sequences, so a long document can
// be aborted without waiting for the whole run to finish.
//
// The core is single-threaded and spawns no goroutines of its own
// (spec §5 "no internal parallelism required"): a caller wanting
// page-sequence-level parallelism fans LayoutPageSequences calls out
// itself, one fo.Node subtree (and a private props.Resolver) per goroutine.
func LayoutPageSequences(ctx context.Context, root *fo.Node, fonts *fontregistry.Registry, opts *layout.Options) ([]*area.PageArea, error) {
	if root == nil {
		return nil, &layout.Error{Kind: layout.InvalidDocument, Message: "nil document root"}
	}
	if opts == nil {
		opts = layout.NewDefaultOptions()
	}
	if err := fo.Validate(root); err != nil {
		return nil, &layout.Error{Kind: layout.InvalidDocument, Node: root, Message: "invalid document", Err: err}
	}

	masterSetNode := root.FindRegion(fo.KindLayoutMasterSet)
	if masterSetNode == nil {
		return nil, &layout.Error{Kind: layout.InvalidDocument, Node: root, Message: "document has no layout-master-set"}
	}
	masters := collectMasters(masterSetNode)

	resolver := props.NewResolver()
	builder := page.NewBuilder(resolver, fonts, opts)

	var (
		pages     []*area.PageArea
		citations []inline.Citation
		ids       = make(page.IDRegistry)
		nextPage  = 1
		seqIndex  int
	)

	for _, seq := range root.Children {
		if seq.Kind != fo.KindPageSequence {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := startPageNumberFor(seq, nextPage)
		result, err := builder.BuildSequence(ctx, seq, seqIndex, masters, start)
		if err != nil {
			return nil, fmt.Errorf("page-sequence %d: %w", seqIndex, err)
		}

		pages = append(pages, result.Pages...)
		citations = append(citations, result.Citations...)
		for id, pg := range result.IDs {
			ids[id] = pg
		}
		nextPage = start + len(result.Pages)
		seqIndex++
	}

	page.ResolveCitations(pages, citations, ids)
	return pages, nil
}

// collectMasters gathers a layout-master-set's simple-page-master and
// page-sequence-master children, keyed by master-name, into the lookup
// table layout/page.Builder.BuildSequence expects.
func collectMasters(masterSetNode *fo.Node) page.Masters {
	m := page.Masters{Simple: make(map[string]*fo.Node), PageSequence: make(map[string]*fo.Node)}
	for _, c := range masterSetNode.Children {
		name, _ := c.Prop("master-name")
		switch c.Kind {
		case fo.KindSimplePageMaster:
			m.Simple[name] = c
		case fo.KindPageSequenceMaster:
			m.PageSequence[name] = c
		}
	}
	return m
}

// startPageNumberFor resolves a page-sequence's initial-page-number. An
// unset property continues numbering from the running count left by the
// previous sequence ("auto"'s effect), since that is XSL-FO's established
// default and an explicit override is the exception: the props resolver's
// literal "1" default (props/inherit.go) is deliberately bypassed here by
// reading the raw property instead of going through Resolver.Computed.
func startPageNumberFor(seq *fo.Node, running int) int {
	v, ok := seq.Prop("initial-page-number")
	if !ok {
		return running
	}
	switch v {
	case "", "auto":
		return running
	case "auto-odd":
		if running%2 == 0 {
			return running + 1
		}
		return running
	case "auto-even":
		if running%2 == 1 {
			return running + 1
		}
		return running
	default:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		return running
	}
}
