package fo

import "fmt"

// Kind identifies the variant of a formatting object. The set of variants is
// fixed and finite (spec §3); we model it as an enum rather than a type per
// variant, following the "enum-switch over dynamic dispatch" guidance for
// open polymorphism on a closed node set.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindRoot
	KindLayoutMasterSet
	KindSimplePageMaster
	KindPageSequenceMaster
	KindRegionBody
	KindRegionBefore
	KindRegionAfter
	KindRegionStart
	KindRegionEnd
	KindPageSequence
	KindFlow
	KindStaticContent
	KindBlock
	KindBlockContainer
	KindInline
	KindInlineContainer
	KindBasicLink
	KindLeader
	KindCharacter
	KindPageNumber
	KindPageNumberCitation
	KindExternalGraphic
	KindInstreamForeignObject
	KindTable
	KindTableColumn
	KindTableHeader
	KindTableFooter
	KindTableBody
	KindTableRow
	KindTableCell
	KindListBlock
	KindListItem
	KindListItemLabel
	KindListItemBody
	KindFootnote
	KindFootnoteBody
	KindMarker
	KindRetrieveMarker
	KindWrapper
	KindBidiOverride
	KindBookmarkTree
	KindBookmark
	KindDeclarations
	KindInfo
	KindRepeatablePageMasterAlternatives
	KindConditionalPageMasterReference
	KindSinglePageMasterReference
)

var kindNames = map[Kind]string{
	KindRoot:                  "root",
	KindLayoutMasterSet:       "layout-master-set",
	KindSimplePageMaster:      "simple-page-master",
	KindPageSequenceMaster:    "page-sequence-master",
	KindRegionBody:            "region-body",
	KindRegionBefore:          "region-before",
	KindRegionAfter:           "region-after",
	KindRegionStart:           "region-start",
	KindRegionEnd:             "region-end",
	KindPageSequence:          "page-sequence",
	KindFlow:                  "flow",
	KindStaticContent:         "static-content",
	KindBlock:                 "block",
	KindBlockContainer:        "block-container",
	KindInline:                "inline",
	KindInlineContainer:       "inline-container",
	KindBasicLink:             "basic-link",
	KindLeader:                "leader",
	KindCharacter:             "character",
	KindPageNumber:            "page-number",
	KindPageNumberCitation:    "page-number-citation",
	KindExternalGraphic:       "external-graphic",
	KindInstreamForeignObject: "instream-foreign-object",
	KindTable:                 "table",
	KindTableColumn:           "table-column",
	KindTableHeader:           "table-header",
	KindTableFooter:           "table-footer",
	KindTableBody:             "table-body",
	KindTableRow:              "table-row",
	KindTableCell:             "table-cell",
	KindListBlock:             "list-block",
	KindListItem:              "list-item",
	KindListItemLabel:         "list-item-label",
	KindListItemBody:          "list-item-body",
	KindFootnote:              "footnote",
	KindFootnoteBody:          "footnote-body",
	KindMarker:                "marker",
	KindRetrieveMarker:        "retrieve-marker",
	KindWrapper:               "wrapper",
	KindBidiOverride:          "bidi-override",
	KindBookmarkTree:          "bookmark-tree",
	KindBookmark:              "bookmark",
	KindDeclarations:          "declarations",
	KindInfo:                  "info",
	KindRepeatablePageMasterAlternatives: "repeatable-page-master-alternatives",
	KindConditionalPageMasterReference:   "conditional-page-master-reference",
	KindSinglePageMasterReference:        "single-page-master-reference",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// Node is a single formatting object. Every node carries an untyped property
// bag populated from XML attributes, an ordered list of typed children, and
// a weak (non-owning) back-reference to its parent, set once the tree is
// assembled. The FO tree is read-only during layout (spec §3 "Lifetime").
type Node struct {
	Kind       Kind
	Properties map[string]string
	Children   []*Node
	Parent     *Node

	// Text is the literal character content for `character`/text-bearing
	// leaf nodes; most variants leave it empty and use Children instead.
	Text string

	// Loc is a source-location reference into the originating XML document,
	// used to annotate fatal errors (spec §7).
	Loc Location
}

// Location references a point in the source FO document, carried on every
// node so that fatal errors can point back at their origin.
type Location struct {
	Line, Column int
}

func (l Location) String() string {
	if l.Line == 0 {
		return "<unknown location>"
	}
	return fmt.Sprintf("line %d, col %d", l.Line, l.Column)
}

// New creates a detached node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind, Properties: make(map[string]string)}
}

// Append adds child as the last child of n, wiring the parent back-reference.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return n
}

// Prop returns the raw (unresolved) property value and whether it was set
// locally on this node.
func (n *Node) Prop(name string) (string, bool) {
	if n == nil || n.Properties == nil {
		return "", false
	}
	v, ok := n.Properties[name]
	return v, ok
}

// SetProp sets a raw property value on the node's bag.
func (n *Node) SetProp(name, value string) {
	if n.Properties == nil {
		n.Properties = make(map[string]string)
	}
	n.Properties[name] = value
}

// Ancestors walks from n's parent up to the root, calling visit for each.
// Iteration stops early if visit returns false.
func (n *Node) Ancestors(visit func(*Node) bool) {
	for p := n.Parent; p != nil; p = p.Parent {
		if !visit(p) {
			return
		}
	}
}

// Walk performs a pre-order traversal of the subtree rooted at n.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Builder is the narrow contract the (out of scope) XML parser satisfies to
// hand a freshly parsed FO tree to this module.
type Builder interface {
	Build() (*Node, error)
}

// FindRegion returns the region-body/-before/-after/-start/-end child of a
// simple-page-master, or nil.
func (n *Node) FindRegion(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}
