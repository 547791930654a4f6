package fo

import "fmt"

// StructuralError reports a violation of the FO tree's structural
// constraints (spec §7, InvalidDocument): fatal, aborts layout.
type StructuralError struct {
	Node *Node
	Msg  string
}

func (e *StructuralError) Error() string {
	loc := "<unknown location>"
	if e.Node != nil {
		loc = e.Node.Loc.String()
	}
	return fmt.Sprintf("invalid document at %s: %s", loc, e.Msg)
}

// requiredAncestor records a handful of structural constraints spelled out
// by XSL-FO: a flow may only occur inside a page-sequence, a table-cell only
// inside a table-row, and so on. This is not an exhaustive schema validator
// (that lives with the external parser); it only guards the invariants this
// module's layout code relies on.
var requiredAncestor = map[Kind]Kind{
	KindFlow:         KindPageSequence,
	KindStaticContent: KindPageSequence,
	KindTableCell:    KindTableRow,
	KindTableRow:     KindInvalid, // checked specially: table-header/footer/body
}

// Validate walks the tree and returns the first structural violation found,
// or nil if the tree is well-formed enough to lay out.
func Validate(root *Node) error {
	var err error
	root.Walk(func(n *Node) {
		if err != nil {
			return
		}
		switch n.Kind {
		case KindFlow, KindStaticContent:
			if !hasAncestor(n, KindPageSequence) {
				err = &StructuralError{Node: n, Msg: n.Kind.String() + " outside page-sequence"}
			}
		case KindTableCell:
			if !hasAncestor(n, KindTableRow) {
				err = &StructuralError{Node: n, Msg: "table-cell outside table-row"}
			}
		case KindTableRow:
			if !hasAncestor(n, KindTableHeader) && !hasAncestor(n, KindTableFooter) && !hasAncestor(n, KindTableBody) {
				err = &StructuralError{Node: n, Msg: "table-row outside table-header/-footer/-body"}
			}
		case KindPageSequence:
			if n.Properties["master-reference"] == "" {
				err = &StructuralError{Node: n, Msg: "page-sequence without master-reference"}
			}
		}
	})
	return err
}

func hasAncestor(n *Node, k Kind) bool {
	found := false
	n.Ancestors(func(a *Node) bool {
		if a.Kind == k {
			found = true
			return false
		}
		return true
	})
	return found
}
