package props

import (
	"strings"

	"github.com/foliant/xslfo/fo"
)

// ExpandShorthands performs the eager, parse-time shorthand expansion spec
// §4.1 describes: `margin`, `padding`, `border`, `border-width`,
// `border-style`, `border-color` each expand into their four directional
// per-edge properties. Explicitly-set per-edge values are never overwritten
// by a shorthand (checked before every write).
func ExpandShorthands(n *fo.Node) {
	if v, ok := n.Prop("margin"); ok {
		expandFourWay(n, "margin", v)
	}
	if v, ok := n.Prop("padding"); ok {
		expandFourWay(n, "padding", v)
	}
	if v, ok := n.Prop("border"); ok {
		expandBorderShorthand(n, v)
	}
	if v, ok := n.Prop("border-width"); ok {
		expandFourWay(n, "border-width", v)
	}
	if v, ok := n.Prop("border-style"); ok {
		expandFourWay(n, "border-style", v)
	}
	if v, ok := n.Prop("border-color"); ok {
		expandFourWay(n, "border-color", v)
	}
}

// expandFourWay expands a CSS-style 1/2/3/4-value shorthand into
// `<prefix>-top/right/bottom/left` (for the `border-width`/`-style`/`-color`
// prefixes, `border-top-width` and so on), following the standard clockwise
// expansion rule.
func expandFourWay(n *fo.Node, prefix, value string) {
	parts := strings.Fields(value)
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return
	}
	edgeName := func(edge string) string {
		if strings.HasPrefix(prefix, "border-") {
			return "border-" + edge + strings.TrimPrefix(prefix, "border")
		}
		return prefix + "-" + edge
	}
	setIfAbsent(n, edgeName("top"), top)
	setIfAbsent(n, edgeName("right"), right)
	setIfAbsent(n, edgeName("bottom"), bottom)
	setIfAbsent(n, edgeName("left"), left)
}

// expandBorderShorthand parses `border: Wpt STYLE COLOR` by token shape
// (length-like -> width, style keyword -> style, else -> color), per spec
// §4.1, then lets the resulting three intermediate properties expand to
// four edges each.
func expandBorderShorthand(n *fo.Node, value string) {
	var width, style, color string
	for _, tok := range strings.Fields(value) {
		switch {
		case isBorderStyleKeyword(tok):
			style = tok
		case looksLikeLength(tok):
			width = tok
		default:
			color = tok
		}
	}
	if width != "" {
		setIfAbsent(n, "border-width", width)
	}
	if style != "" {
		setIfAbsent(n, "border-style", style)
	}
	if color != "" {
		setIfAbsent(n, "border-color", color)
	}
	if v, ok := n.Prop("border-width"); ok {
		expandFourWay(n, "border-width", v)
	}
	if v, ok := n.Prop("border-style"); ok {
		expandFourWay(n, "border-style", v)
	}
	if v, ok := n.Prop("border-color"); ok {
		expandFourWay(n, "border-color", v)
	}
}

var borderStyleKeywords = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true,
	"solid": true, "double": true, "groove": true, "ridge": true,
	"inset": true, "outset": true,
}

func isBorderStyleKeyword(tok string) bool {
	return borderStyleKeywords[tok]
}

func looksLikeLength(tok string) bool {
	if tok == "" {
		return false
	}
	if _, err := ParseLength(tok); err == nil {
		return tok[0] >= '0' && tok[0] <= '9' || tok[0] == '+' || tok[0] == '-' || tok == "auto"
	}
	return false
}

// setIfAbsent sets name=value on n's property bag unless name is already
// explicitly present -- shorthands never clobber an explicit per-edge value.
func setIfAbsent(n *fo.Node, name, value string) {
	if _, ok := n.Prop(name); ok {
		return
	}
	n.SetProp(name, value)
}
