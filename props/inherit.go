package props

// inheritable lists the properties that propagate from parent to child when
// not set locally (spec §3 "Property bag": "A fixed inheritance table ...
// determines which property values propagate to children when absent
// locally"). Properties not in this set use their per-property default
// instead of the parent's value.
var inheritable = map[string]bool{
	"font-family":             true,
	"font-size":               true,
	"font-style":               true,
	"font-weight":             true,
	"font-variant":            true,
	"font-stretch":            true,
	"color":                   true,
	"text-align":              true,
	"text-indent":             true,
	"text-transform":          true,
	"letter-spacing":          true,
	"word-spacing":            true,
	"line-height":             true,
	"white-space-collapse":    true,
	"wrap-option":             true,
	"writing-mode":            true,
	"direction":               true,
	"hyphenate":               true,
	"hyphenation-character":   true,
	"hyphenation-push-character-count":  true,
	"hyphenation-remain-character-count": true,
	"language":                true,
	"country":                 true,
	"list-style-type":         true,
	"table-border-collapse":   true,
	"orphans":                 true,
	"widows":                  true,
	"reference-orientation":   true,
	"role":                    true,
	"visibility":              true,
}

// IsInheritable reports whether a property name propagates down the tree
// when not locally set.
func IsInheritable(name string) bool {
	return inheritable[name]
}

// defaults holds the XSL-FO 1.1-defined initial value for every property
// this module resolves, used as the final fallback in the computed-value
// algorithm (spec §4.1 "Contract", step 3).
var defaults = map[string]string{
	"font-family":           "sans-serif",
	"font-size":             "12pt",
	"font-style":            "normal",
	"font-weight":           "normal",
	"font-variant":          "normal",
	"font-stretch":          "normal",
	"color":                 "black",
	"text-align":            "start",
	"text-indent":           "0pt",
	"text-transform":        "none",
	"letter-spacing":        "normal",
	"word-spacing":          "normal",
	"line-height":           "normal",
	"white-space-collapse":  "true",
	"wrap-option":           "wrap",
	"writing-mode":          "lr-tb",
	"direction":             "ltr",
	"hyphenate":             "false",
	"language":              "none",
	"country":               "none",
	"list-style-type":       "disc",
	"table-border-collapse": "collapse",
	"orphans":               "2",
	"widows":                "2",
	"reference-orientation": "0",
	"role":                  "none",
	"visibility":            "visible",
	"margin-top":            "0pt",
	"margin-right":          "0pt",
	"margin-bottom":         "0pt",
	"margin-left":           "0pt",
	"padding-top":           "0pt",
	"padding-right":         "0pt",
	"padding-bottom":        "0pt",
	"padding-left":          "0pt",
	"border-top-width":      "0pt",
	"border-right-width":    "0pt",
	"border-bottom-width":   "0pt",
	"border-left-width":     "0pt",
	"border-top-style":      "none",
	"border-right-style":    "none",
	"border-bottom-style":   "none",
	"border-left-style":     "none",
	"keep-together":         "auto",
	"keep-with-next":        "auto",
	"keep-with-previous":    "auto",
	"break-before":          "auto",
	"break-after":           "auto",
	"column-count":          "1",
	"column-gap":            "12pt",
	"absolute-position":     "auto",
	"display-align":         "auto",
	"column-width":                "auto",
	"number-columns-spanned":      "1",
	"number-rows-spanned":         "1",
	"table-omit-footer-at-break":  "false",
	"table-omit-header-at-break":  "false",
	"provisional-distance-between-starts": "24pt",
	"provisional-label-separation":        "6pt",
	"page-width":            "8.5in",
	"page-height":           "11in",
	"extent":                "0pt",
	"force-page-count":      "auto",
	"initial-page-number":   "1",
}

// DefaultFor returns the XSL-FO-defined initial value for a property, or
// the empty string if this module has no recorded default for it.
func DefaultFor(name string) string {
	return defaults[name]
}
