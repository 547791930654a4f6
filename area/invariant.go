package area

// CheckContainment walks a page's area tree and reports every area whose
// rectangle is not contained within its parent's, skipping areas exempted
// via their Exempt field (spec §8, invariant 1). Intended for tests and
// debug builds, not the hot layout path.
func CheckContainment(page *PageArea) []string {
	var violations []string
	for _, region := range page.Regions {
		checkChildren(region.Box, region.Children, &violations, region.Reference)
	}
	return violations
}

func checkChildren(parent Rect, children []Area, violations *[]string, path string) {
	for _, c := range children {
		exempt := NotExempt
		if b, ok := c.(*BlockArea); ok {
			exempt = b.Exempt
		}
		if exempt == NotExempt && !parent.Contains(c.Rect()) {
			*violations = append(*violations, path)
		}
		switch v := c.(type) {
		case *BlockArea:
			checkChildren(v.ContentRect(), v.Children, violations, path+"/block")
		case *LineArea:
			checkChildren(v.Box, v.Children, violations, path+"/line")
		case *InlineArea:
			checkChildren(v.Box, v.Children, violations, path+"/inline")
		}
	}
}
