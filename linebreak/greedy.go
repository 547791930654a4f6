package linebreak

// Greedy performs first-fit line-breaking: it fills each line as full as
// possible before moving to the next, never looking ahead (spec §4.3
// "Greedy"). It returns the item index that ends each line (inclusive);
// the final entry is always seq.Len()-1.
func Greedy(seq *Sequence, shape ParShape, params *Parameters) []int {
	if params == nil {
		params = DefaultParameters
	}
	var breaks []int
	line := 0
	lineStart := 0
	lastLegal := -1
	var acc WSS
	for i := 0; i < seq.Len(); i++ {
		it := seq.At(i)
		acc = acc.Add(WSS{}.FromItem(it))
		if !isLegalBreakpoint(seq, i) {
			continue
		}
		lineLen := shape.LineLength(line)
		forced := isForcedBreak(it)
		if acc.Min <= lineLen || forced {
			lastLegal = i
		}
		if acc.W > lineLen || forced {
			breakAt := lastLegal
			if breakAt < 0 {
				breakAt = i // overfull: nothing fits, break here anyway
			}
			breaks = append(breaks, breakAt)
			line++
			lineStart = breakAt + 1
			acc = seq.Measure(lineStart, i+1)
			lastLegal = -1
		}
	}
	if lineStart < seq.Len() {
		breaks = append(breaks, seq.Len()-1)
	}
	return breaks
}

// isLegalBreakpoint reports whether a line may end right after item i:
// at glue preceded by a non-discardable item, at a discretionary, or at
// a penalty that does not forbid breaking.
func isLegalBreakpoint(seq *Sequence, i int) bool {
	it := seq.At(i)
	switch it.Kind() {
	case KindDiscretionary:
		return true
	case KindPenalty:
		return it.(Penalty).Demerits() < InfinityDemerits
	case KindGlue:
		return i > 0 && !seq.At(i-1).IsDiscardable()
	}
	return false
}

func isForcedBreak(it Item) bool {
	p, ok := it.(Penalty)
	return ok && p.Demerits() <= InfinityMerits
}
