package linebreak

import "github.com/foliant/xslfo/core/dimen"

// Optimal finds globally least-cost linebreaks using a Knuth-Plass-style
// dynamic program over the feasible breakpoint candidates (spec §4.3
// "Optimal (Knuth-Plass)"). Unlike the teacher's full breakpoint-graph
// construction (engine/frame/khipu/linebreak/knuthplass), which tracks
// every linecount variant simultaneously via an explicit DAG so a caller
// can request "one line looser/tighter", this computes the single
// best-total-demerits solution directly: every real XSL-FO layout only
// ever asks for that one solution. The badness/demerits formulas are the
// teacher's own.
func Optimal(seq *Sequence, shape ParShape, params *Parameters) []int {
	if params == nil {
		params = DefaultParameters
	}
	candidates := []int{-1}
	for i := 0; i < seq.Len(); i++ {
		if isLegalBreakpoint(seq, i) {
			candidates = append(candidates, i)
		}
	}
	if seq.Len() > 0 && candidates[len(candidates)-1] != seq.Len()-1 {
		candidates = append(candidates, seq.Len()-1)
	}
	n := len(candidates)
	if n <= 1 {
		return nil
	}

	const unreachable = InfinityDemerits * 100
	totalCost := make([]Merits, n)
	prev := make([]int, n)
	lineOf := make([]int, n)
	fitnessOf := make([]fitnessClass, n)
	fitnessOf[0] = fitnessDecent
	for i := 1; i < n; i++ {
		totalCost[i] = unreachable
		prev[i] = -2
	}

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if totalCost[i] >= unreachable && i != 0 {
				continue
			}
			from, to := candidates[i]+1, candidates[j]+1
			seg := seq.Measure(from, to)
			lineLen := shape.LineLength(lineOf[i])
			if seg.Min > lineLen && params.EmergencyStretch == 0 {
				continue
			}
			penalty := penaltyAt(seq, candidates[j], params)
			d, class := computeDemerits(seg, lineLen, penalty, fitnessOf[i], params)
			cost := totalCost[i] + d
			if cost < totalCost[j] {
				totalCost[j] = cost
				prev[j] = i
				lineOf[j] = lineOf[i] + 1
				fitnessOf[j] = class
			}
		}
	}

	last := n - 1
	if prev[last] == -2 {
		// No feasible chain reached the end: fall back to greedy so the
		// caller always gets a usable set of breaks.
		return Greedy(seq, shape, params)
	}
	var rev []int
	for i := last; i > 0; i = prev[i] {
		rev = append(rev, candidates[i])
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// penaltyAt returns the demerits contribution of breaking at candidate
// index idx (0 for glue/discretionary breakpoints with no explicit
// penalty item).
func penaltyAt(seq *Sequence, idx int, params *Parameters) Merits {
	it := seq.At(idx)
	if p, ok := it.(Penalty); ok {
		return CapDemerits(p.Demerits())
	}
	if it.Kind() == KindDiscretionary {
		return params.HyphenPenalty
	}
	return 0
}

// fitnessClass is one of TeX's four line-tightness bands, classified from
// the line's signed adjustment ratio (negative: shrunk, positive:
// stretched). Knuth-Plass penalizes a break that jumps more than one band
// away from the previous line's class, so a visually "tight" line is never
// followed directly by a "very loose" one if a smoother alternative break
// exists (spec §4.3's demerits function, third term).
type fitnessClass int

const (
	fitnessTight fitnessClass = iota
	fitnessDecent
	fitnessLoose
	fitnessVeryLoose
)

func classifyFitness(ratio float64) fitnessClass {
	switch {
	case ratio < -0.5:
		return fitnessTight
	case ratio <= 0.5:
		return fitnessDecent
	case ratio <= 1:
		return fitnessLoose
	default:
		return fitnessVeryLoose
	}
}

func classDistance(a, b fitnessClass) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// computeDemerits follows TeX's badness/demerits formula: badness grows
// with the cube of the stretch/shrink ratio, demerits combine line
// penalty, badness and break penalty, and a further term penalizes a
// fitness-class mismatch against prevClass, the previous line's own class
// (spec §4.3). It returns both the demerits and this line's own class, so
// the caller can thread it into the next candidate's prevClass.
func computeDemerits(seg WSS, lineLen dimen.DU, penalty Merits, prevClass fitnessClass, params *Parameters) (Merits, fitnessClass) {
	diff := lineLen - seg.W
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}
	var room dimen.DU
	if diff >= 0 {
		room = seg.Max - seg.W
	} else {
		room = seg.W - seg.Min
	}
	if room < 1 {
		room = 1
	}
	ratioMag := float64(absDiff) / float64(room)
	cappedMag := ratioMag
	if cappedMag > 10 {
		cappedMag = 10
	}
	badness := Merits(minF(cappedMag*cappedMag*cappedMag*100, 10000))

	signedRatio := ratioMag
	if diff < 0 {
		signedRatio = -ratioMag
	}
	class := classifyFitness(signedRatio)

	b := params.LinePenalty + badness
	d := b * b
	p2 := penalty * penalty
	if penalty >= 0 {
		d += p2
	} else if penalty > InfinityMerits {
		d -= p2
	}
	if classDistance(class, prevClass) > 1 {
		d += params.FitnessDemerits
	}
	return CapDemerits(d), class
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
