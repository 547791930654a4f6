package linebreak

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/stretchr/testify/require"
)

func TestOptimalProducesBreaksCoveringWholeSequence(t *testing.T) {
	s := wordsSequence([]string{"one", "two", "three", "four", "five", "six"}, 10*dimen.PT, 6*dimen.PT)
	shape := RectangularParShape(60 * dimen.PT)
	breaks := Optimal(s, shape, DefaultParameters)
	require.NotEmpty(t, breaks)
	require.Equal(t, s.Len()-1, breaks[len(breaks)-1])
	for i := 1; i < len(breaks); i++ {
		require.Greater(t, breaks[i], breaks[i-1])
	}
}

func TestOptimalSingleLineWhenEverythingFits(t *testing.T) {
	s := wordsSequence([]string{"a", "b"}, 10*dimen.PT, 5*dimen.PT)
	shape := RectangularParShape(1000 * dimen.PT)
	breaks := Optimal(s, shape, DefaultParameters)
	require.Len(t, breaks, 1)
}

func TestComputeDemeritsPrefersTighterFit(t *testing.T) {
	tight, _ := computeDemerits(WSS{W: 98, Min: 90, Max: 110}, 100, 0, fitnessDecent, DefaultParameters)
	loose, _ := computeDemerits(WSS{W: 50, Min: 40, Max: 60}, 100, 0, fitnessDecent, DefaultParameters)
	require.Less(t, tight, loose)
}

func TestComputeDemeritsPenalizesFitnessClassJump(t *testing.T) {
	// A decent-looking line (ratio near zero) following a very loose
	// previous line should cost more than the same line following another
	// decent line, since the classes are more than one band apart.
	seg := WSS{W: 100, Min: 90, Max: 110}
	afterDecent, class := computeDemerits(seg, 100, 0, fitnessDecent, DefaultParameters)
	require.Equal(t, fitnessDecent, class)
	afterVeryLoose, _ := computeDemerits(seg, 100, 0, fitnessVeryLoose, DefaultParameters)
	require.Greater(t, afterVeryLoose, afterDecent)
}

func TestClassifyFitnessBands(t *testing.T) {
	require.Equal(t, fitnessTight, classifyFitness(-0.9))
	require.Equal(t, fitnessDecent, classifyFitness(0))
	require.Equal(t, fitnessLoose, classifyFitness(0.8))
	require.Equal(t, fitnessVeryLoose, classifyFitness(1.5))
}
