package linebreak

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/stretchr/testify/require"
)

func wordsSequence(words []string, wordWidth, spaceWidth dimen.DU) *Sequence {
	s := NewSequence()
	for i, w := range words {
		if i > 0 {
			s.Append(NewGlue(spaceWidth, spaceWidth/3, spaceWidth/2))
		}
		s.Append(Box{Width: dimen.DU(len(w)) * wordWidth, Text: w})
	}
	s.Append(Penalty(InfinityMerits))
	return s
}

func TestGreedyBreaksWhenLineFull(t *testing.T) {
	s := wordsSequence([]string{"aa", "bb", "cc", "dd"}, 10*dimen.PT, 5*dimen.PT)
	shape := RectangularParShape(45 * dimen.PT)
	breaks := Greedy(s, shape, DefaultParameters)
	require.NotEmpty(t, breaks)
	require.Equal(t, s.Len()-1, breaks[len(breaks)-1])
}

func TestGreedySingleLineWhenEverythingFits(t *testing.T) {
	s := wordsSequence([]string{"a", "b"}, 10*dimen.PT, 5*dimen.PT)
	shape := RectangularParShape(1000 * dimen.PT)
	breaks := Greedy(s, shape, DefaultParameters)
	require.Len(t, breaks, 1)
	require.Equal(t, s.Len()-1, breaks[0])
}

func TestIsLegalBreakpointGlueAfterDiscardableIsNotLegal(t *testing.T) {
	s := NewSequence()
	s.Append(NewGlue(5, 1, 1))
	s.Append(NewGlue(5, 1, 1))
	require.False(t, isLegalBreakpoint(s, 1))
}
