package block

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/stretchr/testify/require"
)

func TestCollapseAdjoiningPicksLarger(t *testing.T) {
	after := &Space{Length: 10 * dimen.PT}
	before := &Space{Length: 20 * dimen.PT}
	require.Equal(t, 20*dimen.PT, CollapseAdjoining(after, before))
}

func TestCollapseAdjoiningHigherPrecedenceWins(t *testing.T) {
	after := &Space{Length: 5 * dimen.PT, Precedence: 1}
	before := &Space{Length: 50 * dimen.PT, Precedence: 0}
	require.Equal(t, 5*dimen.PT, CollapseAdjoining(after, before))
}

func TestAtRegionEdgeDiscardsConditionalSpace(t *testing.T) {
	s := &Space{Length: 10 * dimen.PT, Conditionality: Discard}
	require.Equal(t, dimen.DU(0), AtRegionEdge(s))
}

func TestAtRegionEdgeRetainsByDefault(t *testing.T) {
	s := &Space{Length: 10 * dimen.PT}
	require.Equal(t, 10*dimen.PT, AtRegionEdge(s))
}
