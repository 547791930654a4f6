package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeepAlways(t *testing.T) {
	kc := parseKeep("always")
	require.True(t, kc.Always)
	require.True(t, kc.Set)
}

func TestParseKeepInteger(t *testing.T) {
	kc := parseKeep("3")
	require.False(t, kc.Always)
	require.Equal(t, 3, kc.Strength)
}

func TestParseKeepAuto(t *testing.T) {
	kc := parseKeep("auto")
	require.False(t, kc.Set)
}

func TestStrongerPrefersAlwaysOverInteger(t *testing.T) {
	always := KeepConstraint{Set: true, Always: true}
	strong := KeepConstraint{Set: true, Strength: 1000}
	require.True(t, always.Stronger(strong))
	require.False(t, strong.Stronger(always))
}

func TestStrongerTieBreaksToFirstDeclared(t *testing.T) {
	a := KeepConstraint{Set: true, Strength: 5}
	b := KeepConstraint{Set: true, Strength: 5}
	require.True(t, a.Stronger(b))
}

func TestEffectiveJoinFallsBackToWhicheverSideIsSet(t *testing.T) {
	none := KeepConstraint{}
	withNext := KeepConstraint{Set: true, Strength: 2}
	withPrevious := KeepConstraint{Set: true, Strength: 2}

	require.Equal(t, withPrevious, EffectiveJoin(none, withPrevious))
	require.Equal(t, withNext, EffectiveJoin(withNext, none))
	require.Equal(t, KeepConstraint{}, EffectiveJoin(none, none))
}

func TestEffectiveJoinPrefersStrongerSide(t *testing.T) {
	weak := KeepConstraint{Set: true, Strength: 1}
	strong := KeepConstraint{Set: true, Always: true}
	require.Equal(t, strong, EffectiveJoin(weak, strong))
	require.Equal(t, strong, EffectiveJoin(strong, weak))
}

func TestEffectiveJoinTieFavorsWithNext(t *testing.T) {
	withNext := KeepConstraint{Set: true, Strength: 4}
	withPrevious := KeepConstraint{Set: true, Strength: 4}
	require.Equal(t, withNext, EffectiveJoin(withNext, withPrevious))
}
