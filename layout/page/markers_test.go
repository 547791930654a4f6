package page

import (
	"testing"

	"github.com/foliant/xslfo/fo"
	"github.com/stretchr/testify/require"
)

func markerNode(class string) *fo.Node {
	n := fo.New(fo.KindMarker)
	n.SetProp("marker-class-name", class)
	return n
}

func TestMarkerRegistryFirstStartingWithinPage(t *testing.T) {
	reg := NewMarkerRegistry()
	m1 := markerNode("header")
	m2 := markerNode("header")
	reg.Record("header", m1, 2, 0)
	reg.Record("header", m2, 2, 0)

	got := reg.Retrieve("header", "first-starting-within-page", "page", 2, 0)
	require.Same(t, m1, got)
}

func TestMarkerRegistryLastStartingWithinPage(t *testing.T) {
	reg := NewMarkerRegistry()
	m1 := markerNode("header")
	m2 := markerNode("header")
	reg.Record("header", m1, 2, 0)
	reg.Record("header", m2, 2, 0)

	got := reg.Retrieve("header", "last-starting-within-page", "page", 2, 0)
	require.Same(t, m2, got)
}

func TestMarkerRegistryFirstIncludingCarryoverFallsBackToEarlierPage(t *testing.T) {
	reg := NewMarkerRegistry()
	m1 := markerNode("header")
	reg.Record("header", m1, 1, 0)

	got := reg.Retrieve("header", "first-including-carryover", "page", 3, 0)
	require.Same(t, m1, got)
}

func TestMarkerRegistryLastEndingWithinPageConsidersAllPagesUpTo(t *testing.T) {
	reg := NewMarkerRegistry()
	m1 := markerNode("header")
	m2 := markerNode("header")
	reg.Record("header", m1, 1, 0)
	reg.Record("header", m2, 2, 0)

	got := reg.Retrieve("header", "last-ending-within-page", "page", 3, 0)
	require.Same(t, m2, got)
}

func TestMarkerRegistryPageSequenceBoundaryScopesByIndex(t *testing.T) {
	reg := NewMarkerRegistry()
	m1 := markerNode("header")
	reg.Record("header", m1, 1, 0)

	require.NotNil(t, reg.Retrieve("header", "first-including-carryover", "page-sequence", 5, 0))
	require.Nil(t, reg.Retrieve("header", "first-including-carryover", "page-sequence", 5, 1))
}

func TestMarkerRegistryReturnsNilWhenNoneRecorded(t *testing.T) {
	reg := NewMarkerRegistry()
	require.Nil(t, reg.Retrieve("header", "first-starting-within-page", "page", 1, 0))
}
