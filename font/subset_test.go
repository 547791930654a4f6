package font

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemapGlyphsAlwaysKeepsNotdef(t *testing.T) {
	old2new, order := remapGlyphs([]GlyphID{5, 3})
	require.Equal(t, []GlyphID{0, 3, 5}, order)
	require.Equal(t, GlyphID(0), old2new[0])
	require.Equal(t, GlyphID(1), old2new[3])
	require.Equal(t, GlyphID(2), old2new[5])
}

func TestRemapGlyphsDeterministicOrder(t *testing.T) {
	_, order1 := remapGlyphs([]GlyphID{9, 2, 7})
	_, order2 := remapGlyphs([]GlyphID{7, 9, 2})
	require.Equal(t, order1, order2)
}

func TestCmapSearchParams(t *testing.T) {
	searchRange, entrySelector, rangeShift := cmapSearchParams(5)
	require.Equal(t, uint16(8), searchRange)
	require.Equal(t, uint16(2), entrySelector)
	require.Equal(t, uint16(2), rangeShift)
}

func TestAssembleSFNTRoundTripsDirectory(t *testing.T) {
	tables := map[string][]byte{
		"head": {1, 2, 3, 4, 5},
		"hmtx": {9, 9, 9},
	}
	out := assembleSFNT(tables)
	dir, err := parseSFNTDirectory(out)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, dir.table("head"))
	require.Equal(t, []byte{9, 9, 9}, dir.table("hmtx"))
}
