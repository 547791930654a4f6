package font

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHmtxWithTrailingRepeatedAdvances(t *testing.T) {
	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[34:36], 2) // numberOfHMetrics

	// 2 full (advance, lsb) records, then 1 trailing lsb-only glyph.
	hmtx := make([]byte, 2*4+1*2)
	binary.BigEndian.PutUint16(hmtx[0:2], 500)
	binary.BigEndian.PutUint16(hmtx[2:4], uint16(int16(10)))
	binary.BigEndian.PutUint16(hmtx[4:6], 600)
	binary.BigEndian.PutUint16(hmtx[6:8], uint16(int16(20)))
	binary.BigEndian.PutUint16(hmtx[8:10], uint16(int16(5)))

	raw := buildSFNTDirectory(map[string][]byte{"hhea": hhea, "hmtx": hmtx})
	dir, err := parseSFNTDirectory(raw)
	require.NoError(t, err)

	f := &File{dir: dir, GlyphCount: 3}
	require.NoError(t, f.parseHmtx())
	require.Equal(t, int32(500), f.Advance(0))
	require.Equal(t, int32(600), f.Advance(1))
	require.Equal(t, int32(600), f.Advance(2)) // repeats last advance
	require.Equal(t, int32(5), f.lsb[2])
}

func TestParseHmtxMissingTableIsFatal(t *testing.T) {
	raw := buildSFNTDirectory(map[string][]byte{"hhea": make([]byte, 36)})
	dir, err := parseSFNTDirectory(raw)
	require.NoError(t, err)
	f := &File{dir: dir, GlyphCount: 1}
	require.Error(t, f.parseHmtx())
}
