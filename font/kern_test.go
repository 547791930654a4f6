package font

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildKernFormat0Subtable(override bool, pairs [][3]int) []byte {
	body := make([]byte, 8) // nPairs, searchRange, entrySelector, rangeShift
	binary.BigEndian.PutUint16(body[0:2], uint16(len(pairs)))
	for _, p := range pairs {
		rec := make([]byte, 6)
		binary.BigEndian.PutUint16(rec[0:2], uint16(p[0]))
		binary.BigEndian.PutUint16(rec[2:4], uint16(p[1]))
		binary.BigEndian.PutUint16(rec[4:6], uint16(int16(p[2])))
		body = append(body, rec...)
	}
	var coverage uint16
	if override {
		coverage = 0x0008
	}
	sub := make([]byte, 6)
	binary.BigEndian.PutUint16(sub[2:4], uint16(len(sub)+len(body)))
	binary.BigEndian.PutUint16(sub[4:6], coverage) // format 0 -> high byte 0
	sub = append(sub, body...)
	return sub
}

func TestDecodeKernFormat0Merge(t *testing.T) {
	sub := buildKernFormat0Subtable(false, [][3]int{{1, 2, 10}})
	pairs := make(map[kernPairKey]int16)
	decodeKernFormat0(sub, pairs, false)
	decodeKernFormat0(sub, pairs, false)
	require.Equal(t, int16(20), pairs[kernPairKey{1, 2}])
}

func TestDecodeKernFormat0Override(t *testing.T) {
	sub := buildKernFormat0Subtable(true, [][3]int{{1, 2, 10}})
	pairs := map[kernPairKey]int16{{1, 2}: 99}
	decodeKernFormat0(sub, pairs, true)
	require.Equal(t, int16(10), pairs[kernPairKey{1, 2}])
}
