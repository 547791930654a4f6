package font

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSFNTDirectory(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for t := range tables {
		tags = append(tags, t)
	}
	n := len(tags)
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], 0x00010000)
	binary.BigEndian.PutUint16(buf[4:6], uint16(n))

	offset := uint32(12 + n*16)
	var data []byte
	for _, tag := range tags {
		rec := make([]byte, 16)
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[8:12], offset)
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(tables[tag])))
		buf = append(buf, rec...)
		data = append(data, tables[tag]...)
		offset += uint32(len(tables[tag]))
	}
	return append(buf, data...)
}

func TestParseSFNTDirectory(t *testing.T) {
	raw := buildSFNTDirectory(map[string][]byte{
		"head": {1, 2, 3, 4},
		"cmap": {5, 6, 7, 8, 9, 10},
	})
	dir, err := parseSFNTDirectory(raw)
	require.NoError(t, err)
	require.True(t, dir.has("head"))
	require.True(t, dir.has("cmap"))
	require.False(t, dir.has("glyf"))
	require.Equal(t, []byte{1, 2, 3, 4}, dir.table("head"))
	require.Equal(t, []byte{5, 6, 7, 8, 9, 10}, dir.table("cmap"))
}

func TestParseSFNTDirectoryTooShort(t *testing.T) {
	_, err := parseSFNTDirectory([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestReadU16OutOfBounds(t *testing.T) {
	_, err := readU16([]byte{0, 1}, 1)
	require.Error(t, err)
}

func TestReadU32RoundTrip(t *testing.T) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint32(b[2:6], 0xAABBCCDD)
	v, err := readU32(b, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAABBCCDD), v)
}
