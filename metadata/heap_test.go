package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pdbscope/metadata"
)

func TestStringsHeap_Read(t *testing.T) {
	heap := metadata.NewStringsHeap([]byte("\x00Pi\x00Max\x00bad"))
	tests := []struct {
		name     string
		offset   uint32
		expect   string
		expectOk bool
	}{
		{name: "empty", offset: 0, expect: "", expectOk: true},
		{name: "first", offset: 1, expect: "Pi", expectOk: true},
		{name: "inner offset", offset: 5, expect: "ax", expectOk: true},
		{name: "unterminated", offset: 8, expectOk: false},
		{name: "out of range", offset: 100, expectOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := heap.Read(tt.offset)
			assert.Equal(t, tt.expectOk, ok)
			assert.Equal(t, tt.expect, actual)
		})
	}
	var nilHeap *metadata.StringsHeap
	_, ok := nilHeap.Read(0)
	assert.False(t, ok)
}

func TestBlobHeap_TryCreateReader(t *testing.T) {
	heap := metadata.NewBlobHeap([]byte{0x00, 0x02, 0xAA, 0xBB, 0x05, 0x01})
	reader, ok := heap.TryCreateReader(0)
	require.True(t, ok)
	assert.Equal(t, 0, reader.Len())

	reader, ok = heap.TryCreateReader(1)
	require.True(t, ok)
	data, err := reader.ReadBytes(reader.Remaining())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, data)

	_, ok = heap.TryCreateReader(4)
	assert.False(t, ok, "length past heap end")
	_, ok = heap.TryCreateReader(6)
	assert.False(t, ok, "offset past heap end")

	_, err = heap.Read(40)
	assert.Error(t, err)
}

func TestGUID(t *testing.T) {
	text := "6DA9A61E-F8C7-4874-BE62-68BC5630DF71"
	guid, err := metadata.ParseGUID(text)
	require.NoError(t, err)
	assert.EqualValues(t, 0x1E, guid[0])
	assert.EqualValues(t, 0xC7, guid[4])
	assert.EqualValues(t, 0xBE, guid[8])
	assert.Equal(t, text, guid.String())

	lower, err := metadata.ParseGUID("6da9a61e-f8c7-4874-be62-68bc5630df71")
	require.NoError(t, err)
	assert.Equal(t, guid, lower)

	braced, err := metadata.ParseGUID("{6DA9A61E-F8C7-4874-BE62-68BC5630DF71}")
	require.NoError(t, err)
	assert.Equal(t, guid, braced)

	for _, invalid := range []string{"", "6DA9A61E", "6DA9A61EXF8C7-4874-BE62-68BC5630DF71", "6DA9A61E-F8C7-4874-BE62-68BC5630DFZZ"} {
		_, err = metadata.ParseGUID(invalid)
		assert.Error(t, err, invalid)
	}

	heap := metadata.NewGUIDHeap(guid[:])
	actual, ok := heap.Read(1)
	assert.True(t, ok)
	assert.Equal(t, guid, actual)
	_, ok = heap.Read(0)
	assert.False(t, ok)
	_, ok = heap.Read(2)
	assert.False(t, ok)
}
