package metadata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pdbscope/metadata"
)

func TestBlobReader_ReadCompressedUint32(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		expect uint32
	}{
		{name: "one byte", data: []byte{0x03}, expect: 0x03},
		{name: "one byte max", data: []byte{0x7F}, expect: 0x7F},
		{name: "two bytes min", data: []byte{0x80, 0x80}, expect: 0x80},
		{name: "two bytes", data: []byte{0xAE, 0x57}, expect: 0x2E57},
		{name: "two bytes max", data: []byte{0xBF, 0xFF}, expect: 0x3FFF},
		{name: "four bytes min", data: []byte{0xC0, 0x00, 0x40, 0x00}, expect: 0x4000},
		{name: "four bytes max", data: []byte{0xDF, 0xFF, 0xFF, 0xFF}, expect: 0x1FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := metadata.NewBlobReader(tt.data)
			actual, err := reader.ReadCompressedUint32()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, actual)
			assert.Equal(t, 0, reader.Remaining())

			encoded, err := metadata.CompressUint32(tt.expect)
			require.NoError(t, err)
			assert.Equal(t, tt.data, encoded)
		})
	}
}

func TestBlobReader_Errors(t *testing.T) {
	_, err := metadata.NewBlobReader([]byte{0xE0}).ReadCompressedUint32()
	assert.Error(t, err)

	_, err = metadata.NewBlobReader([]byte{0x80}).ReadCompressedUint32()
	assert.True(t, errors.Is(err, metadata.ErrEndOfBlob))

	_, err = metadata.NewBlobReader([]byte{1, 2, 3}).ReadUint32()
	assert.True(t, errors.Is(err, metadata.ErrEndOfBlob))

	_, err = metadata.NewBlobReader([]byte{'a', 0}).ReadUTF16(1)
	assert.Error(t, err)

	_, err = metadata.NewBlobReader([]byte{'a', 'b'}).ReadUTF8Z()
	assert.True(t, errors.Is(err, metadata.ErrEndOfBlob))

	_, err = metadata.CompressUint32(0x20000000)
	assert.Error(t, err)
}

func TestBlobReader_Values(t *testing.T) {
	reader := metadata.NewBlobReader([]byte{
		0xFE,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0x00, 0x00, 0xC0, 0x3F,
		'h', 0, 'i', 0,
		'o', 'k', 0,
	})
	i8, err := reader.ReadInt8()
	require.NoError(t, err)
	assert.EqualValues(t, -2, i8)
	u16, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.EqualValues(t, 0x1234, u16)
	u32, err := reader.ReadUint32()
	require.NoError(t, err)
	assert.EqualValues(t, 0x12345678, u32)
	f32, err := reader.ReadFloat32()
	require.NoError(t, err)
	assert.EqualValues(t, 1.5, f32)
	text, err := reader.ReadUTF16(4)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	text, err = reader.ReadUTF8Z()
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 0, reader.Remaining())
	assert.Equal(t, reader.Len(), reader.Position())
}

func TestBlobReader_ReadTypeDefOrRefOrSpec(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		expect metadata.Token
	}{
		{name: "type def", data: []byte{0x08}, expect: metadata.NewToken(metadata.TableTypeDef, 2)},
		{name: "type ref", data: []byte{0x0D}, expect: metadata.NewToken(metadata.TableTypeRef, 3)},
		{name: "type spec", data: []byte{0x06}, expect: metadata.NewToken(metadata.TableTypeSpec, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := metadata.NewBlobReader(tt.data).ReadTypeDefOrRefOrSpec()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, actual)
		})
	}
	_, err := metadata.NewBlobReader([]byte{0x07}).ReadTypeDefOrRefOrSpec()
	assert.Error(t, err)
}
