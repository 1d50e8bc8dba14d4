package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf16"
)

// ErrEndOfBlob is returned when a read goes past the end of a blob
var ErrEndOfBlob = errors.New("unexpected end of blob")

// BlobReader reads little endian and compressed values from a blob
type BlobReader struct {
	data []byte
	pos  int
}

// NewBlobReader creates a blob reader
func NewBlobReader(data []byte) *BlobReader {
	return &BlobReader{data: data}
}

// Position returns the current offset
func (r *BlobReader) Position() int {
	return r.pos
}

// Remaining returns number of unread bytes
func (r *BlobReader) Remaining() int {
	return len(r.data) - r.pos
}

// Len returns blob size
func (r *BlobReader) Len() int {
	return len(r.data)
}

func (r *BlobReader) next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, r.pos, ErrEndOfBlob)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// PeekByte returns the next byte without advancing
func (r *BlobReader) PeekByte() (byte, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("peek at %d: %w", r.pos, ErrEndOfBlob)
	}
	return r.data[r.pos], nil
}

func (r *BlobReader) ReadByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *BlobReader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *BlobReader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *BlobReader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *BlobReader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *BlobReader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *BlobReader) ReadUint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *BlobReader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *BlobReader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *BlobReader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes returns a copy of the next n bytes
func (r *BlobReader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// ReadUTF16 decodes byteCount bytes of UTF-16LE text
func (r *BlobReader) ReadUTF16(byteCount int) (string, error) {
	if byteCount%2 != 0 {
		return "", fmt.Errorf("odd UTF-16 byte count %d at %d", byteCount, r.pos)
	}
	b, err := r.next(byteCount)
	if err != nil {
		return "", err
	}
	units := make([]uint16, byteCount/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units)), nil
}

// ReadUTF8Z reads a NUL terminated UTF-8 string
func (r *BlobReader) ReadUTF8Z() (string, error) {
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			text := string(r.data[r.pos:i])
			r.pos = i + 1
			return text, nil
		}
	}
	return "", fmt.Errorf("unterminated string at %d: %w", r.pos, ErrEndOfBlob)
}

// ReadCompressedUint32 reads an ECMA-335 compressed unsigned integer
func (r *BlobReader) ReadCompressedUint32() (uint32, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case first&0x80 == 0:
		return uint32(first), nil
	case first&0xC0 == 0x80:
		second, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return uint32(first&0x3F)<<8 | uint32(second), nil
	case first&0xE0 == 0xC0:
		rest, err := r.next(3)
		if err != nil {
			return 0, err
		}
		return uint32(first&0x1F)<<24 | uint32(rest[0])<<16 | uint32(rest[1])<<8 | uint32(rest[2]), nil
	}
	return 0, fmt.Errorf("invalid compressed integer prefix 0x%02X at %d", first, r.pos-1)
}

// ReadTypeDefOrRefOrSpec reads a TypeDefOrRefOrSpecEncoded coded token
func (r *BlobReader) ReadTypeDefOrRefOrSpec() (Token, error) {
	value, err := r.ReadCompressedUint32()
	if err != nil {
		return 0, err
	}
	rid := value >> 2
	switch value & 3 {
	case 0:
		return NewToken(TableTypeDef, rid), nil
	case 1:
		return NewToken(TableTypeRef, rid), nil
	case 2:
		return NewToken(TableTypeSpec, rid), nil
	}
	return 0, fmt.Errorf("invalid TypeDefOrRefOrSpec tag in 0x%X", value)
}

// CompressUint32 encodes value in ECMA-335 compressed form
func CompressUint32(value uint32) ([]byte, error) {
	switch {
	case value <= 0x7F:
		return []byte{byte(value)}, nil
	case value <= 0x3FFF:
		return []byte{byte(value>>8) | 0x80, byte(value)}, nil
	case value <= 0x1FFFFFFF:
		return []byte{byte(value>>24) | 0xC0, byte(value >> 16), byte(value >> 8), byte(value)}, nil
	}
	return nil, fmt.Errorf("value 0x%X too large to compress", value)
}
