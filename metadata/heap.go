package metadata

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// StringsHeap represents the #Strings heap
type StringsHeap struct {
	data []byte
}

// NewStringsHeap creates a strings heap
func NewStringsHeap(data []byte) *StringsHeap {
	return &StringsHeap{data: data}
}

// Read returns the NUL terminated string at offset, false if offset is out of range or unterminated
func (h *StringsHeap) Read(offset uint32) (string, bool) {
	if h == nil || uint64(offset) >= uint64(len(h.data)) {
		return "", false
	}
	tail := h.data[offset:]
	end := bytes.IndexByte(tail, 0)
	if end == -1 {
		return "", false
	}
	return string(tail[:end]), true
}

// BlobHeap represents the #Blob heap
type BlobHeap struct {
	data []byte
}

// NewBlobHeap creates a blob heap
func NewBlobHeap(data []byte) *BlobHeap {
	return &BlobHeap{data: data}
}

// TryCreateReader returns a reader over the blob at offset
func (h *BlobHeap) TryCreateReader(offset uint32) (*BlobReader, bool) {
	if h == nil || uint64(offset) >= uint64(len(h.data)) {
		return nil, false
	}
	prefix := NewBlobReader(h.data[offset:])
	size, err := prefix.ReadCompressedUint32()
	if err != nil {
		return nil, false
	}
	if uint64(size) > uint64(prefix.Remaining()) {
		return nil, false
	}
	start := int(offset) + prefix.Position()
	return NewBlobReader(h.data[start : start+int(size)]), true
}

// Read returns a copy of the blob at offset
func (h *BlobHeap) Read(offset uint32) ([]byte, error) {
	reader, ok := h.TryCreateReader(offset)
	if !ok {
		return nil, fmt.Errorf("invalid blob offset: %d", offset)
	}
	return reader.ReadBytes(reader.Remaining())
}

// GUID represents a 16 byte GUID in its on-disk layout
type GUID [16]byte

// ParseGUID parses the canonical 8-4-4-4-12 text form
func ParseGUID(text string) (GUID, error) {
	var result GUID
	raw, err := uuid.Parse(text)
	if err != nil {
		return result, fmt.Errorf("invalid guid: %q: %w", text, err)
	}
	// first three groups are little endian on disk
	result[0], result[1], result[2], result[3] = raw[3], raw[2], raw[1], raw[0]
	result[4], result[5] = raw[5], raw[4]
	result[6], result[7] = raw[7], raw[6]
	copy(result[8:], raw[8:])
	return result, nil
}

// MustParseGUID parses text or panics
func MustParseGUID(text string) GUID {
	guid, err := ParseGUID(text)
	if err != nil {
		panic(err)
	}
	return guid
}

func (g GUID) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g[3], g[2], g[1], g[0], g[5], g[4], g[7], g[6],
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
}

// GUIDHeap represents the #GUID heap, indexes are 1-based
type GUIDHeap struct {
	data []byte
}

// NewGUIDHeap creates a GUID heap
func NewGUIDHeap(data []byte) *GUIDHeap {
	return &GUIDHeap{data: data}
}

// Read returns the GUID at index
func (h *GUIDHeap) Read(index uint32) (GUID, bool) {
	var result GUID
	if h == nil || index == 0 || uint64(index)*16 > uint64(len(h.data)) {
		return result, false
	}
	copy(result[:], h.data[(index-1)*16:index*16])
	return result, true
}
