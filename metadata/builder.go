package metadata

import (
	"fmt"
	"sort"
)

// Builder composes an in-memory Store
type Builder struct {
	strings     []byte
	stringIndex map[string]uint32
	blobs       []byte
	blobIndex   map[string]uint32
	guids       []byte
	guidIndex   map[GUID]uint32
	tables      Tables
}

// NewBuilder creates a builder with the mandatory empty heap entries
func NewBuilder() *Builder {
	return &Builder{
		strings:     []byte{0},
		stringIndex: map[string]uint32{"": 0},
		blobs:       []byte{0},
		blobIndex:   map[string]uint32{"": 0},
		guidIndex:   map[GUID]uint32{},
	}
}

// AddString interns text and returns its #Strings offset
func (b *Builder) AddString(text string) uint32 {
	if offset, ok := b.stringIndex[text]; ok {
		return offset
	}
	offset := uint32(len(b.strings))
	b.strings = append(b.strings, text...)
	b.strings = append(b.strings, 0)
	b.stringIndex[text] = offset
	return offset
}

// AddBlob interns data and returns its #Blob offset
func (b *Builder) AddBlob(data []byte) (uint32, error) {
	if offset, ok := b.blobIndex[string(data)]; ok {
		return offset, nil
	}
	prefix, err := CompressUint32(uint32(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to add blob: %w", err)
	}
	offset := uint32(len(b.blobs))
	b.blobs = append(b.blobs, prefix...)
	b.blobs = append(b.blobs, data...)
	b.blobIndex[string(data)] = offset
	return offset, nil
}

// AddGUID interns guid and returns its 1-based #GUID index
func (b *Builder) AddGUID(guid GUID) uint32 {
	if index, ok := b.guidIndex[guid]; ok {
		return index
	}
	b.guids = append(b.guids, guid[:]...)
	index := uint32(len(b.guids) / 16)
	b.guidIndex[guid] = index
	return index
}

// AddLocalScope appends a row and returns its rid
func (b *Builder) AddLocalScope(row LocalScopeRow) uint32 {
	b.tables.LocalScopes = append(b.tables.LocalScopes, row)
	return uint32(len(b.tables.LocalScopes))
}

// AddLocalVariable appends a row and returns its rid
func (b *Builder) AddLocalVariable(row LocalVariableRow) uint32 {
	b.tables.LocalVariables = append(b.tables.LocalVariables, row)
	return uint32(len(b.tables.LocalVariables))
}

// AddLocalConstant appends a row and returns its rid
func (b *Builder) AddLocalConstant(row LocalConstantRow) uint32 {
	b.tables.LocalConstants = append(b.tables.LocalConstants, row)
	return uint32(len(b.tables.LocalConstants))
}

// AddImportScope appends a row and returns its rid
func (b *Builder) AddImportScope(row ImportScopeRow) uint32 {
	b.tables.ImportScopes = append(b.tables.ImportScopes, row)
	return uint32(len(b.tables.ImportScopes))
}

// AddCustomDebugInformation appends a row, rows are ordered by parent on Build
func (b *Builder) AddCustomDebugInformation(row CustomDebugInformationRow) {
	b.tables.CustomDebugInformation = append(b.tables.CustomDebugInformation, row)
}

// Build validates table ordering and returns the store
func (b *Builder) Build() (*Store, error) {
	scopes := b.tables.LocalScopes
	for i := 1; i < len(scopes); i++ {
		prev, cur := &scopes[i-1], &scopes[i]
		if cur.Method < prev.Method ||
			(cur.Method == prev.Method && cur.StartOffset < prev.StartOffset) ||
			(cur.Method == prev.Method && cur.StartOffset == prev.StartOffset && cur.Length > prev.Length) {
			return nil, fmt.Errorf("LocalScope row %d is out of order", i+1)
		}
	}
	for i, row := range scopes {
		if row.Method == 0 {
			return nil, fmt.Errorf("LocalScope row %d has no method", i+1)
		}
		if !row.HasValidRange() {
			return nil, fmt.Errorf("LocalScope row %d [%d, +%d): %w", i+1, row.StartOffset, row.Length, ErrScopeRange)
		}
	}
	tables := b.tables
	tables.LocalScopes = append([]LocalScopeRow{}, b.tables.LocalScopes...)
	tables.LocalVariables = append([]LocalVariableRow{}, b.tables.LocalVariables...)
	tables.LocalConstants = append([]LocalConstantRow{}, b.tables.LocalConstants...)
	tables.ImportScopes = append([]ImportScopeRow{}, b.tables.ImportScopes...)
	tables.CustomDebugInformation = append([]CustomDebugInformationRow{}, b.tables.CustomDebugInformation...)
	sort.SliceStable(tables.CustomDebugInformation, func(i, j int) bool {
		return tables.CustomDebugInformation[i].Parent < tables.CustomDebugInformation[j].Parent
	})
	return NewStore(&tables,
		NewStringsHeap(append([]byte{}, b.strings...)),
		NewBlobHeap(append([]byte{}, b.blobs...)),
		NewGUIDHeap(append([]byte{}, b.guids...))), nil
}
