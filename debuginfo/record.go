package debuginfo

import (
	"fmt"
	"math"

	"github.com/viant/pdbscope/metadata"
)

// Record represents one custom debug information entry
type Record interface {
	Kind() metadata.GUID
}

// Unknown holds the raw value of a kind without a decoder
type Unknown struct {
	GUID metadata.GUID
	Data []byte
}

func (r *Unknown) Kind() metadata.GUID { return r.GUID }

// HoistedScope is an IL range of a local hoisted into a state machine field, zero range means synthesized
type HoistedScope struct {
	StartOffset uint32
	EndOffset   uint32
}

// StateMachineHoistedLocalScopes lists scopes of hoisted locals by slot
type StateMachineHoistedLocalScopes struct {
	Scopes []HoistedScope
}

func (r *StateMachineHoistedLocalScopes) Kind() metadata.GUID { return KindStateMachineHoistedLocalScopes }

// DynamicLocalVariables flags dynamic type positions
type DynamicLocalVariables struct {
	Flags []bool
}

func (r *DynamicLocalVariables) Kind() metadata.GUID { return KindDynamicLocalVariables }

// TupleElementNames lists tuple element names, empty means unnamed
type TupleElementNames struct {
	Names []string
}

func (r *TupleElementNames) Kind() metadata.GUID { return KindTupleElementNames }

// DefaultNamespace holds the VB default namespace
type DefaultNamespace struct {
	Namespace string
}

func (r *DefaultNamespace) Kind() metadata.GUID { return KindDefaultNamespace }

// SourceLink holds the source link JSON document
type SourceLink struct {
	JSON []byte
}

func (r *SourceLink) Kind() metadata.GUID { return KindSourceLink }

// Raw keeps undecoded data of a well known kind (edit and continue maps, embedded source, compilation info)
type Raw struct {
	GUID metadata.GUID
	Data []byte
}

func (r *Raw) Kind() metadata.GUID { return r.GUID }

// Decode decodes a record value of kind
func Decode(kind metadata.GUID, reader *metadata.BlobReader) (Record, error) {
	switch kind {
	case KindStateMachineHoistedLocalScopes:
		if reader.Remaining()%8 != 0 {
			return nil, fmt.Errorf("invalid hoisted local scopes size: %d", reader.Remaining())
		}
		ret := &StateMachineHoistedLocalScopes{}
		for reader.Remaining() > 0 {
			start, err := reader.ReadUint32()
			if err != nil {
				return nil, err
			}
			length, err := reader.ReadUint32()
			if err != nil {
				return nil, err
			}
			if length > math.MaxUint32-start {
				return nil, fmt.Errorf("hoisted scope at %d with length %d exceeds IL offset range", start, length)
			}
			ret.Scopes = append(ret.Scopes, HoistedScope{StartOffset: start, EndOffset: start + length})
		}
		return ret, nil
	case KindDynamicLocalVariables:
		data, err := reader.ReadBytes(reader.Remaining())
		if err != nil {
			return nil, err
		}
		ret := &DynamicLocalVariables{Flags: make([]bool, len(data)*8)}
		for i := range ret.Flags {
			ret.Flags[i] = data[i/8]&(1<<(i%8)) != 0
		}
		return ret, nil
	case KindTupleElementNames:
		ret := &TupleElementNames{}
		for reader.Remaining() > 0 {
			name, err := reader.ReadUTF8Z()
			if err != nil {
				return nil, err
			}
			ret.Names = append(ret.Names, name)
		}
		return ret, nil
	case KindDefaultNamespace:
		data, err := reader.ReadBytes(reader.Remaining())
		if err != nil {
			return nil, err
		}
		return &DefaultNamespace{Namespace: string(data)}, nil
	case KindSourceLink:
		data, err := reader.ReadBytes(reader.Remaining())
		if err != nil {
			return nil, err
		}
		return &SourceLink{JSON: data}, nil
	}
	data, err := reader.ReadBytes(reader.Remaining())
	if err != nil {
		return nil, err
	}
	if _, ok := kindNames[kind]; ok {
		return &Raw{GUID: kind, Data: data}, nil
	}
	return &Unknown{GUID: kind, Data: data}, nil
}
