package metadata

import (
	"errors"
	"math"
)

// ErrScopeRange is returned for a LocalScope row whose end offset does not fit 32 bits
var ErrScopeRange = errors.New("scope end offset exceeds IL offset range")

// LocalScopeRow represents a LocalScope table row
type LocalScopeRow struct {
	Method       uint32
	ImportScope  uint32
	VariableList uint32
	ConstantList uint32
	StartOffset  uint32
	Length       uint32
}

// EndOffset returns the exclusive end of the scope, it wraps when HasValidRange is false
func (r *LocalScopeRow) EndOffset() uint32 {
	return r.StartOffset + r.Length
}

// HasValidRange returns true if StartOffset+Length fits 32 bits
func (r *LocalScopeRow) HasValidRange() bool {
	return r.Length <= math.MaxUint32-r.StartOffset
}

// LocalVariableAttributes represents LocalVariable flags
type LocalVariableAttributes uint16

// DebuggerHidden marks compiler generated locals
const DebuggerHidden LocalVariableAttributes = 0x0001

// LocalVariableRow represents a LocalVariable table row
type LocalVariableRow struct {
	Attributes LocalVariableAttributes
	Index      uint16
	Name       uint32 // #Strings offset
}

// LocalConstantRow represents a LocalConstant table row
type LocalConstantRow struct {
	Name      uint32 // #Strings offset
	Signature uint32 // #Blob offset
}

// ImportScopeRow represents an ImportScope table row
type ImportScopeRow struct {
	Parent  uint32
	Imports uint32 // #Blob offset
}

// CustomDebugInformationRow represents a CustomDebugInformation table row
type CustomDebugInformationRow struct {
	Parent Token
	Kind   uint32 // #GUID index
	Value  uint32 // #Blob offset
}
