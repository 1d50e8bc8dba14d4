package symbol

import (
	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/metadata"
)

// Variable represents a local variable
type Variable struct {
	Name             string
	Index            int
	Attributes       metadata.LocalVariableAttributes
	CustomDebugInfos []debuginfo.Record
}

// IsCompilerGenerated returns true for DebuggerHidden locals
func (v *Variable) IsCompilerGenerated() bool {
	return v.Attributes&metadata.DebuggerHidden != 0
}

// ImportScope represents a shared import scope, imports themselves are not resolved
type ImportScope struct {
	Token            metadata.Token
	Parent           *ImportScope
	CustomDebugInfos []debuginfo.Record
}

// Namespace represents an imported namespace
type Namespace struct {
	Name string
}
