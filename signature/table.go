package signature

import (
	"fmt"

	"github.com/viant/pdbscope/metadata"
)

// TypeTable is a map backed Module
type TypeTable struct {
	types map[metadata.Token]*TypeRef
}

// NewTypeTable creates a type table
func NewTypeTable(types ...*TypeRef) *TypeTable {
	ret := &TypeTable{types: make(map[metadata.Token]*TypeRef, len(types))}
	for _, t := range types {
		ret.Add(t)
	}
	return ret
}

// NewTypeTableFromEntries creates a type table from image entries
func NewTypeTableFromEntries(entries []metadata.TypeEntry) (*TypeTable, error) {
	ret := NewTypeTable()
	for i := range entries {
		token, err := entries[i].ParseToken()
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		switch token.Table() {
		case metadata.TableTypeDef, metadata.TableTypeRef, metadata.TableTypeSpec:
		default:
			return nil, fmt.Errorf("types[%d]: %v is not a type token", i, token)
		}
		ret.Add(&TypeRef{Token: token, Namespace: entries[i].Namespace, Name: entries[i].Name, ValueType: entries[i].ValueType})
	}
	return ret, nil
}

// Add registers a type
func (t *TypeTable) Add(typeRef *TypeRef) {
	t.types[typeRef.Token] = typeRef
}

// ResolveTypeDefOrRef returns the registered type
func (t *TypeTable) ResolveTypeDefOrRef(token metadata.Token, _ GenericParamContext) (*TypeRef, bool) {
	ret, ok := t.types[token]
	return ret, ok
}
