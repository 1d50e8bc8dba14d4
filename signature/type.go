package signature

import (
	"strings"

	"github.com/viant/pdbscope/metadata"
)

// TypeRef represents a resolved TypeDef, TypeRef or TypeSpec
type TypeRef struct {
	Token     metadata.Token
	Namespace string
	Name      string
	ValueType bool
}

// FullName returns namespace qualified name
func (t *TypeRef) FullName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// Modifier represents a custom modifier
type Modifier struct {
	Required bool
	Type     *TypeRef
}

// TypeSig describes the declared type of a local constant
type TypeSig struct {
	ElementType ElementType
	Type        *TypeRef // set for class, valuetype and enum constants
	Modifiers   []Modifier
}

func (s *TypeSig) String() string {
	builder := strings.Builder{}
	if s.Type != nil {
		builder.WriteString(s.Type.FullName())
	} else {
		builder.WriteString(s.ElementType.String())
	}
	for _, modifier := range s.Modifiers {
		if modifier.Required {
			builder.WriteString(" modreq(")
		} else {
			builder.WriteString(" modopt(")
		}
		builder.WriteString(modifier.Type.FullName())
		builder.WriteString(")")
	}
	return builder.String()
}

// GenericParamContext identifies the generic type and method in effect while decoding
type GenericParamContext struct {
	Type   metadata.Token
	Method metadata.Token
}

// Module resolves TypeDefOrRefOrSpec tokens
type Module interface {
	ResolveTypeDefOrRef(token metadata.Token, gp GenericParamContext) (*TypeRef, bool)
}
