package symbol

import "github.com/viant/pdbscope/metadata"

// Method represents a method with debug information
type Method struct {
	Token     metadata.Token
	Name      string
	rootScope *Scope
}

// NewMethod creates a method, root may be nil when the method has no scopes
func NewMethod(token metadata.Token, name string, root *Scope) *Method {
	ret := &Method{Token: token, Name: name}
	if root != nil {
		ret.SetRootScope(root)
	}
	return ret
}

// RootScope returns the outermost scope
func (m *Method) RootScope() *Scope {
	return m.rootScope
}

// SetRootScope makes root the method's outermost scope and assigns the method to it
func (m *Method) SetRootScope(root *Scope) {
	if root.parent != nil {
		panic("symbol: root scope has a parent")
	}
	m.rootScope = root
	root.method.Store(m)
}
