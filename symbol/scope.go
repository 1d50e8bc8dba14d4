package symbol

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/signature"
)

// ConstantSource provides LocalConstant rows and the heaps they refer to
type ConstantSource interface {
	TryReadLocalConstantRow(rid uint32) (metadata.LocalConstantRow, bool)
	ReadString(offset uint32) (string, bool)
	TryCreateBlobReader(offset uint32) (*metadata.BlobReader, bool)
}

// DebugInfoResolver appends custom debug information attached to a token
type DebugInfoResolver interface {
	AppendCustomDebugInfos(token metadata.Token, gp signature.GenericParamContext, target *[]debuginfo.Record)
}

// ConstantDecoder decodes a LocalConstantSig blob, false when the blob is malformed
type ConstantDecoder func(module signature.Module, gp signature.GenericParamContext, reader *metadata.BlobReader) (*signature.TypeSig, interface{}, bool)

// ScopeOption configures a scope
type ScopeOption func(*Scope)

// WithConstantDecoder replaces the LocalConstantSig decoder
func WithConstantDecoder(decoder ConstantDecoder) ScopeOption {
	return func(s *Scope) {
		s.decode = decoder
	}
}

// WithPathMemoization caches the resolved method on every ancestor visited by Method,
// not only on the queried scope
func WithPathMemoization() ScopeOption {
	return func(s *Scope) {
		s.memoizePath = true
	}
}

// Scope represents a lexical scope of a method body.
// The tree is owned by its root; Parent is a back reference only.
type Scope struct {
	owner            DebugInfoResolver
	method           atomic.Pointer[Method]
	parent           *Scope
	startOffset      int
	endOffset        int
	children         []*Scope
	locals           []*Variable
	importScope      *ImportScope
	customDebugInfos []debuginfo.Record

	constants    ConstantSource
	constantRids metadata.RidList
	constantsSet bool
	decode       ConstantDecoder
	memoizePath  bool
}

// NewScope creates a scope, parent is nil for the root scope
func NewScope(owner DebugInfoResolver, parent *Scope, startOffset, endOffset int, customDebugInfos []debuginfo.Record, options ...ScopeOption) *Scope {
	ret := &Scope{
		owner:            owner,
		parent:           parent,
		startOffset:      startOffset,
		endOffset:        endOffset,
		customDebugInfos: customDebugInfos,
		decode:           signature.Decode,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Method returns the method owning the scope tree.
// The first call walks to the root and caches the result; a broken tree panics.
func (s *Scope) Method() *Method {
	if method := s.method.Load(); method != nil {
		return method
	}
	p := s.parent
	if p == nil {
		panic("symbol: root scope has no method")
	}
	var visited []*Scope
	for p.parent != nil {
		if s.memoizePath {
			if method := p.method.Load(); method != nil {
				return s.cache(method, visited)
			}
			visited = append(visited, p)
		}
		p = p.parent
	}
	method := p.method.Load()
	if method == nil {
		panic(fmt.Sprintf("symbol: root scope [%d, %d) has no method", p.startOffset, p.endOffset))
	}
	return s.cache(method, visited)
}

func (s *Scope) cache(method *Method, ancestors []*Scope) *Method {
	for _, ancestor := range ancestors {
		ancestor.method.CompareAndSwap(nil, method)
	}
	if !s.method.CompareAndSwap(nil, method) {
		return s.method.Load()
	}
	return method
}

// Parent returns the enclosing scope, nil for the root
func (s *Scope) Parent() *Scope { return s.parent }

// StartOffset returns the first IL offset of the scope
func (s *Scope) StartOffset() int { return s.startOffset }

// EndOffset returns the IL offset just past the scope
func (s *Scope) EndOffset() int { return s.endOffset }

// Children returns nested scopes in method body order
func (s *Scope) Children() []*Scope { return s.children }

// Locals returns local variables declared in the scope
func (s *Scope) Locals() []*Variable { return s.locals }

// Namespaces returns imported namespaces, import resolution is not supported so it is always empty
func (s *Scope) Namespaces() []*Namespace { return nil }

// CustomDebugInfos returns custom debug information attached to the scope
func (s *Scope) CustomDebugInfos() []debuginfo.Record { return s.customDebugInfos }

// ImportScope returns the import scope, may be shared with other scopes
func (s *Scope) ImportScope() *ImportScope { return s.importScope }

// AddChild appends a nested scope
func (s *Scope) AddChild(child *Scope) {
	if child.parent != s {
		panic("symbol: child scope has a different parent")
	}
	s.children = append(s.children, child)
}

// AddLocals appends local variables
func (s *Scope) AddLocals(locals ...*Variable) {
	s.locals = append(s.locals, locals...)
}

// SetImportScope sets the import scope
func (s *Scope) SetImportScope(importScope *ImportScope) {
	s.importScope = importScope
}

// SetConstants stashes the LocalConstant rows declared in the scope, it can be set once.
// source may be nil only for an empty range.
func (s *Scope) SetConstants(source ConstantSource, rids metadata.RidList) {
	if s.constantsSet {
		panic("symbol: scope constants already set")
	}
	if source == nil && rids.Len() > 0 {
		panic("symbol: scope constants have no source")
	}
	s.constants = source
	s.constantRids = rids
	s.constantsSet = true
}

// All yields the scope and its descendants in pre-order
func (s *Scope) All() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		s.walk(yield)
	}
}

func (s *Scope) walk(yield func(*Scope) bool) bool {
	if !yield(s) {
		return false
	}
	for _, child := range s.children {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}
