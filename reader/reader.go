package reader

import (
	"errors"
	"fmt"

	"github.com/viant/pdbscope/config"
	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/signature"
	"github.com/viant/pdbscope/symbol"
)

// ErrDisjointScope is returned when a method has more than one outermost scope
var ErrDisjointScope = errors.New("scope is not nested in the method root scope")

// GenericContext is the generic parameter context of the method being read
type GenericContext = signature.GenericParamContext

// Reader builds scope trees from portable PDB tables
type Reader struct {
	store       *metadata.Store
	resolver    *debuginfo.Resolver
	config      *config.Config
	gp          GenericContext
	importScope map[uint32]*symbol.ImportScope
}

// New creates a reader, a nil resolver is created over the store
func New(store *metadata.Store, resolver *debuginfo.Resolver, options ...Option) *Reader {
	if resolver == nil {
		resolver = debuginfo.NewResolver(store)
	}
	ret := &Reader{
		store:       store,
		resolver:    resolver,
		config:      config.DefaultConfig(),
		importScope: map[uint32]*symbol.ImportScope{},
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// ReadMethod reads the scopes of a method, the root scope is nil when the method has none
func (r *Reader) ReadMethod(methodRid uint32, name string) (*symbol.Method, error) {
	root, err := r.ReadScope(methodRid)
	if err != nil {
		return nil, err
	}
	return symbol.NewMethod(metadata.NewToken(metadata.TableMethod, methodRid), name, root), nil
}

// ReadScope builds the scope tree of a method.
// Rows are ordered by start offset with enclosing scopes first, so each row nests in the
// nearest scope on the stack whose range contains it.
func (r *Reader) ReadScope(methodRid uint32) (*symbol.Scope, error) {
	rids := r.store.LocalScopeRids(methodRid)
	if rids.Len() == 0 {
		return nil, nil
	}
	var options []symbol.ScopeOption
	if r.config.MemoizePath {
		options = append(options, symbol.WithPathMemoization())
	}
	var root *symbol.Scope
	var stack []*symbol.Scope
	for rid := range rids.All() {
		row, ok := r.store.TryReadLocalScopeRow(rid)
		if !ok {
			return nil, fmt.Errorf("failed to read LocalScope row %d", rid)
		}
		if !row.HasValidRange() {
			return nil, fmt.Errorf("method %d, LocalScope row %d [%d, +%d): %w", methodRid, rid, row.StartOffset, row.Length, metadata.ErrScopeRange)
		}
		startOffset, endOffset := int(row.StartOffset), int(row.EndOffset())
		var parent *symbol.Scope
		for len(stack) > 0 {
			candidate := stack[len(stack)-1]
			if startOffset >= candidate.StartOffset() && endOffset <= candidate.EndOffset() {
				parent = candidate
				break
			}
			stack = stack[:len(stack)-1]
		}
		if parent == nil && root != nil {
			return nil, fmt.Errorf("method %d, LocalScope row %d [%d, %d): %w", methodRid, rid, startOffset, endOffset, ErrDisjointScope)
		}
		token := metadata.NewToken(metadata.TableLocalScope, rid)
		scope := symbol.NewScope(r.resolver, parent, startOffset, endOffset, r.resolver.CustomDebugInfos(token, r.gp), options...)
		if root == nil {
			root = scope
		}
		stack = append(stack, scope)
		if parent != nil {
			parent.AddChild(scope)
		}
		importScope, err := r.readImportScope(row.ImportScope)
		if err != nil {
			return nil, err
		}
		scope.SetImportScope(importScope)
		locals, err := r.readVariables(r.store.LocalVariableRids(rid))
		if err != nil {
			return nil, err
		}
		scope.AddLocals(locals...)
		scope.SetConstants(r.store, r.store.LocalConstantRids(rid))
	}
	return root, nil
}

func (r *Reader) readVariables(rids metadata.RidList) ([]*symbol.Variable, error) {
	var ret []*symbol.Variable
	for rid := range rids.All() {
		row, ok := r.store.TryReadLocalVariableRow(rid)
		if !ok {
			return nil, fmt.Errorf("failed to read LocalVariable row %d", rid)
		}
		variable := &symbol.Variable{Index: int(row.Index), Attributes: row.Attributes}
		if variable.IsCompilerGenerated() && r.config.SkipHiddenLocals {
			continue
		}
		variable.Name, _ = r.store.ReadString(row.Name)
		token := metadata.NewToken(metadata.TableLocalVariable, rid)
		r.resolver.AppendCustomDebugInfos(token, r.gp, &variable.CustomDebugInfos)
		ret = append(ret, variable)
	}
	return ret, nil
}

// readImportScope returns the shared import scope chain of rid, nil for rid 0
func (r *Reader) readImportScope(rid uint32) (*symbol.ImportScope, error) {
	if rid == 0 {
		return nil, nil
	}
	if ret, ok := r.importScope[rid]; ok {
		return ret, nil
	}
	var chain []uint32
	seen := map[uint32]bool{}
	for next := rid; next != 0; {
		if _, ok := r.importScope[next]; ok {
			break
		}
		if seen[next] {
			return nil, fmt.Errorf("import scope %d has a cyclic parent chain", rid)
		}
		seen[next] = true
		row, ok := r.store.TryReadImportScopeRow(next)
		if !ok {
			return nil, fmt.Errorf("failed to read ImportScope row %d", next)
		}
		chain = append(chain, next)
		next = row.Parent
	}
	for i := len(chain) - 1; i >= 0; i-- {
		current := chain[i]
		row, _ := r.store.TryReadImportScopeRow(current)
		token := metadata.NewToken(metadata.TableImportScope, current)
		r.importScope[current] = &symbol.ImportScope{
			Token:            token,
			Parent:           r.importScope[row.Parent],
			CustomDebugInfos: r.resolver.CustomDebugInfos(token, r.gp),
		}
	}
	return r.importScope[rid], nil
}
