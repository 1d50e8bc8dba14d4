package export

import (
	"fmt"

	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/signature"
	"github.com/viant/pdbscope/symbol"
)

// Method is the exported form of a method
type Method struct {
	Token string `yaml:"token"`
	Name  string `yaml:"name,omitempty"`
	Root  *Node  `yaml:"root,omitempty"`
}

// Node is the exported form of a scope
type Node struct {
	ID          string      `yaml:"id"`
	Start       int         `yaml:"start"`
	End         int         `yaml:"end"`
	ImportScope string      `yaml:"importScope,omitempty"`
	Locals      []*Local    `yaml:"locals,omitempty"`
	Constants   []*Constant `yaml:"constants,omitempty"`
	DebugInfos  []string    `yaml:"debugInfos,omitempty"`
	Children    []*Node     `yaml:"children,omitempty"`
}

// Local is the exported form of a local variable
type Local struct {
	Name       string   `yaml:"name"`
	Index      int      `yaml:"index"`
	Hidden     bool     `yaml:"hidden,omitempty"`
	DebugInfos []string `yaml:"debugInfos,omitempty"`
}

// Constant is the exported form of a local constant
type Constant struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Value      string   `yaml:"value"`
	DebugInfos []string `yaml:"debugInfos,omitempty"`
}

// Options controls what Build decodes
type Options struct {
	Module        signature.Module
	GenericParams signature.GenericParamContext
	SkipConstants bool
}

// Build converts a method and its scope tree
func Build(method *symbol.Method, options *Options) (*Method, error) {
	if options == nil {
		options = &Options{}
	}
	ret := &Method{Token: method.Token.String(), Name: method.Name}
	if method.RootScope() == nil {
		return ret, nil
	}
	root, err := buildNode(method.RootScope(), 0, options)
	if err != nil {
		return nil, err
	}
	ret.Root = root
	return ret, nil
}

func buildNode(scope *symbol.Scope, depth int, options *Options) (*Node, error) {
	id, err := nodeID(uint32(scope.Method().Token), scope.StartOffset(), scope.EndOffset(), depth)
	if err != nil {
		return nil, err
	}
	node := &Node{
		ID:         id,
		Start:      scope.StartOffset(),
		End:        scope.EndOffset(),
		DebugInfos: describe(scope.CustomDebugInfos()),
	}
	if importScope := scope.ImportScope(); importScope != nil {
		node.ImportScope = importScope.Token.String()
	}
	for _, local := range scope.Locals() {
		node.Locals = append(node.Locals, &Local{
			Name:       local.Name,
			Index:      local.Index,
			Hidden:     local.IsCompilerGenerated(),
			DebugInfos: describe(local.CustomDebugInfos),
		})
	}
	if !options.SkipConstants {
		for _, constant := range scope.GetConstants(options.Module, options.GenericParams) {
			node.Constants = append(node.Constants, &Constant{
				Name:       constant.Name,
				Type:       constant.Type.String(),
				Value:      FormatValue(constant.Value),
				DebugInfos: describe(constant.CustomDebugInfos),
			})
		}
	}
	for _, child := range scope.Children() {
		childNode, err := buildNode(child, depth+1, options)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// FormatValue renders a constant value, nil renders as null
func FormatValue(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", actual)
	case fmt.Stringer:
		return actual.String()
	}
	return fmt.Sprintf("%v", value)
}

func describe(records []debuginfo.Record) []string {
	var ret []string
	for _, record := range records {
		ret = append(ret, debuginfo.KindName(record.Kind()))
	}
	return ret
}
