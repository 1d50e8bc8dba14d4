package metadata

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Image describes the tables and heaps of a metadata image in YAML form.
// Strings and blobs are given literally and interned on Build; the *Offset fields
// override the interned reference with a raw heap offset.
type Image struct {
	LocalScopes            []ImageScope       `yaml:"localScopes,omitempty"`
	LocalVariables         []ImageVariable    `yaml:"localVariables,omitempty"`
	LocalConstants         []ImageConstant    `yaml:"localConstants,omitempty"`
	ImportScopes           []ImageImportScope `yaml:"importScopes,omitempty"`
	CustomDebugInformation []ImageDebugInfo   `yaml:"customDebugInformation,omitempty"`
	Types                  []TypeEntry        `yaml:"types,omitempty"`
	Methods                []ImageMethod      `yaml:"methods,omitempty"`
}

// ImageScope describes a LocalScope row
type ImageScope struct {
	Method       uint32 `yaml:"method"`
	ImportScope  uint32 `yaml:"importScope,omitempty"`
	VariableList uint32 `yaml:"variableList,omitempty"`
	ConstantList uint32 `yaml:"constantList,omitempty"`
	StartOffset  uint32 `yaml:"startOffset"`
	Length       uint32 `yaml:"length"`
}

// ImageVariable describes a LocalVariable row
type ImageVariable struct {
	Name       string  `yaml:"name"`
	NameOffset *uint32 `yaml:"nameOffset,omitempty"`
	Index      uint16  `yaml:"index"`
	Hidden     bool    `yaml:"hidden,omitempty"`
}

// ImageConstant describes a LocalConstant row, Signature is hex encoded
type ImageConstant struct {
	Name            string  `yaml:"name"`
	NameOffset      *uint32 `yaml:"nameOffset,omitempty"`
	Signature       string  `yaml:"signature"`
	SignatureOffset *uint32 `yaml:"signatureOffset,omitempty"`
}

// ImageImportScope describes an ImportScope row, Imports is hex encoded
type ImageImportScope struct {
	Parent  uint32 `yaml:"parent,omitempty"`
	Imports string `yaml:"imports,omitempty"`
}

// ImageDebugInfo describes a CustomDebugInformation row, Parent is token text (0x32000001), Kind a GUID and Value hex
type ImageDebugInfo struct {
	Parent      string  `yaml:"parent"`
	Kind        string  `yaml:"kind"`
	KindIndex   *uint32 `yaml:"kindIndex,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	ValueOffset *uint32 `yaml:"valueOffset,omitempty"`
}

// ImageMethod names a method rid
type ImageMethod struct {
	Rid  uint32 `yaml:"rid"`
	Name string `yaml:"name"`
}

// TypeEntry describes a type referenced from signatures
type TypeEntry struct {
	Token     string `yaml:"token"`
	Namespace string `yaml:"namespace,omitempty"`
	Name      string `yaml:"name"`
	ValueType bool   `yaml:"valueType,omitempty"`
}

// ParseToken parses the token text
func (e *TypeEntry) ParseToken() (Token, error) {
	return ParseToken(e.Token)
}

// ParseToken parses decimal or 0x prefixed token text
func ParseToken(text string) (Token, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(text), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid token %q: %w", text, err)
	}
	return Token(value), nil
}

// DecodeHex decodes hex text, whitespace is ignored
func DecodeHex(text string) ([]byte, error) {
	cleaned := strings.Join(strings.Fields(text), "")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", text, err)
	}
	return data, nil
}

// Build interns heaps and returns the store
func (i *Image) Build() (*Store, error) {
	builder := NewBuilder()
	for _, scope := range i.LocalScopes {
		builder.AddLocalScope(LocalScopeRow{
			Method:       scope.Method,
			ImportScope:  scope.ImportScope,
			VariableList: scope.VariableList,
			ConstantList: scope.ConstantList,
			StartOffset:  scope.StartOffset,
			Length:       scope.Length,
		})
	}
	for _, variable := range i.LocalVariables {
		row := LocalVariableRow{Index: variable.Index, Name: builder.AddString(variable.Name)}
		if variable.NameOffset != nil {
			row.Name = *variable.NameOffset
		}
		if variable.Hidden {
			row.Attributes |= DebuggerHidden
		}
		builder.AddLocalVariable(row)
	}
	for k, constant := range i.LocalConstants {
		row := LocalConstantRow{Name: builder.AddString(constant.Name)}
		if constant.NameOffset != nil {
			row.Name = *constant.NameOffset
		}
		if constant.SignatureOffset != nil {
			row.Signature = *constant.SignatureOffset
		} else {
			data, err := DecodeHex(constant.Signature)
			if err != nil {
				return nil, fmt.Errorf("localConstants[%d]: %w", k, err)
			}
			if row.Signature, err = builder.AddBlob(data); err != nil {
				return nil, fmt.Errorf("localConstants[%d]: %w", k, err)
			}
		}
		builder.AddLocalConstant(row)
	}
	for k, scope := range i.ImportScopes {
		data, err := DecodeHex(scope.Imports)
		if err != nil {
			return nil, fmt.Errorf("importScopes[%d]: %w", k, err)
		}
		row := ImportScopeRow{Parent: scope.Parent}
		if row.Imports, err = builder.AddBlob(data); err != nil {
			return nil, fmt.Errorf("importScopes[%d]: %w", k, err)
		}
		builder.AddImportScope(row)
	}
	for k, info := range i.CustomDebugInformation {
		parent, err := ParseToken(info.Parent)
		if err != nil {
			return nil, fmt.Errorf("customDebugInformation[%d]: %w", k, err)
		}
		row := CustomDebugInformationRow{Parent: parent}
		if info.KindIndex != nil {
			row.Kind = *info.KindIndex
		} else {
			kind, err := ParseGUID(info.Kind)
			if err != nil {
				return nil, fmt.Errorf("customDebugInformation[%d]: %w", k, err)
			}
			row.Kind = builder.AddGUID(kind)
		}
		if info.ValueOffset != nil {
			row.Value = *info.ValueOffset
		} else {
			data, err := DecodeHex(info.Value)
			if err != nil {
				return nil, fmt.Errorf("customDebugInformation[%d]: %w", k, err)
			}
			if row.Value, err = builder.AddBlob(data); err != nil {
				return nil, fmt.Errorf("customDebugInformation[%d]: %w", k, err)
			}
		}
		builder.AddCustomDebugInformation(row)
	}
	return builder.Build()
}

// LoadImage reads a YAML image from URL
func LoadImage(ctx context.Context, fs afs.Service, URL string) (*Image, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image %v: %w", URL, err)
	}
	image := &Image{}
	if err = yaml.Unmarshal(data, image); err != nil {
		return nil, fmt.Errorf("failed to decode image %v: %w", URL, err)
	}
	return image, nil
}
