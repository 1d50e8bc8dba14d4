package metadata_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/pdbscope/metadata"
)

func TestLoadImage(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "image.yaml"))
	require.NoError(t, err)
	image, err := metadata.LoadImage(context.Background(), afs.New(), location)
	require.NoError(t, err)
	require.Len(t, image.LocalScopes, 2)
	require.Len(t, image.Methods, 1)
	assert.Equal(t, "Compute", image.Methods[0].Name)
	assert.Len(t, image.Types, 1)

	store, err := image.Build()
	require.NoError(t, err)

	rids := store.LocalScopeRids(1)
	assert.Equal(t, metadata.NewRidList(1, 2), rids)
	assert.Equal(t, metadata.NewRidList(1, 2), store.LocalConstantRids(1))
	assert.Equal(t, metadata.NewRidList(3, 1), store.LocalConstantRids(2))

	variable, ok := store.TryReadLocalVariableRow(2)
	require.True(t, ok)
	assert.Equal(t, metadata.DebuggerHidden, variable.Attributes)
	name, ok := store.ReadString(variable.Name)
	assert.True(t, ok)
	assert.Equal(t, "CS$0$0000", name)

	broken, ok := store.TryReadLocalConstantRow(2)
	require.True(t, ok)
	assert.EqualValues(t, 200, broken.Signature)
	_, ok = store.TryCreateBlobReader(broken.Signature)
	assert.False(t, ok)

	greeting, ok := store.TryReadLocalConstantRow(3)
	require.True(t, ok)
	blob, err := store.Blobs.Read(greeting.Signature)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0e, 0x68, 0x00, 0x69, 0x00}, blob)

	cdi := store.CustomDebugInformationRids(metadata.NewToken(metadata.TableLocalScope, 1))
	require.Equal(t, 1, cdi.Len())
	row, ok := store.TryReadCustomDebugInformationRow(cdi.Start)
	require.True(t, ok)
	kind, ok := store.ReadGUID(row.Kind)
	assert.True(t, ok)
	assert.Equal(t, "6DA9A61E-F8C7-4874-BE62-68BC5630DF71", kind.String())
}

func TestImage_Build_Errors(t *testing.T) {
	tests := []struct {
		name  string
		image *metadata.Image
	}{
		{name: "constant hex", image: &metadata.Image{LocalConstants: []metadata.ImageConstant{{Name: "x", Signature: "zz"}}}},
		{name: "import hex", image: &metadata.Image{ImportScopes: []metadata.ImageImportScope{{Imports: "0"}}}},
		{name: "debug info parent", image: &metadata.Image{CustomDebugInformation: []metadata.ImageDebugInfo{{Parent: "scope", Kind: "6DA9A61E-F8C7-4874-BE62-68BC5630DF71"}}}},
		{name: "debug info kind", image: &metadata.Image{CustomDebugInformation: []metadata.ImageDebugInfo{{Parent: "0x32000001", Kind: "hoisted"}}}},
		{name: "scope order", image: &metadata.Image{LocalScopes: []metadata.ImageScope{{Method: 2}, {Method: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.image.Build()
			assert.Error(t, err)
		})
	}
}

func TestLoadImage_Missing(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "missing.yaml"))
	require.NoError(t, err)
	_, err = metadata.LoadImage(context.Background(), afs.New(), location)
	assert.Error(t, err)
}
