package debuginfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/signature"
)

func TestDecode(t *testing.T) {
	unknownKind := metadata.MustParseGUID("11111111-2222-3333-4444-555555555555")
	tests := []struct {
		name   string
		kind   metadata.GUID
		data   []byte
		expect debuginfo.Record
	}{
		{
			name:   "hoisted local scopes",
			kind:   debuginfo.KindStateMachineHoistedLocalScopes,
			data:   []byte{0, 0, 0, 0, 10, 0, 0, 0, 4, 0, 0, 0, 2, 0, 0, 0},
			expect: &debuginfo.StateMachineHoistedLocalScopes{Scopes: []debuginfo.HoistedScope{{StartOffset: 0, EndOffset: 10}, {StartOffset: 4, EndOffset: 6}}},
		},
		{
			name:   "dynamic locals",
			kind:   debuginfo.KindDynamicLocalVariables,
			data:   []byte{0x05},
			expect: &debuginfo.DynamicLocalVariables{Flags: []bool{true, false, true, false, false, false, false, false}},
		},
		{
			name:   "tuple element names",
			kind:   debuginfo.KindTupleElementNames,
			data:   []byte{'a', 0, 0, 'b', 'c', 0},
			expect: &debuginfo.TupleElementNames{Names: []string{"a", "", "bc"}},
		},
		{
			name:   "default namespace",
			kind:   debuginfo.KindDefaultNamespace,
			data:   []byte("App.Core"),
			expect: &debuginfo.DefaultNamespace{Namespace: "App.Core"},
		},
		{
			name:   "source link",
			kind:   debuginfo.KindSourceLink,
			data:   []byte(`{"documents":{}}`),
			expect: &debuginfo.SourceLink{JSON: []byte(`{"documents":{}}`)},
		},
		{
			name:   "raw well known",
			kind:   debuginfo.KindEditAndContinueLocalSlotMap,
			data:   []byte{1, 2},
			expect: &debuginfo.Raw{GUID: debuginfo.KindEditAndContinueLocalSlotMap, Data: []byte{1, 2}},
		},
		{
			name:   "unknown",
			kind:   unknownKind,
			data:   []byte{9},
			expect: &debuginfo.Unknown{GUID: unknownKind, Data: []byte{9}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := debuginfo.Decode(tt.kind, metadata.NewBlobReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, actual)
			assert.Equal(t, tt.kind, actual.Kind())
		})
	}

	_, err := debuginfo.Decode(debuginfo.KindStateMachineHoistedLocalScopes, metadata.NewBlobReader([]byte{1, 2, 3}))
	assert.Error(t, err)
	_, err = debuginfo.Decode(debuginfo.KindTupleElementNames, metadata.NewBlobReader([]byte{'a'}))
	assert.Error(t, err)
	_, err = debuginfo.Decode(debuginfo.KindStateMachineHoistedLocalScopes, metadata.NewBlobReader([]byte{0xF0, 0xFF, 0xFF, 0xFF, 0x20, 0, 0, 0}))
	assert.Error(t, err, "end offset past uint32 range")
	actual, err := debuginfo.Decode(debuginfo.KindStateMachineHoistedLocalScopes, metadata.NewBlobReader([]byte{0xF0, 0xFF, 0xFF, 0xFF, 0x0F, 0, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, &debuginfo.StateMachineHoistedLocalScopes{Scopes: []debuginfo.HoistedScope{{StartOffset: 0xFFFFFFF0, EndOffset: 0xFFFFFFFF}}}, actual)
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "TupleElementNames", debuginfo.KindName(debuginfo.KindTupleElementNames))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", debuginfo.KindName(metadata.MustParseGUID("11111111-2222-3333-4444-555555555555")))
}

func TestResolver_AppendCustomDebugInfos(t *testing.T) {
	builder := metadata.NewBuilder()
	scope := metadata.NewToken(metadata.TableLocalScope, 1)
	constant := metadata.NewToken(metadata.TableLocalConstant, 2)
	namespaceBlob, err := builder.AddBlob([]byte("App"))
	require.NoError(t, err)
	tupleBlob, err := builder.AddBlob([]byte{'x', 0})
	require.NoError(t, err)
	badTupleBlob, err := builder.AddBlob([]byte{'x'})
	require.NoError(t, err)
	namespaceKind := builder.AddGUID(debuginfo.KindDefaultNamespace)
	tupleKind := builder.AddGUID(debuginfo.KindTupleElementNames)
	hoistedKind := builder.AddGUID(debuginfo.KindStateMachineHoistedLocalScopes)
	overflowBlob, err := builder.AddBlob([]byte{0xF0, 0xFF, 0xFF, 0xFF, 0x20, 0, 0, 0})
	require.NoError(t, err)

	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: constant, Kind: tupleKind, Value: tupleBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: namespaceKind, Value: namespaceBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: 99, Value: namespaceBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: tupleKind, Value: 5000})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: tupleKind, Value: badTupleBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: hoistedKind, Value: overflowBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: scope, Kind: tupleKind, Value: tupleBlob})
	builder.AddCustomDebugInformation(metadata.CustomDebugInformationRow{Parent: metadata.NewToken(metadata.TableLocalScope, 0), Kind: namespaceKind, Value: namespaceBlob})
	store, err := builder.Build()
	require.NoError(t, err)

	resolver := debuginfo.NewResolver(store)
	actual := resolver.CustomDebugInfos(scope, signature.GenericParamContext{})
	assert.Equal(t, []debuginfo.Record{
		&debuginfo.DefaultNamespace{Namespace: "App"},
		&debuginfo.TupleElementNames{Names: []string{"x"}},
	}, actual, "unreadable rows are skipped")

	target := []debuginfo.Record{&debuginfo.DefaultNamespace{Namespace: "existing"}}
	resolver.AppendCustomDebugInfos(constant, signature.GenericParamContext{}, &target)
	assert.Len(t, target, 2)
	assert.Equal(t, &debuginfo.TupleElementNames{Names: []string{"x"}}, target[1])

	assert.Empty(t, resolver.CustomDebugInfos(metadata.NewToken(metadata.TableLocalVariable, 1), signature.GenericParamContext{}))
	assert.Empty(t, resolver.CustomDebugInfos(metadata.NewToken(metadata.TableLocalScope, 0), signature.GenericParamContext{}), "null token has no records")
}
