package debuginfo

import "github.com/viant/pdbscope/metadata"

// Well known custom debug information kinds
var (
	KindStateMachineHoistedLocalScopes = metadata.MustParseGUID("6DA9A61E-F8C7-4874-BE62-68BC5630DF71")
	KindDynamicLocalVariables          = metadata.MustParseGUID("83C563C4-B4F3-47D5-B824-BA5441477EA8")
	KindDefaultNamespace               = metadata.MustParseGUID("58B2EAB6-209F-4E4E-A22C-B2D0F910C782")
	KindEditAndContinueLocalSlotMap    = metadata.MustParseGUID("755F52A8-91C5-45BE-B4B8-209571E552BD")
	KindEditAndContinueLambdaMap       = metadata.MustParseGUID("A643004C-0240-496F-A783-30D64F4979DE")
	KindEmbeddedSource                 = metadata.MustParseGUID("0E8A571B-6926-466E-B4AD-8AB04611F5FE")
	KindSourceLink                     = metadata.MustParseGUID("CC110556-A091-4D38-9FEC-25AB9A351A6A")
	KindTupleElementNames              = metadata.MustParseGUID("ED9FDF71-8879-4747-8ED3-FE5EDE3CE710")
	KindCompilationMetadataReferences  = metadata.MustParseGUID("7E4D4708-096E-4C5C-AEDA-CB10BA6A740D")
	KindCompilationOptions             = metadata.MustParseGUID("B5FEEC05-8CD0-4A83-96DA-466284BB4BD8")
)

var kindNames = map[metadata.GUID]string{
	KindStateMachineHoistedLocalScopes: "StateMachineHoistedLocalScopes",
	KindDynamicLocalVariables:          "DynamicLocalVariables",
	KindDefaultNamespace:               "DefaultNamespace",
	KindEditAndContinueLocalSlotMap:    "EditAndContinueLocalSlotMap",
	KindEditAndContinueLambdaMap:       "EditAndContinueLambdaMap",
	KindEmbeddedSource:                 "EmbeddedSource",
	KindSourceLink:                     "SourceLink",
	KindTupleElementNames:              "TupleElementNames",
	KindCompilationMetadataReferences:  "CompilationMetadataReferences",
	KindCompilationOptions:             "CompilationOptions",
}

// KindName returns the name of a well known kind or its GUID text
func KindName(kind metadata.GUID) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return kind.String()
}
