package debuginfo

import (
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/signature"
)

// Source provides the CustomDebugInformation table and the heaps it refers to
type Source interface {
	CustomDebugInformationRids(parent metadata.Token) metadata.RidList
	TryReadCustomDebugInformationRow(rid uint32) (metadata.CustomDebugInformationRow, bool)
	ReadGUID(index uint32) (metadata.GUID, bool)
	TryCreateBlobReader(offset uint32) (*metadata.BlobReader, bool)
}

// Resolver looks up custom debug information by parent token
type Resolver struct {
	source Source
}

// NewResolver creates a resolver
func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// AppendCustomDebugInfos appends the decoded records attached to token, in table order.
// Rows with an unreadable kind or value are skipped, a null token has no records.
func (r *Resolver) AppendCustomDebugInfos(token metadata.Token, gp signature.GenericParamContext, target *[]Record) {
	if token.IsNull() {
		return
	}
	for rid := range r.source.CustomDebugInformationRids(token).All() {
		row, ok := r.source.TryReadCustomDebugInformationRow(rid)
		if !ok {
			continue
		}
		kind, ok := r.source.ReadGUID(row.Kind)
		if !ok {
			continue
		}
		reader, ok := r.source.TryCreateBlobReader(row.Value)
		if !ok {
			continue
		}
		record, err := Decode(kind, reader)
		if err != nil {
			continue
		}
		*target = append(*target, record)
	}
}

// CustomDebugInfos returns the decoded records attached to token
func (r *Resolver) CustomDebugInfos(token metadata.Token, gp signature.GenericParamContext) []Record {
	var ret []Record
	r.AppendCustomDebugInfos(token, gp, &ret)
	return ret
}
