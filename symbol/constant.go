package symbol

import (
	"fmt"

	"github.com/viant/pdbscope/debuginfo"
	"github.com/viant/pdbscope/metadata"
	"github.com/viant/pdbscope/signature"
)

// Constant represents a local constant
type Constant struct {
	Name             string
	Type             *signature.TypeSig
	Value            interface{}
	CustomDebugInfos []debuginfo.Record
}

// GetConstants decodes the constants declared directly in the scope, in row order.
// Rows with a missing name, an unreadable blob or a malformed signature are left out.
func (s *Scope) GetConstants(module signature.Module, gp signature.GenericParamContext) []*Constant {
	if s.constantRids.Len() == 0 {
		return nil
	}
	if s.constants == nil {
		panic("symbol: constant rids without a source")
	}
	ret := make([]*Constant, 0, s.constantRids.Len())
	for rid := range s.constantRids.All() {
		row, ok := s.constants.TryReadLocalConstantRow(rid)
		if !ok {
			panic(fmt.Sprintf("symbol: LocalConstant row %d is missing", rid))
		}
		name, ok := s.constants.ReadString(row.Name)
		if !ok {
			continue
		}
		reader, ok := s.constants.TryCreateBlobReader(row.Signature)
		if !ok {
			continue
		}
		typeSig, value, ok := s.decode(module, gp, reader)
		if !ok {
			continue
		}
		constant := &Constant{Name: name, Type: typeSig, Value: value}
		if s.owner != nil {
			token := metadata.NewToken(metadata.TableLocalConstant, rid)
			s.owner.AppendCustomDebugInfos(token, gp, &constant.CustomDebugInfos)
		}
		ret = append(ret, constant)
	}
	return ret
}
