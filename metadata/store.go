package metadata

import "sort"

// Tables holds decoded portable PDB table rows, rid N is stored at index N-1
type Tables struct {
	LocalScopes            []LocalScopeRow
	LocalVariables         []LocalVariableRow
	LocalConstants         []LocalConstantRow
	ImportScopes           []ImportScopeRow
	CustomDebugInformation []CustomDebugInformationRow
}

// Store provides read-only access to tables and heaps of one metadata image
type Store struct {
	Tables  *Tables
	Strings *StringsHeap
	Blobs   *BlobHeap
	GUIDs   *GUIDHeap
}

// NewStore creates a store
func NewStore(tables *Tables, strings *StringsHeap, blobs *BlobHeap, guids *GUIDHeap) *Store {
	if tables == nil {
		tables = &Tables{}
	}
	return &Store{Tables: tables, Strings: strings, Blobs: blobs, GUIDs: guids}
}

func readRow[T any](rows []T, rid uint32) (T, bool) {
	var zero T
	if rid == 0 || uint64(rid) > uint64(len(rows)) {
		return zero, false
	}
	return rows[rid-1], true
}

// TryReadLocalScopeRow reads a LocalScope row
func (s *Store) TryReadLocalScopeRow(rid uint32) (LocalScopeRow, bool) {
	return readRow(s.Tables.LocalScopes, rid)
}

// TryReadLocalVariableRow reads a LocalVariable row
func (s *Store) TryReadLocalVariableRow(rid uint32) (LocalVariableRow, bool) {
	return readRow(s.Tables.LocalVariables, rid)
}

// TryReadLocalConstantRow reads a LocalConstant row
func (s *Store) TryReadLocalConstantRow(rid uint32) (LocalConstantRow, bool) {
	return readRow(s.Tables.LocalConstants, rid)
}

// TryReadImportScopeRow reads an ImportScope row
func (s *Store) TryReadImportScopeRow(rid uint32) (ImportScopeRow, bool) {
	return readRow(s.Tables.ImportScopes, rid)
}

// TryReadCustomDebugInformationRow reads a CustomDebugInformation row
func (s *Store) TryReadCustomDebugInformationRow(rid uint32) (CustomDebugInformationRow, bool) {
	return readRow(s.Tables.CustomDebugInformation, rid)
}

// ReadString reads a #Strings entry
func (s *Store) ReadString(offset uint32) (string, bool) {
	return s.Strings.Read(offset)
}

// TryCreateBlobReader opens a reader over a #Blob entry
func (s *Store) TryCreateBlobReader(offset uint32) (*BlobReader, bool) {
	return s.Blobs.TryCreateReader(offset)
}

// ReadGUID reads a #GUID entry
func (s *Store) ReadGUID(index uint32) (GUID, bool) {
	return s.GUIDs.Read(index)
}

// LocalScopeRids returns the LocalScope rows of a method, the table is sorted by Method
func (s *Store) LocalScopeRids(methodRid uint32) RidList {
	rows := s.Tables.LocalScopes
	start := sort.Search(len(rows), func(i int) bool { return rows[i].Method >= methodRid })
	end := start
	for end < len(rows) && rows[end].Method == methodRid {
		end++
	}
	return NewRidList(uint32(start)+1, uint32(end-start))
}

// LocalVariableRids returns the variable range owned by a scope
func (s *Store) LocalVariableRids(scopeRid uint32) RidList {
	return s.ownedRange(scopeRid, uint32(len(s.Tables.LocalVariables)), func(row *LocalScopeRow) uint32 { return row.VariableList })
}

// LocalConstantRids returns the constant range owned by a scope
func (s *Store) LocalConstantRids(scopeRid uint32) RidList {
	return s.ownedRange(scopeRid, uint32(len(s.Tables.LocalConstants)), func(row *LocalScopeRow) uint32 { return row.ConstantList })
}

// ownedRange resolves a list column: the run starts at the row's value and ends before the next row's value
func (s *Store) ownedRange(scopeRid, rowCount uint32, column func(row *LocalScopeRow) uint32) RidList {
	scopes := s.Tables.LocalScopes
	if scopeRid == 0 || uint64(scopeRid) > uint64(len(scopes)) {
		return RidList{}
	}
	start := column(&scopes[scopeRid-1])
	if start == 0 || start > rowCount {
		return RidList{}
	}
	end := rowCount + 1
	if int(scopeRid) < len(scopes) {
		if next := column(&scopes[scopeRid]); next != 0 && next < end {
			end = next
		}
	}
	if end <= start {
		return RidList{}
	}
	return NewRidList(start, end-start)
}

// CustomDebugInformationRids returns the rows attached to parent, the table is sorted by Parent
func (s *Store) CustomDebugInformationRids(parent Token) RidList {
	rows := s.Tables.CustomDebugInformation
	start := sort.Search(len(rows), func(i int) bool { return rows[i].Parent >= parent })
	end := start
	for end < len(rows) && rows[end].Parent == parent {
		end++
	}
	return NewRidList(uint32(start)+1, uint32(end-start))
}
