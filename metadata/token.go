package metadata

import "fmt"

// Table identifies a metadata table
type Table uint8

const (
	TableModule                 Table = 0x00
	TableTypeRef                Table = 0x01
	TableTypeDef                Table = 0x02
	TableMethod                 Table = 0x06
	TableTypeSpec               Table = 0x1B
	TableDocument               Table = 0x30
	TableMethodDebugInformation Table = 0x31
	TableLocalScope             Table = 0x32
	TableLocalVariable          Table = 0x33
	TableLocalConstant          Table = 0x34
	TableImportScope            Table = 0x35
	TableStateMachineMethod     Table = 0x36
	TableCustomDebugInformation Table = 0x37
)

func (t Table) String() string {
	switch t {
	case TableModule:
		return "Module"
	case TableTypeRef:
		return "TypeRef"
	case TableTypeDef:
		return "TypeDef"
	case TableMethod:
		return "Method"
	case TableTypeSpec:
		return "TypeSpec"
	case TableDocument:
		return "Document"
	case TableMethodDebugInformation:
		return "MethodDebugInformation"
	case TableLocalScope:
		return "LocalScope"
	case TableLocalVariable:
		return "LocalVariable"
	case TableLocalConstant:
		return "LocalConstant"
	case TableImportScope:
		return "ImportScope"
	case TableStateMachineMethod:
		return "StateMachineMethod"
	case TableCustomDebugInformation:
		return "CustomDebugInformation"
	}
	return fmt.Sprintf("Table(0x%02X)", uint8(t))
}

const ridMask = 0x00FFFFFF

// Token addresses one metadata row: the table in the high byte, the rid in the low 24 bits
type Token uint32

// NewToken creates a token
func NewToken(table Table, rid uint32) Token {
	return Token(uint32(table)<<24 | rid&ridMask)
}

// Table returns token table
func (t Token) Table() Table {
	return Table(t >> 24)
}

// Rid returns token row id
func (t Token) Rid() uint32 {
	return uint32(t) & ridMask
}

// IsNull returns true if token does not address a row
func (t Token) IsNull() bool {
	return t.Rid() == 0
}

func (t Token) String() string {
	return fmt.Sprintf("0x%08X", uint32(t))
}
