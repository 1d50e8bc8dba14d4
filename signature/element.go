package signature

import "fmt"

// ElementType is an ECMA-335 signature element type
type ElementType byte

const (
	ElementVoid      ElementType = 0x01
	ElementBoolean   ElementType = 0x02
	ElementChar      ElementType = 0x03
	ElementI1        ElementType = 0x04
	ElementU1        ElementType = 0x05
	ElementI2        ElementType = 0x06
	ElementU2        ElementType = 0x07
	ElementI4        ElementType = 0x08
	ElementU4        ElementType = 0x09
	ElementI8        ElementType = 0x0A
	ElementU8        ElementType = 0x0B
	ElementR4        ElementType = 0x0C
	ElementR8        ElementType = 0x0D
	ElementString    ElementType = 0x0E
	ElementValueType ElementType = 0x11
	ElementClass     ElementType = 0x12
	ElementObject    ElementType = 0x1C
	ElementCModReqd  ElementType = 0x1F
	ElementCModOpt   ElementType = 0x20
)

var elementNames = map[ElementType]string{
	ElementVoid:      "System.Void",
	ElementBoolean:   "System.Boolean",
	ElementChar:      "System.Char",
	ElementI1:        "System.SByte",
	ElementU1:        "System.Byte",
	ElementI2:        "System.Int16",
	ElementU2:        "System.UInt16",
	ElementI4:        "System.Int32",
	ElementU4:        "System.UInt32",
	ElementI8:        "System.Int64",
	ElementU8:        "System.UInt64",
	ElementR4:        "System.Single",
	ElementR8:        "System.Double",
	ElementString:    "System.String",
	ElementObject:    "System.Object",
	ElementValueType: "valuetype",
	ElementClass:     "class",
}

func (e ElementType) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ElementType(0x%02X)", byte(e))
}

// IsPrimitive returns true for element types that carry an inline constant value
func (e ElementType) IsPrimitive() bool {
	return e >= ElementBoolean && e <= ElementR8
}
