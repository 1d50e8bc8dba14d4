package signature

import (
	"fmt"

	"github.com/viant/pdbscope/metadata"
)

const nullString = 0xFF

// Decode decodes a LocalConstantSig blob into its type and value, false if the blob is malformed
func Decode(module Module, gp GenericParamContext, reader *metadata.BlobReader) (*TypeSig, interface{}, bool) {
	sig, value, err := Read(module, gp, reader)
	if err != nil {
		return nil, nil, false
	}
	return sig, value, true
}

// Read decodes a LocalConstantSig blob:
//
//	CustomMod* (PrimitiveConstant | EnumConstant | GeneralConstant)
func Read(module Module, gp GenericParamContext, reader *metadata.BlobReader) (*TypeSig, interface{}, error) {
	var modifiers []Modifier
	for {
		code, err := reader.ReadByte()
		if err != nil {
			return nil, nil, err
		}
		element := ElementType(code)
		switch {
		case element == ElementCModReqd || element == ElementCModOpt:
			typeRef, err := resolve(module, gp, reader)
			if err != nil {
				return nil, nil, err
			}
			modifiers = append(modifiers, Modifier{Required: element == ElementCModReqd, Type: typeRef})
			continue
		case element.IsPrimitive():
			return readPrimitiveConstant(module, gp, reader, element, modifiers)
		case element == ElementString:
			return readStringConstant(reader, modifiers)
		case element == ElementClass || element == ElementValueType:
			return readGeneralConstant(module, gp, reader, element, modifiers)
		case element == ElementObject:
			if err := expectEnd(reader); err != nil {
				return nil, nil, err
			}
			return &TypeSig{ElementType: element, Modifiers: modifiers}, nil, nil
		}
		return nil, nil, fmt.Errorf("unsupported constant element type %v", element)
	}
}

// readPrimitiveConstant handles primitive and enum constants, an enum carries its type after the value
func readPrimitiveConstant(module Module, gp GenericParamContext, reader *metadata.BlobReader, element ElementType, modifiers []Modifier) (*TypeSig, interface{}, error) {
	value, err := readPrimitiveValue(reader, element)
	if err != nil {
		return nil, nil, err
	}
	if reader.Remaining() == 0 {
		return &TypeSig{ElementType: element, Modifiers: modifiers}, value, nil
	}
	if element == ElementR4 || element == ElementR8 {
		return nil, nil, fmt.Errorf("floating point enum constant")
	}
	enumType, err := resolve(module, gp, reader)
	if err != nil {
		return nil, nil, err
	}
	if err = expectEnd(reader); err != nil {
		return nil, nil, err
	}
	return &TypeSig{ElementType: ElementValueType, Type: enumType, Modifiers: modifiers}, value, nil
}

func readStringConstant(reader *metadata.BlobReader, modifiers []Modifier) (*TypeSig, interface{}, error) {
	sig := &TypeSig{ElementType: ElementString, Modifiers: modifiers}
	if reader.Remaining() == 1 {
		if b, _ := reader.PeekByte(); b == nullString {
			_, _ = reader.ReadByte()
			return sig, nil, nil
		}
	}
	// a trailing odd byte is not part of the string
	text, err := reader.ReadUTF16(reader.Remaining() &^ 1)
	if err != nil {
		return nil, nil, err
	}
	return sig, text, nil
}

func readGeneralConstant(module Module, gp GenericParamContext, reader *metadata.BlobReader, element ElementType, modifiers []Modifier) (*TypeSig, interface{}, error) {
	typeRef, err := resolve(module, gp, reader)
	if err != nil {
		return nil, nil, err
	}
	sig := &TypeSig{ElementType: element, Type: typeRef, Modifiers: modifiers}
	var value interface{}
	if element == ElementValueType && reader.Remaining() > 0 {
		switch typeRef.FullName() {
		case "System.Decimal":
			if value, err = readDecimal(reader); err != nil {
				return nil, nil, err
			}
		case "System.DateTime":
			ticks, err := reader.ReadInt64()
			if err != nil {
				return nil, nil, err
			}
			if value, err = ticksToTime(ticks); err != nil {
				return nil, nil, err
			}
		}
	}
	if err = expectEnd(reader); err != nil {
		return nil, nil, err
	}
	return sig, value, nil
}

func readDecimal(reader *metadata.BlobReader) (Decimal, error) {
	var ret Decimal
	flags, err := reader.ReadByte()
	if err != nil {
		return ret, err
	}
	ret.Negative = flags&0x80 != 0
	ret.Scale = flags & 0x7F
	if ret.Scale > 28 {
		return ret, fmt.Errorf("decimal scale out of range: %d", ret.Scale)
	}
	if ret.Lo, err = reader.ReadUint32(); err != nil {
		return ret, err
	}
	if ret.Mid, err = reader.ReadUint32(); err != nil {
		return ret, err
	}
	if ret.Hi, err = reader.ReadUint32(); err != nil {
		return ret, err
	}
	return ret, nil
}

func readPrimitiveValue(reader *metadata.BlobReader, element ElementType) (interface{}, error) {
	switch element {
	case ElementBoolean:
		b, err := reader.ReadByte()
		return b != 0, err
	case ElementChar:
		v, err := reader.ReadUint16()
		return Char(v), err
	case ElementI1:
		return reader.ReadInt8()
	case ElementU1:
		return reader.ReadByte()
	case ElementI2:
		return reader.ReadInt16()
	case ElementU2:
		return reader.ReadUint16()
	case ElementI4:
		return reader.ReadInt32()
	case ElementU4:
		return reader.ReadUint32()
	case ElementI8:
		return reader.ReadInt64()
	case ElementU8:
		return reader.ReadUint64()
	case ElementR4:
		return reader.ReadFloat32()
	case ElementR8:
		return reader.ReadFloat64()
	}
	return nil, fmt.Errorf("not a primitive element type %v", element)
}

func resolve(module Module, gp GenericParamContext, reader *metadata.BlobReader) (*TypeRef, error) {
	token, err := reader.ReadTypeDefOrRefOrSpec()
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, fmt.Errorf("no module to resolve %v", token)
	}
	typeRef, ok := module.ResolveTypeDefOrRef(token, gp)
	if !ok {
		return nil, fmt.Errorf("unresolved type %v", token)
	}
	return typeRef, nil
}

func expectEnd(reader *metadata.BlobReader) error {
	if remaining := reader.Remaining(); remaining != 0 {
		return fmt.Errorf("%d trailing bytes in constant signature", remaining)
	}
	return nil
}
