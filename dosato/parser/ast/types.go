package ast

import "fmt"

// DataType is the runtime tag of every value.
// The order matters: the lexer stores it in a token's carry byte.
type DataType uint8

const (
	Null DataType = iota
	Byte
	UByte
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Float
	Double
	Bool
	Char
	String
	Array
)

func (self DataType) String() string {
	switch self {
	case Null:
		return "NULL"
	case Byte:
		return "BYTE"
	case UByte:
		return "UBYTE"
	case Short:
		return "SHORT"
	case UShort:
		return "USHORT"
	case Int:
		return "INT"
	case UInt:
		return "UINT"
	case Long:
		return "LONG"
	case ULong:
		return "ULONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Bool:
		return "BOOL"
	case Char:
		return "CHAR"
	case String:
		return "STRING"
	case Array:
		return "ARRAY"
	default:
		panic(fmt.Sprintf("A new data type (%d) was added without updating this code", self))
	}
}

// DataTypeFromKeyword resolves an upper-case type keyword.
// `NULL` and `ARRAY` are not keywords: arrays are spelled with `[]` suffixes.
func DataTypeFromKeyword(keyword string) (DataType, bool) {
	for typ := Byte; typ <= String; typ++ {
		if typ.String() == keyword {
			return typ, true
		}
	}
	return Null, false
}

// IsInteger is true for the eight fixed-width integer types.
func (self DataType) IsInteger() bool {
	return self >= Byte && self <= ULong
}

func (self DataType) IsFloating() bool {
	return self == Float || self == Double
}

// IsUnsigned is true for unsigned integers, bools and chars.
func (self DataType) IsUnsigned() bool {
	switch self {
	case UByte, UShort, UInt, ULong, Bool, Char:
		return true
	default:
		return false
	}
}

// IsNumeric is true for every type which can take part in arithmetic.
func (self DataType) IsNumeric() bool {
	return self.IsInteger() || self.IsFloating() || self == Bool || self == Char
}
