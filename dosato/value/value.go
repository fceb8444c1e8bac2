package value

import "github.com/dosato-lang/dosato/dosato/parser/ast"

// Value is the payload of a variable.
// The set of implementations is closed: one struct per ast.DataType.
type Value interface {
	Type() ast.DataType
	clone() Value
}

type ValueNull struct{}

func (_ ValueNull) Type() ast.DataType { return ast.Null }
func (self ValueNull) clone() Value    { return self }

type ValueByte struct{ Inner int8 }

func (_ ValueByte) Type() ast.DataType { return ast.Byte }
func (self ValueByte) clone() Value    { return self }

type ValueUByte struct{ Inner uint8 }

func (_ ValueUByte) Type() ast.DataType { return ast.UByte }
func (self ValueUByte) clone() Value    { return self }

type ValueShort struct{ Inner int16 }

func (_ ValueShort) Type() ast.DataType { return ast.Short }
func (self ValueShort) clone() Value    { return self }

type ValueUShort struct{ Inner uint16 }

func (_ ValueUShort) Type() ast.DataType { return ast.UShort }
func (self ValueUShort) clone() Value    { return self }

type ValueInt struct{ Inner int32 }

func (_ ValueInt) Type() ast.DataType { return ast.Int }
func (self ValueInt) clone() Value    { return self }

type ValueUInt struct{ Inner uint32 }

func (_ ValueUInt) Type() ast.DataType { return ast.UInt }
func (self ValueUInt) clone() Value    { return self }

type ValueLong struct{ Inner int64 }

func (_ ValueLong) Type() ast.DataType { return ast.Long }
func (self ValueLong) clone() Value    { return self }

type ValueULong struct{ Inner uint64 }

func (_ ValueULong) Type() ast.DataType { return ast.ULong }
func (self ValueULong) clone() Value    { return self }

type ValueFloat struct{ Inner float32 }

func (_ ValueFloat) Type() ast.DataType { return ast.Float }
func (self ValueFloat) clone() Value    { return self }

type ValueDouble struct{ Inner float64 }

func (_ ValueDouble) Type() ast.DataType { return ast.Double }
func (self ValueDouble) clone() Value    { return self }

type ValueBool struct{ Inner bool }

func (_ ValueBool) Type() ast.DataType { return ast.Bool }
func (self ValueBool) clone() Value    { return self }

type ValueChar struct{ Inner byte }

func (_ ValueChar) Type() ast.DataType { return ast.Char }
func (self ValueChar) clone() Value    { return self }

type ValueString struct{ Inner string }

func (_ ValueString) Type() ast.DataType { return ast.String }
func (self ValueString) clone() Value    { return self }

// ValueArray owns its elements.
// ElementType is the innermost scalar type, Depth the number of array levels (at least 1).
// An empty array literal has the element type ast.Null until it is cast.
type ValueArray struct {
	Elements    []*Variable
	ElementType ast.DataType
	Depth       uint8
}

func (_ ValueArray) Type() ast.DataType { return ast.Array }

func (self ValueArray) clone() Value {
	elements := make([]*Variable, len(self.Elements))
	for idx, element := range self.Elements {
		elements[idx] = element.Clone()
	}
	return ValueArray{
		Elements:    elements,
		ElementType: self.ElementType,
		Depth:       self.Depth,
	}
}

// FromInt builds a value of the given scalar type from a 64-bit integer.
// Narrower targets truncate, unsigned targets reinterpret the bit pattern.
func FromInt(typ ast.DataType, number int64) Value {
	switch typ {
	case ast.Byte:
		return ValueByte{Inner: int8(number)}
	case ast.UByte:
		return ValueUByte{Inner: uint8(number)}
	case ast.Short:
		return ValueShort{Inner: int16(number)}
	case ast.UShort:
		return ValueUShort{Inner: uint16(number)}
	case ast.Int:
		return ValueInt{Inner: int32(number)}
	case ast.UInt:
		return ValueUInt{Inner: uint32(number)}
	case ast.Long:
		return ValueLong{Inner: number}
	case ast.ULong:
		return ValueULong{Inner: uint64(number)}
	case ast.Float:
		return ValueFloat{Inner: float32(number)}
	case ast.Double:
		return ValueDouble{Inner: float64(number)}
	case ast.Bool:
		return ValueBool{Inner: number != 0}
	case ast.Char:
		return ValueChar{Inner: byte(number)}
	default:
		panic("FromInt called with a non-numeric type: " + typ.String())
	}
}

// FromFloat converts numerically for floating targets and truncates toward zero otherwise.
func FromFloat(typ ast.DataType, number float64) Value {
	switch typ {
	case ast.Float:
		return ValueFloat{Inner: float32(number)}
	case ast.Double:
		return ValueDouble{Inner: number}
	case ast.Bool:
		return ValueBool{Inner: number != 0}
	case ast.UByte, ast.UShort, ast.UInt, ast.ULong, ast.Char:
		if number >= 0 {
			return FromInt(typ, int64(uint64(number)))
		}
		return FromInt(typ, int64(number))
	default:
		return FromInt(typ, int64(number))
	}
}
