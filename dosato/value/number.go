package value

import (
	"strconv"
	"strings"

	"github.com/dosato-lang/dosato/dosato/errors"
)

// SignedNumber reads any numeric payload as a 64-bit signed integer.
// Signed sources are sign-extended, unsigned ones zero-extended and floats truncated.
// Non-numeric payloads yield 0, callers gate on ast.DataType.IsNumeric first.
func SignedNumber(value Value) int64 {
	switch inner := value.(type) {
	case ValueByte:
		return int64(inner.Inner)
	case ValueUByte:
		return int64(inner.Inner)
	case ValueShort:
		return int64(inner.Inner)
	case ValueUShort:
		return int64(inner.Inner)
	case ValueInt:
		return int64(inner.Inner)
	case ValueUInt:
		return int64(inner.Inner)
	case ValueLong:
		return inner.Inner
	case ValueULong:
		return int64(inner.Inner)
	case ValueFloat:
		return int64(inner.Inner)
	case ValueDouble:
		return int64(inner.Inner)
	case ValueBool:
		if inner.Inner {
			return 1
		}
		return 0
	case ValueChar:
		return int64(inner.Inner)
	default:
		return 0
	}
}

// FloatNumber reads any numeric payload as a double.
func FloatNumber(value Value) float64 {
	switch inner := value.(type) {
	case ValueFloat:
		return float64(inner.Inner)
	case ValueDouble:
		return inner.Inner
	case ValueULong:
		return float64(inner.Inner)
	default:
		return float64(SignedNumber(value))
	}
}

// ToString is the canonical formatter used for printing, casts and string concatenation.
func ToString(value Value) (string, *errors.Error) {
	switch inner := value.(type) {
	case ValueNull:
		return "", errors.New(errors.CantConvertToString)
	case ValueULong:
		return strconv.FormatUint(inner.Inner, 10), nil
	case ValueFloat:
		return strconv.FormatFloat(float64(inner.Inner), 'f', -1, 32), nil
	case ValueDouble:
		return strconv.FormatFloat(inner.Inner, 'f', -1, 64), nil
	case ValueBool:
		if inner.Inner {
			return "TRUE", nil
		}
		return "FALSE", nil
	case ValueChar:
		return string(rune(inner.Inner)), nil
	case ValueString:
		return inner.Inner, nil
	case ValueArray:
		elements := make([]string, 0, len(inner.Elements))
		for _, element := range inner.Elements {
			display, err := ToString(element.Inner)
			if err != nil {
				return "", err
			}
			elements = append(elements, display)
		}
		return "[" + strings.Join(elements, ", ") + "]", nil
	default:
		return strconv.FormatInt(SignedNumber(value), 10), nil
	}
}
