package value

import (
	"strconv"
	"strings"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

// CastValue converts a variable in place to `target` with `depth` array levels (0 for scalars).
// For arrays `target` is the element type. Either the whole cast succeeds or the
// variable is left untouched.
func CastValue(variable *Variable, target ast.DataType, depth uint8) *errors.Error {
	if variable.BaseType() == target && variable.Depth() == depth {
		return nil
	}
	if variable.Constant {
		return errors.New(errors.CannotModifyConstant)
	}

	inner, err := castInner(variable.Inner, target, depth)
	if err != nil {
		return err
	}

	old := variable.Inner
	variable.Inner = inner

	// array casts build fresh element variables, the old ones are released
	if oldArray, ok := old.(ValueArray); ok && variable.owned {
		for _, element := range oldArray.Elements {
			element.Destroy()
		}
	}

	return nil
}

func castInner(value Value, target ast.DataType, depth uint8) (Value, *errors.Error) {
	array, isArray := value.(ValueArray)

	switch {
	case isArray && depth == 0, !isArray && depth > 0:
		return nil, errors.New(errors.ArrayCastError).
			WithNote("can not cast %s to %s", describe(value), describeType(target, depth))
	case isArray:
		// an untyped `[]` literal adapts to any element type and depth
		if len(array.Elements) == 0 && array.ElementType == ast.Null {
			return ValueArray{
				Elements:    make([]*Variable, 0),
				ElementType: target,
				Depth:       depth,
			}, nil
		}

		if array.Depth != depth {
			return nil, errors.New(errors.IncorrectArrayDepth).
				WithNote("can not cast %s to %s", describe(value), describeType(target, depth))
		}

		elements := make([]*Variable, len(array.Elements))
		for idx, element := range array.Elements {
			inner, err := castInner(element.Inner, target, depth-1)
			if err != nil {
				return nil, err
			}
			elements[idx] = NewVariable(element.Name, inner, true, false)
		}

		return ValueArray{
			Elements:    elements,
			ElementType: target,
			Depth:       depth,
		}, nil
	default:
		return castScalar(value, target)
	}
}

func castScalar(value Value, target ast.DataType) (Value, *errors.Error) {
	source := value.Type()

	switch {
	case source == target:
		return value, nil
	case source == ast.Null, target == ast.Null, target == ast.Array:
		return nil, errors.New(errors.CastError).
			WithNote("can not cast %s to %s", source, target)
	case target == ast.String:
		display, err := ToString(value)
		if err != nil {
			return nil, err
		}
		return ValueString{Inner: display}, nil
	case source == ast.String:
		return parseString(value.(ValueString).Inner, target)
	case source.IsFloating() || target.IsFloating():
		return FromFloat(target, FloatNumber(value)), nil
	default:
		return FromInt(target, SignedNumber(value)), nil
	}
}

func parseString(text string, target ast.DataType) (Value, *errors.Error) {
	switch {
	case target == ast.Bool:
		switch {
		case strings.EqualFold(text, "TRUE"):
			return ValueBool{Inner: true}, nil
		case strings.EqualFold(text, "FALSE"):
			return ValueBool{Inner: false}, nil
		}
		return nil, errors.New(errors.CastError).WithNote("%q is not a boolean", text)
	case target == ast.Char:
		runes := []rune(text)
		if len(runes) != 1 || runes[0] > 0xFF {
			return nil, errors.New(errors.CastError).WithNote("%q is not a single character", text)
		}
		return ValueChar{Inner: byte(runes[0])}, nil
	case target.IsFloating():
		number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, errors.New(errors.InvalidNumber).WithNote("%q is not a number", text)
		}
		return FromFloat(target, number), nil
	case target.IsInteger():
		trimmed := strings.TrimSpace(text)
		number, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil {
			return FromInt(target, number), nil
		}
		if target.IsUnsigned() {
			if unsigned, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
				return FromInt(target, int64(unsigned)), nil
			}
		}
		return nil, errors.New(errors.InvalidNumber).WithNote("%q is not an integer", text)
	default:
		return nil, errors.New(errors.CastError).WithNote("can not cast STRING to %s", target)
	}
}

func describe(value Value) string {
	if array, ok := value.(ValueArray); ok {
		return describeType(array.ElementType, array.Depth)
	}
	return value.Type().String()
}

func describeType(typ ast.DataType, depth uint8) string {
	return typ.String() + strings.Repeat("[]", int(depth))
}
