package operator

import (
	"strings"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

func Equal(left, right *value.Variable) (*value.Variable, *errors.Error) {
	return value.NewLiteral(value.ValueBool{Inner: isEqual(left.Inner, right.Inner)}), nil
}

// NotEqual is the exact negation of Equal, so a string compared to a
// non-string is always unequal.
func NotEqual(left, right *value.Variable) (*value.Variable, *errors.Error) {
	return value.NewLiteral(value.ValueBool{Inner: !isEqual(left.Inner, right.Inner)}), nil
}

func isEqual(left, right value.Value) bool {
	leftType, rightType := left.Type(), right.Type()

	switch {
	case leftType == ast.String || rightType == ast.String:
		if leftType != rightType {
			return false
		}
		return left.(value.ValueString).Inner == right.(value.ValueString).Inner
	case leftType == ast.Array || rightType == ast.Array:
		if leftType != rightType {
			return false
		}
		leftArray, rightArray := left.(value.ValueArray), right.(value.ValueArray)
		if len(leftArray.Elements) != len(rightArray.Elements) {
			return false
		}
		for idx := range leftArray.Elements {
			if !isEqual(leftArray.Elements[idx].Inner, rightArray.Elements[idx].Inner) {
				return false
			}
		}
		return true
	case CheckIfFloating(leftType) || CheckIfFloating(rightType):
		return value.FloatNumber(left) == value.FloatNumber(right)
	default:
		return value.SignedNumber(left) == value.SignedNumber(right)
	}
}

// ordered compares two strings lexicographically or two numbers after promotion.
func ordered(op ast.Operator, left, right *value.Variable) (*value.Variable, *errors.Error) {
	leftType, rightType := left.Type(), right.Type()

	var cmp int
	switch {
	case leftType == ast.String && rightType == ast.String:
		cmp = strings.Compare(left.Inner.(value.ValueString).Inner, right.Inner.(value.ValueString).Inner)
	case CheckIfNumber(leftType) && CheckIfNumber(rightType):
		if CheckIfFloating(leftType) || CheckIfFloating(rightType) {
			cmp = compare(value.FloatNumber(left.Inner), value.FloatNumber(right.Inner))
		} else {
			cmp = compare(value.SignedNumber(left.Inner), value.SignedNumber(right.Inner))
		}
	default:
		return nil, errors.New(errors.TypeMismatch).
			WithNote("can not compare %s with %s using `%s`", leftType, rightType, op)
	}

	var result bool
	switch op {
	case ast.OperatorLessThan:
		result = cmp < 0
	case ast.OperatorGreaterThan:
		result = cmp > 0
	case ast.OperatorLessThanOrEqual:
		result = cmp <= 0
	case ast.OperatorGreaterThanOrEqual:
		result = cmp >= 0
	}
	return value.NewLiteral(value.ValueBool{Inner: result}), nil
}

func compare[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
