package operator

import (
	"fmt"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

func Unary(op ast.Operator, operand *value.Variable) (*value.Variable, *errors.Error) {
	if operand.IsNull() {
		return nil, errors.New(errors.TypeMismatch).WithNote("empty value used as an operand of `%s`", op)
	}

	switch op {
	case ast.OperatorNot:
		return Not(operand)
	case ast.OperatorNotBitwise:
		return NotBitwise(operand)
	case ast.OperatorSubtract:
		return Negative(operand)
	default:
		panic(fmt.Sprintf("Operator `%s` is not a unary operator", op))
	}
}

// ApplyUnary stores the result of a unary operator in the destination slot.
func ApplyUnary(dest *value.Variable, op ast.Operator, operand *value.Variable) *errors.Error {
	result, err := Unary(op, operand)
	if err != nil {
		return err
	}
	dest.Replace(result)
	return nil
}

func Not(operand *value.Variable) (*value.Variable, *errors.Error) {
	if !CheckIfNumber(operand.Type()) {
		return nil, errors.New(errors.CantUseTypeInLogicalExpression).
			WithNote("found a value of type %s", operand.Type())
	}
	return value.NewLiteral(value.ValueBool{Inner: value.SignedNumber(operand.Inner) == 0}), nil
}

func NotBitwise(operand *value.Variable) (*value.Variable, *errors.Error) {
	if !checkIfBitwise(operand.Type()) {
		return nil, errors.New(errors.CantUseTypeInBitwiseExpression).
			WithNote("found a value of type %s", operand.Type())
	}
	return value.NewLiteral(value.ValueLong{Inner: ^value.SignedNumber(operand.Inner)}), nil
}

func Negative(operand *value.Variable) (*value.Variable, *errors.Error) {
	if !CheckIfNumber(operand.Type()) {
		return nil, errors.New(errors.CantUseTypeInNegation).
			WithNote("found a value of type %s", operand.Type())
	}

	if CheckIfFloating(operand.Type()) {
		return value.NewLiteral(value.ValueDouble{Inner: -value.FloatNumber(operand.Inner)}), nil
	}
	return value.NewLiteral(value.ValueLong{Inner: -value.SignedNumber(operand.Inner)}), nil
}
