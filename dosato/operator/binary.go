package operator

import (
	"fmt"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

// Binary evaluates a promoting binary operator. The result is a new
// temporary owned by the caller.
func Binary(op ast.Operator, left, right *value.Variable) (*value.Variable, *errors.Error) {
	if left.IsNull() || right.IsNull() {
		return nil, errors.New(errors.TypeMismatch).WithNote("empty value used as an operand of `%s`", op)
	}

	switch op {
	case ast.OperatorAdd:
		return Add(left, right)
	case ast.OperatorSubtract:
		return Subtract(left, right)
	case ast.OperatorMultiply:
		return Multiply(left, right)
	case ast.OperatorDivide:
		return Divide(left, right)
	case ast.OperatorModulo:
		return Modulo(left, right)
	case ast.OperatorXor, ast.OperatorOr, ast.OperatorAnd:
		return bitwise(op, left, right)
	case ast.OperatorLogicAnd, ast.OperatorLogicOr:
		return logical(op, left, right)
	case ast.OperatorEqual:
		return Equal(left, right)
	case ast.OperatorNotEqual:
		return NotEqual(left, right)
	case ast.OperatorLessThan, ast.OperatorGreaterThan, ast.OperatorLessThanOrEqual, ast.OperatorGreaterThanOrEqual:
		return ordered(op, left, right)
	default:
		panic(fmt.Sprintf("Operator `%s` is not a binary operator", op))
	}
}

// Apply stores the result of a binary operator in the destination slot.
// The destination may be one of the operands, it is left untouched when the operator fails.
func Apply(dest *value.Variable, op ast.Operator, left, right *value.Variable) *errors.Error {
	result, err := Binary(op, left, right)
	if err != nil {
		return err
	}
	dest.Replace(result)
	return nil
}

func gate(left, right *value.Variable, check func(ast.DataType) bool, code errors.Code) *errors.Error {
	for _, operand := range []*value.Variable{left, right} {
		if !check(operand.Type()) {
			return errors.New(code).WithNote("found a value of type %s", operand.Type())
		}
	}
	return nil
}

// arithmetic applies the promotion rule: doubles if either side is floating, longs otherwise.
func arithmetic(
	left, right *value.Variable,
	ints func(a, b int64) (int64, *errors.Error),
	floats func(a, b float64) (float64, *errors.Error),
) (*value.Variable, *errors.Error) {
	if CheckIfFloating(left.Type()) || CheckIfFloating(right.Type()) {
		result, err := floats(value.FloatNumber(left.Inner), value.FloatNumber(right.Inner))
		if err != nil {
			return nil, err
		}
		return value.NewLiteral(value.ValueDouble{Inner: result}), nil
	}

	result, err := ints(value.SignedNumber(left.Inner), value.SignedNumber(right.Inner))
	if err != nil {
		return nil, err
	}
	return value.NewLiteral(value.ValueLong{Inner: result}), nil
}

func Add(left, right *value.Variable) (*value.Variable, *errors.Error) {
	if left.Type() == ast.String || right.Type() == ast.String {
		leftStr, err := value.ToString(left.Inner)
		if err != nil {
			return nil, err
		}
		rightStr, err := value.ToString(right.Inner)
		if err != nil {
			return nil, err
		}
		return value.NewLiteral(value.ValueString{Inner: leftStr + rightStr}), nil
	}

	if err := gate(left, right, CheckIfAddable, errors.CantUseTypeInAddition); err != nil {
		return nil, err
	}

	return arithmetic(left, right,
		func(a, b int64) (int64, *errors.Error) { return a + b, nil },
		func(a, b float64) (float64, *errors.Error) { return a + b, nil },
	)
}

func Subtract(left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, CheckIfNumber, errors.TypeNotSubtractable); err != nil {
		return nil, err
	}

	return arithmetic(left, right,
		func(a, b int64) (int64, *errors.Error) { return a - b, nil },
		func(a, b float64) (float64, *errors.Error) { return a - b, nil },
	)
}

func Multiply(left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, CheckIfNumber, errors.CantUseTypeInMultiplication); err != nil {
		return nil, err
	}

	return arithmetic(left, right,
		func(a, b int64) (int64, *errors.Error) { return a * b, nil },
		func(a, b float64) (float64, *errors.Error) { return a * b, nil },
	)
}

func Divide(left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, CheckIfNumber, errors.CantUseTypeInDivision); err != nil {
		return nil, err
	}

	return arithmetic(left, right,
		func(a, b int64) (int64, *errors.Error) {
			if b == 0 {
				return 0, errors.New(errors.DivisionByZero)
			}
			return a / b, nil
		},
		func(a, b float64) (float64, *errors.Error) {
			if b == 0 {
				return 0, errors.New(errors.DivisionByZero)
			}
			return a / b, nil
		},
	)
}

func Modulo(left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, checkIfBitwise, errors.CantUseTypeInModulo); err != nil {
		return nil, err
	}

	return arithmetic(left, right,
		func(a, b int64) (int64, *errors.Error) {
			if b == 0 {
				return 0, errors.New(errors.DivisionByZero)
			}
			return a % b, nil
		},
		nil,
	)
}

func bitwise(op ast.Operator, left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, checkIfBitwise, errors.CantUseTypeInBitwiseExpression); err != nil {
		return nil, err
	}

	a, b := value.SignedNumber(left.Inner), value.SignedNumber(right.Inner)

	var result int64
	switch op {
	case ast.OperatorXor:
		result = a ^ b
	case ast.OperatorOr:
		result = a | b
	case ast.OperatorAnd:
		result = a & b
	}
	return value.NewLiteral(value.ValueLong{Inner: result}), nil
}

// logical operators truncate floats before testing for zero
func logical(op ast.Operator, left, right *value.Variable) (*value.Variable, *errors.Error) {
	if err := gate(left, right, CheckIfNumber, errors.CantUseTypeInLogicalExpression); err != nil {
		return nil, err
	}

	a := value.SignedNumber(left.Inner) != 0
	b := value.SignedNumber(right.Inner) != 0

	if op == ast.OperatorLogicAnd {
		return value.NewLiteral(value.ValueBool{Inner: a && b}), nil
	}
	return value.NewLiteral(value.ValueBool{Inner: a || b}), nil
}
