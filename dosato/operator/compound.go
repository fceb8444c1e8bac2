package operator

import (
	"fmt"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

type floating interface {
	~float32 | ~float64
}

// Compound mutates `left` in place using the native arithmetic of its own type.
// Both operands must carry the same data type, nothing is promoted.
func Compound(op ast.Operator, left, right *value.Variable) *errors.Error {
	if !op.IsAssignment() {
		panic(fmt.Sprintf("Operator `%s` is not an assignment operator", op))
	}

	if left.Constant {
		return errors.New(errors.CannotModifyConstant)
	}
	if left.IsNull() || right.IsNull() {
		return errors.New(errors.TypeMismatch).WithNote("empty value used with `%s`", op)
	}
	if left.Type() != right.Type() {
		return errors.New(errors.TypeMismatch).
			WithNote("can not use `%s` with %s and %s", op, left.Type(), right.Type())
	}

	var next value.Value
	var err *errors.Error

	switch current := left.Inner.(type) {
	case value.ValueByte:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueByte).Inner,
			func(n int8) value.Value { return value.ValueByte{Inner: n} })
	case value.ValueUByte:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueUByte).Inner,
			func(n uint8) value.Value { return value.ValueUByte{Inner: n} })
	case value.ValueShort:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueShort).Inner,
			func(n int16) value.Value { return value.ValueShort{Inner: n} })
	case value.ValueUShort:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueUShort).Inner,
			func(n uint16) value.Value { return value.ValueUShort{Inner: n} })
	case value.ValueInt:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueInt).Inner,
			func(n int32) value.Value { return value.ValueInt{Inner: n} })
	case value.ValueUInt:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueUInt).Inner,
			func(n uint32) value.Value { return value.ValueUInt{Inner: n} })
	case value.ValueLong:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueLong).Inner,
			func(n int64) value.Value { return value.ValueLong{Inner: n} })
	case value.ValueULong:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueULong).Inner,
			func(n uint64) value.Value { return value.ValueULong{Inner: n} })
	case value.ValueChar:
		next, err = compoundInteger(op, current.Inner, right.Inner.(value.ValueChar).Inner,
			func(n byte) value.Value { return value.ValueChar{Inner: n} })
	case value.ValueFloat:
		next, err = compoundFloating(op, current.Inner, right.Inner.(value.ValueFloat).Inner,
			func(n float32) value.Value { return value.ValueFloat{Inner: n} })
	case value.ValueDouble:
		next, err = compoundFloating(op, current.Inner, right.Inner.(value.ValueDouble).Inner,
			func(n float64) value.Value { return value.ValueDouble{Inner: n} })
	case value.ValueString:
		switch op {
		case ast.OperatorAssign:
			next = right.Inner
		case ast.OperatorAssignAdd:
			next = value.ValueString{Inner: current.Inner + right.Inner.(value.ValueString).Inner}
		default:
			err = unsupported(op, left.Type())
		}
	case value.ValueBool:
		if op == ast.OperatorAssign {
			next = right.Inner
		} else {
			err = unsupported(op, left.Type())
		}
	default:
		err = unsupported(op, left.Type())
	}

	if err != nil {
		return err
	}
	left.Inner = next
	return nil
}

func unsupported(op ast.Operator, typ ast.DataType) *errors.Error {
	return errors.New(errors.TypeMismatch).WithNote("`%s` is not supported for %s", op, typ)
}

func compoundInteger[T integer](op ast.Operator, a, b T, wrap func(T) value.Value) (value.Value, *errors.Error) {
	switch op {
	case ast.OperatorAssign:
		return wrap(b), nil
	case ast.OperatorAssignAdd:
		return wrap(a + b), nil
	case ast.OperatorAssignSubtract:
		return wrap(a - b), nil
	case ast.OperatorAssignMultiply:
		return wrap(a * b), nil
	case ast.OperatorAssignDivide:
		if b == 0 {
			return nil, errors.New(errors.DivisionByZero)
		}
		return wrap(a / b), nil
	case ast.OperatorAssignModulo:
		if b == 0 {
			return nil, errors.New(errors.DivisionByZero)
		}
		return wrap(a % b), nil
	case ast.OperatorAssignXor:
		return wrap(a ^ b), nil
	case ast.OperatorAssignOr:
		return wrap(a | b), nil
	case ast.OperatorAssignAnd:
		return wrap(a & b), nil
	default:
		panic(fmt.Sprintf("A new assignment operator (%s) was added without updating this code", op))
	}
}

func compoundFloating[T floating](op ast.Operator, a, b T, wrap func(T) value.Value) (value.Value, *errors.Error) {
	switch op {
	case ast.OperatorAssign:
		return wrap(b), nil
	case ast.OperatorAssignAdd:
		return wrap(a + b), nil
	case ast.OperatorAssignSubtract:
		return wrap(a - b), nil
	case ast.OperatorAssignMultiply:
		return wrap(a * b), nil
	case ast.OperatorAssignDivide:
		if b == 0 {
			return nil, errors.New(errors.DivisionByZero)
		}
		return wrap(a / b), nil
	default:
		return nil, unsupported(op, wrap(a).Type())
	}
}
