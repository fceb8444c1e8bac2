package operator

import "github.com/dosato-lang/dosato/dosato/parser/ast"

// CheckIfAddable is true for every numeric type, strings, chars and bools.
func CheckIfAddable(typ ast.DataType) bool {
	return typ.IsNumeric() || typ == ast.String
}

// CheckIfNumber is true for every numeric type, chars and bools.
func CheckIfNumber(typ ast.DataType) bool {
	return typ.IsNumeric()
}

func CheckIfFloating(typ ast.DataType) bool {
	return typ.IsFloating()
}

// CheckIfUnsigned is true for unsigned integers, bools and chars.
func CheckIfUnsigned(typ ast.DataType) bool {
	return typ.IsUnsigned()
}

func checkIfBitwise(typ ast.DataType) bool {
	return CheckIfNumber(typ) && !CheckIfFloating(typ)
}
