package errors

import "fmt"

// Code is both the error kind and the exit status of a failed program.
// The numeric values are part of the public contract: append new codes
// directly before `Unknown` and never reorder existing ones.
type Code uint8

const (
	Null Code = iota

	// Syntax errors (generated by the lexer and parser)
	Syntax
	Type
	Undefined
	Recursion
	Memory
	File
	Runtime
	Parser
	ExpectedMaster
	ExpectedIdentifier
	WrongBracketRound
	WrongBracketSquare
	WrongBracketCurly
	ExpectedArguments
	ExpectedArgument
	ExpectedType
	ExpectedAssignOperator
	ExpectedComma
	ExpectedSeperator
	EmptyBlock
	ExpectedExtension
	ExpectedBlock
	ExpectedExpression
	InvalidExpression
	OperatorNotUnary
	InvalidFunctionDeclarationArgument

	// Runtime errors (generated by the interpreter)
	ProcessNotRunning
	InterpreterInvalidCommand
	TypeMismatch
	UndefinedVariable
	UndefinedFunction
	VariableAlreadyExists
	FunctionAlreadyExists
	CantUseTypeInAddition
	TypeNotSubtractable
	CantUseTypeInMultiplication
	CantUseTypeInDivision
	CantUseTypeInModulo
	CantUseTypeInBitwiseExpression
	CantUseTypeInLogicalExpression
	CantUseTypeInNegation
	CantConvertToString
	InvalidNumber
	CastError
	IncorrectArrayDepth
	ArrayCastError
	ArrayOutOfBounds
	ExpectedRefrence
	CannotModifyConstant
	DivisionByZero
	TooFewArguments
	TooManyArguments

	Unknown
)

func (self Code) Message() string {
	switch self {
	case Null:
		return "No error Occured? (CODE NULL)"
	case Syntax:
		return "Syntax Error"
	case Type:
		return "Type Mismatch Error"
	case Undefined:
		return "Undefined Variable Error"
	case Recursion:
		return "Recursion Limit reached Error"
	case Memory:
		return "Memory Error"
	case File:
		return "File Error"
	case Runtime:
		return "Runtime Error"
	case Parser:
		return "Parser Error"
	case ExpectedMaster:
		return "Expected Master Keyword as first token (DO, SET, MAKE)"
	case ExpectedIdentifier:
		return "Expected Identifier"
	case WrongBracketRound:
		return "Bracket is incorrect, expected a round bracket ( )"
	case WrongBracketSquare:
		return "Bracket is incorrect, expected a square bracket [ ]"
	case WrongBracketCurly:
		return "Bracket is incorrect, expected a curly bracket { }"
	case ExpectedArguments:
		return "Expected () after function call (arguments)"
	case ExpectedArgument:
		return "Expected an argument"
	case ExpectedType:
		return "Expected a type (INT, FLOAT, STRING, BOOL etc)"
	case ExpectedAssignOperator:
		return "Expected an assignment operator"
	case ExpectedComma:
		return "Expected a comma"
	case ExpectedSeperator:
		return "Expected a seperator (;)"
	case EmptyBlock:
		return "Empty Block, expected a statement"
	case ExpectedExtension:
		return "Expected an extension (WHEN, WHILE, ELSE, etc)"
	case ExpectedBlock:
		return "Expected a block { }"
	case ExpectedExpression:
		return "Expected an expression"
	case InvalidExpression:
		return "Invalid Expression"
	case OperatorNotUnary:
		return "Operator is not unary (must be -, ! or ~)"
	case InvalidFunctionDeclarationArgument:
		return "Invalid function declaration argument"
	case ProcessNotRunning:
		return "Interpreter can not interpret a process that is not running"
	case InterpreterInvalidCommand:
		return "Interpreter can not interpret an invalid command (expected DO, SET or MAKE)"
	case TypeMismatch:
		return "Type mismatch"
	case UndefinedVariable:
		return "Variable is not defined"
	case UndefinedFunction:
		return "Function is not defined"
	case VariableAlreadyExists:
		return "Variable already exists in this scope"
	case FunctionAlreadyExists:
		return "Function already exists"
	case CantUseTypeInAddition:
		return "Can not use this type in an addition"
	case TypeNotSubtractable:
		return "Can not use this type in a subtraction"
	case CantUseTypeInMultiplication:
		return "Can not use this type in a multiplication"
	case CantUseTypeInDivision:
		return "Can not use this type in a division"
	case CantUseTypeInModulo:
		return "Can not use this type in a modulo operation"
	case CantUseTypeInBitwiseExpression:
		return "Can not use this type in a bitwise expression"
	case CantUseTypeInLogicalExpression:
		return "Can not use this type in a logical expression"
	case CantUseTypeInNegation:
		return "Can not use this type in a negation"
	case CantConvertToString:
		return "Can not convert this value to a string"
	case InvalidNumber:
		return "Invalid number"
	case CastError:
		return "Can not cast this value to the requested type"
	case IncorrectArrayDepth:
		return "Incorrect array depth"
	case ArrayCastError:
		return "Can not cast between array and non-array values"
	case ArrayOutOfBounds:
		return "Index is out of bounds"
	case ExpectedRefrence:
		return "Expected a reference (variable or array element), found a value"
	case CannotModifyConstant:
		return "Can not modify a constant"
	case DivisionByZero:
		return "Division by zero"
	case TooFewArguments:
		return "Too few arguments for function call"
	case TooManyArguments:
		return "Too many arguments for function call"
	case Unknown:
		return "Unknown Error"
	default:
		panic(fmt.Sprintf("A new error code (%d) was added without updating this code", self))
	}
}

// IsSyntax reports whether the code is produced before execution.
func (self Code) IsSyntax() bool {
	return self > Null && self < ProcessNotRunning
}

func (self Code) String() string {
	return fmt.Sprintf("E%d", uint8(self))
}
