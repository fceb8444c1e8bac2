package ast

import "fmt"

type Operator uint8

const (
	OperatorNone Operator = iota

	// Binary
	OperatorAdd                // +
	OperatorSubtract           // -
	OperatorMultiply           // *
	OperatorDivide             // /
	OperatorModulo             // %
	OperatorXor                // ^
	OperatorOr                 // |
	OperatorAnd                // &
	OperatorLogicAnd           // &&
	OperatorLogicOr            // ||
	OperatorEqual              // ==
	OperatorNotEqual           // !=
	OperatorLessThan           // <
	OperatorGreaterThan        // >
	OperatorLessThanOrEqual    // <=
	OperatorGreaterThanOrEqual // >=

	// Unary only
	OperatorNot        // !
	OperatorNotBitwise // ~

	// Assignment
	OperatorAssign         // =
	OperatorAssignAdd      // +=
	OperatorAssignSubtract // -=
	OperatorAssignMultiply // *=
	OperatorAssignDivide   // /=
	OperatorAssignModulo   // %=
	OperatorAssignXor      // ^=
	OperatorAssignOr       // |=
	OperatorAssignAnd      // &=
)

func (self Operator) String() string {
	switch self {
	case OperatorNone:
		return "<none>"
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	case OperatorModulo:
		return "%"
	case OperatorXor:
		return "^"
	case OperatorOr:
		return "|"
	case OperatorAnd:
		return "&"
	case OperatorLogicAnd:
		return "&&"
	case OperatorLogicOr:
		return "||"
	case OperatorEqual:
		return "=="
	case OperatorNotEqual:
		return "!="
	case OperatorLessThan:
		return "<"
	case OperatorGreaterThan:
		return ">"
	case OperatorLessThanOrEqual:
		return "<="
	case OperatorGreaterThanOrEqual:
		return ">="
	case OperatorNot:
		return "!"
	case OperatorNotBitwise:
		return "~"
	case OperatorAssign:
		return "="
	case OperatorAssignAdd:
		return "+="
	case OperatorAssignSubtract:
		return "-="
	case OperatorAssignMultiply:
		return "*="
	case OperatorAssignDivide:
		return "/="
	case OperatorAssignModulo:
		return "%="
	case OperatorAssignXor:
		return "^="
	case OperatorAssignOr:
		return "|="
	case OperatorAssignAnd:
		return "&="
	default:
		panic(fmt.Sprintf("A new operator (%d) was added without updating this code", self))
	}
}

func (self Operator) IsAssignment() bool {
	return self >= OperatorAssign && self <= OperatorAssignAnd
}

// IsUnary reports whether the operator may appear in prefix position.
func (self Operator) IsUnary() bool {
	return self == OperatorSubtract || self == OperatorNot || self == OperatorNotBitwise
}

func (self Operator) IsBinary() bool {
	return self >= OperatorAdd && self <= OperatorGreaterThanOrEqual
}
