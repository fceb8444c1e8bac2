package ast

import "fmt"

type NodeKind uint8

const (
	BlockNodeKind NodeKind = iota
	FunctionCallNodeKind
	FunctionIdentifierNodeKind
	IdentifierNodeKind
	ArgumentsNodeKind
	MakeVarNodeKind
	SetVarNodeKind
	FunctionDeclarationNodeKind
	FunctionDeclarationArgumentsNodeKind
	FunctionDeclarationArgumentNodeKind
	TypeIdentifierNodeKind
	ArrayDimensionNodeKind
	OperatorNodeKind
	LiteralNodeKind
	BinaryExpressionNodeKind
	UnaryExpressionNodeKind
	ArrayExpressionNodeKind
	IndexExpressionNodeKind
)

func (self NodeKind) String() string {
	switch self {
	case BlockNodeKind:
		return "Block"
	case FunctionCallNodeKind:
		return "FunctionCall"
	case FunctionIdentifierNodeKind:
		return "FunctionIdentifier"
	case IdentifierNodeKind:
		return "Identifier"
	case ArgumentsNodeKind:
		return "Arguments"
	case MakeVarNodeKind:
		return "MakeVar"
	case SetVarNodeKind:
		return "SetVar"
	case FunctionDeclarationNodeKind:
		return "FunctionDeclaration"
	case FunctionDeclarationArgumentsNodeKind:
		return "FunctionDeclarationArguments"
	case FunctionDeclarationArgumentNodeKind:
		return "FunctionDeclarationArgument"
	case TypeIdentifierNodeKind:
		return "TypeIdentifier"
	case ArrayDimensionNodeKind:
		return "ArrayDimension"
	case OperatorNodeKind:
		return "Operator"
	case LiteralNodeKind:
		return "Literal"
	case BinaryExpressionNodeKind:
		return "BinaryExpression"
	case UnaryExpressionNodeKind:
		return "UnaryExpression"
	case ArrayExpressionNodeKind:
		return "ArrayExpression"
	case IndexExpressionNodeKind:
		return "IndexExpression"
	default:
		panic(fmt.Sprintf("A new node kind (%d) was added without updating this code", self))
	}
}

// Node is one element of the frozen syntax tree.
// Start and End are inclusive indices into the token slice the node was parsed from.
// The shape of Body depends on Kind:
//
//	FunctionCall:         [FunctionIdentifier{[Identifier, Arguments]}]
//	MakeVar:              [TypeIdentifier, Identifier, <expression>]
//	SetVar:               [<expression>, Operator, <expression>]
//	FunctionDeclaration:  [Identifier, FunctionDeclarationArguments, Block]
//	FunctionDeclarationArgument: [TypeIdentifier, Identifier]
//	TypeIdentifier:       [ArrayDimension...]
//	BinaryExpression:     [<expression>, Operator, <expression>]
//	UnaryExpression:      [Operator, <expression>]
//	IndexExpression:      [<expression>, <expression>]
//	ArrayExpression, Arguments, Block: [<node>...]
type Node struct {
	Kind  NodeKind
	Start int
	End   int
	Text  string
	Body  []Node
}

func (self Node) String() string {
	if len(self.Body) == 0 {
		if self.Text == "" {
			return self.Kind.String()
		}
		return fmt.Sprintf("%s(%s)", self.Kind, self.Text)
	}

	out := self.Kind.String()
	if self.Text != "" {
		out += fmt.Sprintf("(%s)", self.Text)
	}
	out += "{"
	for idx, child := range self.Body {
		if idx > 0 {
			out += ", "
		}
		out += child.String()
	}
	return out + "}"
}

// ArrayDepth is the number of `[]` suffixes of a type identifier node.
func (self Node) ArrayDepth() uint8 {
	var depth uint8
	for _, child := range self.Body {
		if child.Kind == ArrayDimensionNodeKind {
			depth++
		}
	}
	return depth
}
