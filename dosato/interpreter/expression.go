package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dosato-lang/dosato/dosato/diagnostic"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
	"github.com/dosato-lang/dosato/dosato/operator"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

// evaluate computes an expression in value mode.
// The result is always an owned temporary which the caller has to destroy.
func (self *Interpreter) evaluate(node *ast.Node) (*value.Variable, *errors.Error) {
	result, err := self.evaluateInner(node)
	if err != nil {
		return nil, err.At(self.span(node))
	}
	return result, nil
}

func (self *Interpreter) evaluateInner(node *ast.Node) (*value.Variable, *errors.Error) {
	switch node.Kind {
	case ast.LiteralNodeKind:
		return self.literal(node)
	case ast.IdentifierNodeKind:
		variable, err := self.lookup(node)
		if err != nil {
			return nil, err
		}
		clone := variable.Clone()
		clone.Name = value.LiteralName
		return clone, nil
	case ast.UnaryExpressionNodeKind:
		return self.unaryExpression(node)
	case ast.BinaryExpressionNodeKind:
		return self.binaryExpression(node)
	case ast.ArrayExpressionNodeKind:
		return self.arrayExpression(node)
	case ast.IndexExpressionNodeKind:
		return self.indexExpression(node)
	case ast.BlockNodeKind,
		ast.FunctionCallNodeKind,
		ast.FunctionIdentifierNodeKind,
		ast.ArgumentsNodeKind,
		ast.MakeVarNodeKind,
		ast.SetVarNodeKind,
		ast.FunctionDeclarationNodeKind,
		ast.FunctionDeclarationArgumentsNodeKind,
		ast.FunctionDeclarationArgumentNodeKind,
		ast.TypeIdentifierNodeKind,
		ast.ArrayDimensionNodeKind,
		ast.OperatorNodeKind:
		return nil, errors.NewWithSpan(errors.InvalidExpression, self.span(node)).
			WithNote("%s is not an expression", node.Kind)
	default:
		panic(fmt.Sprintf("A new node kind (%v) was added without updating this code", node.Kind))
	}
}

func (self *Interpreter) literal(node *ast.Node) (*value.Variable, *errors.Error) {
	token := self.program.Token(*node)

	switch token.Kind {
	case lexer.Int:
		if number, err := strconv.ParseInt(token.Value, 10, 64); err == nil {
			return value.NewLiteral(value.ValueLong{Inner: number}), nil
		}
		// literals above the signed range are unsigned
		number, err := strconv.ParseUint(token.Value, 10, 64)
		if err != nil {
			return nil, errors.NewWithSpan(errors.InvalidNumber, self.span(node)).
				WithNote("`%s` does not fit into a 64 bit integer", token.Value)
		}
		return value.NewLiteral(value.ValueULong{Inner: number}), nil
	case lexer.Float:
		number, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return nil, errors.NewWithSpan(errors.InvalidNumber, self.span(node)).
				WithNote("`%s` is not a valid floating point number", token.Value)
		}
		return value.NewLiteral(value.ValueDouble{Inner: number}), nil
	case lexer.String:
		return value.NewLiteral(value.ValueString{Inner: token.Value}), nil
	case lexer.Char:
		// the lexer guarantees a single rune below 256
		return value.NewLiteral(value.ValueChar{Inner: byte([]rune(token.Value)[0])}), nil
	case lexer.True:
		return value.NewLiteral(value.ValueBool{Inner: true}), nil
	case lexer.False:
		return value.NewLiteral(value.ValueBool{Inner: false}), nil
	default:
		return nil, errors.NewWithSpan(errors.InvalidExpression, self.span(node)).
			WithNote("%s is not a literal", token.Kind)
	}
}

func (self *Interpreter) lookup(node *ast.Node) (*value.Variable, *errors.Error) {
	variable := self.process.Lookup(node.Text)
	if variable != nil {
		return variable, nil
	}

	err := errors.NewWithSpan(errors.UndefinedVariable, self.span(node)).
		WithNote("`%s` is not declared in any enclosing scope", node.Text)
	if suggestion, found := diagnostic.Suggest(node.Text, self.process.Names()); found {
		err.WithNote("did you mean `%s`?", suggestion)
	}
	return nil, err
}

func (self *Interpreter) unaryExpression(node *ast.Node) (*value.Variable, *errors.Error) {
	op := self.program.Token(node.Body[0]).Operator()

	operand, err := self.evaluate(&node.Body[1])
	if err != nil {
		return nil, err
	}
	defer operand.Destroy()

	return operator.Unary(op, operand)
}

// both sides are always evaluated, `&&` and `||` do not short-circuit
func (self *Interpreter) binaryExpression(node *ast.Node) (*value.Variable, *errors.Error) {
	op := self.program.Token(node.Body[1]).Operator()

	left, err := self.evaluate(&node.Body[0])
	if err != nil {
		return nil, err
	}
	defer left.Destroy()

	right, err := self.evaluate(&node.Body[2])
	if err != nil {
		return nil, err
	}
	defer right.Destroy()

	return operator.Binary(op, left, right)
}

// [a, b, ...] takes the depth of its elements plus one and the type of its first typed element,
// widened to DOUBLE when integers and floats are mixed. Every element is cast to that type.
func (self *Interpreter) arrayExpression(node *ast.Node) (*value.Variable, *errors.Error) {
	elements := make([]*value.Variable, 0, len(node.Body))
	release := func() {
		for _, element := range elements {
			element.Destroy()
		}
	}

	elementType := ast.Null
	var elementDepth uint8

	for idx := range node.Body {
		element, err := self.evaluate(&node.Body[idx])
		if err != nil {
			release()
			return nil, err
		}
		elements = append(elements, element)

		if idx == 0 {
			elementDepth = element.Depth()
		} else if element.Depth() != elementDepth {
			release()
			return nil, errors.NewWithSpan(errors.IncorrectArrayDepth, self.span(&node.Body[idx])).
				WithNote("expected an element of depth %d, found depth %d", elementDepth, element.Depth())
		}

		switch base := element.BaseType(); {
		case elementType == ast.Null:
			elementType = base
		case base.IsFloating() && elementType.IsInteger():
			elementType = ast.Double
		}
	}

	for idx, element := range elements {
		if err := value.CastValue(element, elementType, elementDepth); err != nil {
			release()
			return nil, errors.NewWithSpan(errors.TypeMismatch, self.span(&node.Body[idx])).
				WithNote("array elements must share the type %s", describeType(elementType, elementDepth)).
				Wrap(err)
		}
	}

	return value.NewArray(value.LiteralName, elementType, elementDepth+1, elements), nil
}

func (self *Interpreter) indexExpression(node *ast.Node) (*value.Variable, *errors.Error) {
	container, temporary, err := self.operand(&node.Body[0])
	if err != nil {
		return nil, err
	}
	if temporary {
		defer container.Destroy()
	}

	index, err := self.evaluate(&node.Body[1])
	if err != nil {
		return nil, err
	}
	defer index.Destroy()

	return operator.Hash(container, index)
}

// operand resolves a read-only operand without copying it when it lives in a scope.
// Otherwise the result is a temporary the caller has to destroy.
func (self *Interpreter) operand(node *ast.Node) (*value.Variable, bool, *errors.Error) {
	switch node.Kind {
	case ast.IdentifierNodeKind:
		variable, err := self.lookup(node)
		if err != nil {
			return nil, false, err
		}
		return variable, false, nil
	case ast.IndexExpressionNodeKind:
		container, temporary, err := self.operand(&node.Body[0])
		if err != nil {
			return nil, false, err
		}
		if !container.IsArray() || temporary {
			if temporary {
				container.Destroy()
			}
			result, err := self.evaluate(node)
			return result, true, err
		}

		index, err := self.evaluate(&node.Body[1])
		if err != nil {
			return nil, false, err
		}
		defer index.Destroy()

		ref, err := operator.HashReference(container, index)
		if err != nil {
			return nil, false, err.At(self.span(node))
		}
		element, _ := ref.Get()
		return element, false, nil
	default:
		result, err := self.evaluate(node)
		return result, true, err
	}
}

// reference resolves an assignment target in reference mode.
// Only identifiers and index expressions on arrays are addressable.
func (self *Interpreter) reference(node *ast.Node) (value.Ref, *errors.Error) {
	switch node.Kind {
	case ast.IdentifierNodeKind:
		variable, err := self.lookup(node)
		if err != nil {
			return value.Ref{}, err
		}
		if variable.Constant {
			return value.Ref{}, errors.NewWithSpan(errors.CannotModifyConstant, self.span(node)).
				WithNote("`%s` is a constant", variable.Name)
		}
		return variable.Borrow(), nil
	case ast.IndexExpressionNodeKind:
		containerRef, err := self.reference(&node.Body[0])
		if err != nil {
			return value.Ref{}, err
		}

		index, err := self.evaluate(&node.Body[1])
		if err != nil {
			return value.Ref{}, err
		}
		defer index.Destroy()

		container, alive := containerRef.Get()
		if !alive {
			return value.Ref{}, errors.NewWithSpan(errors.ExpectedRefrence, self.span(&node.Body[0]))
		}

		ref, err := operator.HashReference(container, index)
		if err != nil {
			return value.Ref{}, err.At(self.span(node))
		}
		return ref, nil
	default:
		return value.Ref{}, errors.NewWithSpan(errors.ExpectedRefrence, self.span(node)).
			WithNote("only variables and array elements can be assigned to, found %s", strings.ToLower(node.Kind.String()))
	}
}
