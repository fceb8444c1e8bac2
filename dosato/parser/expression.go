package parser

import (
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

const (
	precLowest uint8 = 0
	precPrefix uint8 = 10
)

// binding power of an infix operator, 0 if the operator is not infix
func prec(op ast.Operator) uint8 {
	switch op {
	case ast.OperatorLogicOr:
		return 1
	case ast.OperatorLogicAnd:
		return 2
	case ast.OperatorOr:
		return 3
	case ast.OperatorXor:
		return 4
	case ast.OperatorAnd:
		return 5
	case ast.OperatorEqual, ast.OperatorNotEqual:
		return 6
	case ast.OperatorLessThan, ast.OperatorGreaterThan, ast.OperatorLessThanOrEqual, ast.OperatorGreaterThanOrEqual:
		return 7
	case ast.OperatorAdd, ast.OperatorSubtract:
		return 8
	case ast.OperatorMultiply, ast.OperatorDivide, ast.OperatorModulo:
		return 9
	default:
		return 0
	}
}

func (self *Parser) expression(minPrec uint8) (ast.Node, *errors.Error) {
	lhs, err := self.prefixExpression()
	if err != nil {
		return ast.Node{}, err
	}

	for self.current().Kind == lexer.Operator {
		op := self.current().Operator()
		opPrec := prec(op)
		if opPrec == 0 || opPrec <= minPrec {
			break
		}

		operator := self.leaf(ast.OperatorNodeKind)
		rhs, err := self.expression(opPrec)
		if err != nil {
			return ast.Node{}, err
		}

		lhs = ast.Node{
			Kind:  ast.BinaryExpressionNodeKind,
			Start: lhs.Start,
			End:   rhs.End,
			Text:  operator.Text,
			Body:  []ast.Node{lhs, operator, rhs},
		}
	}

	return lhs, nil
}

func (self *Parser) prefixExpression() (ast.Node, *errors.Error) {
	if self.current().Kind == lexer.Operator {
		if !self.current().Operator().IsUnary() {
			return ast.Node{}, self.errAtCurrent(errors.OperatorNotUnary)
		}

		operator := self.leaf(ast.OperatorNodeKind)
		operand, err := self.expression(precPrefix)
		if err != nil {
			return ast.Node{}, err
		}

		return ast.Node{
			Kind:  ast.UnaryExpressionNodeKind,
			Start: operator.Start,
			End:   operand.End,
			Text:  operator.Text,
			Body:  []ast.Node{operator, operand},
		}, nil
	}

	return self.postfixExpression()
}

func (self *Parser) postfixExpression() (ast.Node, *errors.Error) {
	base, err := self.primaryExpression()
	if err != nil {
		return ast.Node{}, err
	}

	for self.current().Kind == lexer.LBracket {
		self.next()
		index, err := self.expression(precLowest)
		if err != nil {
			return ast.Node{}, err
		}

		end := self.index
		if err := self.expect(lexer.RBracket, errors.WrongBracketSquare); err != nil {
			return ast.Node{}, err
		}

		base = ast.Node{
			Kind:  ast.IndexExpressionNodeKind,
			Start: base.Start,
			End:   end,
			Body:  []ast.Node{base, index},
		}
	}

	return base, nil
}

func (self *Parser) primaryExpression() (ast.Node, *errors.Error) {
	switch self.current().Kind {
	case lexer.Int, lexer.Float, lexer.String, lexer.Char, lexer.True, lexer.False:
		return self.leaf(ast.LiteralNodeKind), nil
	case lexer.Identifier:
		return self.leaf(ast.IdentifierNodeKind), nil
	case lexer.LParen:
		self.next()
		inner, err := self.expression(precLowest)
		if err != nil {
			return ast.Node{}, err
		}
		if err := self.expect(lexer.RParen, errors.WrongBracketRound); err != nil {
			return ast.Node{}, err
		}
		return inner, nil
	case lexer.LBracket:
		return self.arrayExpression()
	case lexer.EOF, lexer.Semicolon:
		return ast.Node{}, self.errAtCurrent(errors.ExpectedExpression)
	default:
		return ast.Node{}, self.errAtCurrent(errors.InvalidExpression)
	}
}

func (self *Parser) arrayExpression() (ast.Node, *errors.Error) {
	array := ast.Node{
		Kind:  ast.ArrayExpressionNodeKind,
		Start: self.index,
		Body:  make([]ast.Node, 0),
	}
	self.next()

	if self.current().Kind != lexer.RBracket {
		for {
			element, err := self.expression(precLowest)
			if err != nil {
				return ast.Node{}, err
			}
			array.Body = append(array.Body, element)

			if self.current().Kind == lexer.RBracket {
				break
			}
			if self.current().Kind != lexer.Comma {
				return ast.Node{}, self.errAtCurrent(errors.WrongBracketSquare)
			}
			self.next()
		}
	}

	array.End = self.index
	self.next()
	return array, nil
}
