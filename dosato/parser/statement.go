package parser

import (
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

func (self *Parser) statement() (ast.Node, *errors.Error) {
	switch self.current().Kind {
	case lexer.Do:
		return self.functionCall()
	case lexer.Make:
		self.next()
		if self.current().Kind == lexer.Function {
			// functions live in one global namespace, a nested declaration would be registered on every call
			if self.blockDepth > 0 {
				return ast.Node{}, self.errAtCurrent(errors.Syntax).
					WithNote("functions can only be declared at the top level of a program")
			}
			return self.functionDeclaration()
		}
		return self.makeVar()
	case lexer.Set:
		return self.setVar()
	default:
		return ast.Node{}, self.errAtCurrent(errors.ExpectedMaster)
	}
}

// DO name(args...);
func (self *Parser) functionCall() (ast.Node, *errors.Error) {
	start := self.index
	self.next()

	if self.current().Kind != lexer.Identifier {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedIdentifier)
	}
	identStart := self.index
	ident := self.leaf(ast.IdentifierNodeKind)

	if self.current().Kind != lexer.LParen {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedArguments)
	}
	arguments, err := self.callArguments()
	if err != nil {
		return ast.Node{}, err
	}

	functionIdentifier := ast.Node{
		Kind:  ast.FunctionIdentifierNodeKind,
		Start: identStart,
		End:   arguments.End,
		Text:  ident.Text,
		Body:  []ast.Node{ident, arguments},
	}

	end := self.index
	if err := self.expect(lexer.Semicolon, errors.ExpectedSeperator); err != nil {
		return ast.Node{}, err
	}

	return ast.Node{
		Kind:  ast.FunctionCallNodeKind,
		Start: start,
		End:   end,
		Body:  []ast.Node{functionIdentifier},
	}, nil
}

func (self *Parser) callArguments() (ast.Node, *errors.Error) {
	arguments := ast.Node{
		Kind:  ast.ArgumentsNodeKind,
		Start: self.index,
		Body:  make([]ast.Node, 0),
	}
	self.next()

	if self.current().Kind != lexer.RParen {
		for {
			if self.current().Kind == lexer.RParen || self.current().Kind == lexer.Comma {
				return ast.Node{}, self.errAtCurrent(errors.ExpectedArgument)
			}

			argument, err := self.expression(precLowest)
			if err != nil {
				return ast.Node{}, err
			}
			arguments.Body = append(arguments.Body, argument)

			if self.current().Kind == lexer.RParen {
				break
			}
			if self.current().Kind == lexer.EOF || self.current().Kind == lexer.Semicolon {
				return ast.Node{}, self.errAtCurrent(errors.WrongBracketRound)
			}
			if err := self.expect(lexer.Comma, errors.ExpectedComma); err != nil {
				return ast.Node{}, err
			}
		}
	}

	arguments.End = self.index
	self.next()
	return arguments, nil
}

// MAKE TYPE[]... name = expression;
func (self *Parser) makeVar() (ast.Node, *errors.Error) {
	start := self.index - 1

	typeIdent, err := self.typeIdentifier()
	if err != nil {
		return ast.Node{}, err
	}

	if self.current().Kind != lexer.Identifier {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedIdentifier)
	}
	ident := self.leaf(ast.IdentifierNodeKind)

	if !self.isOperator(ast.OperatorAssign) {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedAssignOperator)
	}
	self.next()

	if self.current().Kind == lexer.Semicolon {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedExpression)
	}
	initializer, err := self.expression(precLowest)
	if err != nil {
		return ast.Node{}, err
	}

	end := self.index
	if err := self.expect(lexer.Semicolon, errors.ExpectedSeperator); err != nil {
		return ast.Node{}, err
	}

	return ast.Node{
		Kind:  ast.MakeVarNodeKind,
		Start: start,
		End:   end,
		Body:  []ast.Node{typeIdent, ident, initializer},
	}, nil
}

// TYPE followed by any number of `[]`
func (self *Parser) typeIdentifier() (ast.Node, *errors.Error) {
	if self.current().Kind != lexer.TypeKeyword {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedType)
	}
	node := self.leaf(ast.TypeIdentifierNodeKind)

	for self.current().Kind == lexer.LBracket {
		dimension := ast.Node{
			Kind:  ast.ArrayDimensionNodeKind,
			Start: self.index,
		}
		self.next()
		if self.current().Kind != lexer.RBracket {
			return ast.Node{}, self.errAtCurrent(errors.WrongBracketSquare)
		}
		dimension.End = self.index
		node.End = self.index
		node.Body = append(node.Body, dimension)
		self.next()
	}

	return node, nil
}

// SET target op expression;
func (self *Parser) setVar() (ast.Node, *errors.Error) {
	start := self.index
	self.next()

	if self.current().Kind == lexer.Semicolon || self.current().Kind == lexer.EOF {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedExpression)
	}
	target, err := self.expression(precLowest)
	if err != nil {
		return ast.Node{}, err
	}

	if self.current().Kind != lexer.Operator || !self.current().Operator().IsAssignment() {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedAssignOperator)
	}
	operator := self.leaf(ast.OperatorNodeKind)

	if self.current().Kind == lexer.Semicolon {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedExpression)
	}
	value, err := self.expression(precLowest)
	if err != nil {
		return ast.Node{}, err
	}

	end := self.index
	if err := self.expect(lexer.Semicolon, errors.ExpectedSeperator); err != nil {
		return ast.Node{}, err
	}

	return ast.Node{
		Kind:  ast.SetVarNodeKind,
		Start: start,
		End:   end,
		Body:  []ast.Node{target, operator, value},
	}, nil
}

// MAKE FUNCTION name(TYPE a, TYPE[] b) { statements... }
func (self *Parser) functionDeclaration() (ast.Node, *errors.Error) {
	start := self.index - 1
	self.next()

	if self.current().Kind != lexer.Identifier {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedIdentifier)
	}
	ident := self.leaf(ast.IdentifierNodeKind)

	if self.current().Kind != lexer.LParen {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedArguments)
	}
	parameters := ast.Node{
		Kind:  ast.FunctionDeclarationArgumentsNodeKind,
		Start: self.index,
		Body:  make([]ast.Node, 0),
	}
	self.next()

	if self.current().Kind != lexer.RParen {
		for {
			parameter, err := self.functionDeclarationArgument()
			if err != nil {
				return ast.Node{}, err
			}
			parameters.Body = append(parameters.Body, parameter)

			if self.current().Kind == lexer.RParen {
				break
			}
			if self.current().Kind != lexer.Comma {
				return ast.Node{}, self.errAtCurrent(errors.WrongBracketRound)
			}
			self.next()
		}
	}
	parameters.End = self.index
	self.next()

	body, err := self.block()
	if err != nil {
		return ast.Node{}, err
	}

	return ast.Node{
		Kind:  ast.FunctionDeclarationNodeKind,
		Start: start,
		End:   body.End,
		Text:  ident.Text,
		Body:  []ast.Node{ident, parameters, body},
	}, nil
}

func (self *Parser) functionDeclarationArgument() (ast.Node, *errors.Error) {
	if self.current().Kind != lexer.TypeKeyword {
		return ast.Node{}, self.errAtCurrent(errors.InvalidFunctionDeclarationArgument)
	}
	start := self.index

	typeIdent, err := self.typeIdentifier()
	if err != nil {
		return ast.Node{}, err
	}

	if self.current().Kind != lexer.Identifier {
		return ast.Node{}, self.errAtCurrent(errors.InvalidFunctionDeclarationArgument)
	}
	ident := self.leaf(ast.IdentifierNodeKind)

	return ast.Node{
		Kind:  ast.FunctionDeclarationArgumentNodeKind,
		Start: start,
		End:   ident.End,
		Text:  ident.Text,
		Body:  []ast.Node{typeIdent, ident},
	}, nil
}

func (self *Parser) block() (ast.Node, *errors.Error) {
	if self.current().Kind != lexer.LCurly {
		return ast.Node{}, self.errAtCurrent(errors.ExpectedBlock)
	}

	block := ast.Node{
		Kind:  ast.BlockNodeKind,
		Start: self.index,
		Body:  make([]ast.Node, 0),
	}
	self.next()

	self.blockDepth++
	defer func() { self.blockDepth-- }()

	if self.current().Kind == lexer.RCurly {
		return ast.Node{}, self.errAtCurrent(errors.EmptyBlock)
	}

	for self.current().Kind != lexer.RCurly {
		if self.current().Kind == lexer.EOF {
			return ast.Node{}, self.errAtCurrent(errors.WrongBracketCurly)
		}

		statement, err := self.statement()
		if err != nil {
			return ast.Node{}, err
		}
		block.Body = append(block.Body, statement)
	}

	block.End = self.index
	self.next()
	return block, nil
}
