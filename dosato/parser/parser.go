package parser

import (
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

// Program is a parsed source file.
// The tree refers to its tokens by index, so both travel together.
type Program struct {
	Filename string
	Source   string
	Tokens   []lexer.Token
	Root     ast.Node
}

// Token returns the token a node starts at.
func (self Program) Token(node ast.Node) lexer.Token {
	return self.Tokens[node.Start]
}

// Span covers every token of a node.
func (self Program) Span(node ast.Node) errors.Span {
	return errors.Span{
		Start:    self.Tokens[node.Start].Span.Start,
		End:      self.Tokens[node.End].Span.End,
		Filename: self.Filename,
	}
}

type Parser struct {
	tokens   []lexer.Token
	index    int
	filename string
	source   string
	// number of enclosing blocks of the current statement
	blockDepth int
}

func NewParser(source string, filename string) Parser {
	return Parser{
		filename: filename,
		source:   source,
	}
}

func (self *Parser) Parse() (Program, *errors.Error) {
	lex := lexer.NewLexer(self.source, self.filename)
	tokens, err := lex.Tokenize()
	if err != nil {
		return Program{}, err
	}
	self.tokens = tokens
	self.index = 0

	root := ast.Node{
		Kind:  ast.BlockNodeKind,
		Start: 0,
		Body:  make([]ast.Node, 0),
	}

	for self.current().Kind != lexer.EOF {
		statement, err := self.statement()
		if err != nil {
			return Program{}, err
		}
		root.Body = append(root.Body, statement)
	}
	root.End = self.index

	return Program{
		Filename: self.filename,
		Source:   self.source,
		Tokens:   self.tokens,
		Root:     root,
	}, nil
}

//
// Token helpers
//

func (self *Parser) current() lexer.Token {
	return self.tokens[self.index]
}

func (self *Parser) next() {
	// the EOF token is never skipped
	if self.index < len(self.tokens)-1 {
		self.index++
	}
}

func (self *Parser) errAtCurrent(code errors.Code) *errors.Error {
	return errors.NewWithSpan(code, self.current().Span).
		WithNote("found %s", self.current().Kind)
}

func (self *Parser) expect(kind lexer.TokenKind, code errors.Code) *errors.Error {
	if self.current().Kind != kind {
		return self.errAtCurrent(code)
	}
	self.next()
	return nil
}

func (self *Parser) isOperator(op ast.Operator) bool {
	return self.current().Kind == lexer.Operator && self.current().Operator() == op
}

func (self *Parser) leaf(kind ast.NodeKind) ast.Node {
	node := ast.Node{
		Kind:  kind,
		Start: self.index,
		End:   self.index,
		Text:  self.current().Value,
	}
	self.next()
	return node
}
