package lexer

import (
	"fmt"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

type Token struct {
	Kind  TokenKind
	Value string
	Span  errors.Span
	// Carry encodes the ast.Operator of an operator token
	// or the ast.DataType of a type keyword.
	Carry uint8
}

func (self Token) Operator() ast.Operator {
	return ast.Operator(self.Carry)
}

func (self Token) DataType() ast.DataType {
	return ast.DataType(self.Carry)
}

func (self Token) String() string {
	return fmt.Sprintf("%s(%q) @ %d:%d", self.Kind, self.Value, self.Span.Start.Line, self.Span.Start.Column)
}

type TokenKind uint8

const (
	Unknown TokenKind = iota
	EOF

	Semicolon // ;
	Comma     // ,
	LParen    // (
	RParen    // )
	LCurly    // {
	RCurly    // }
	LBracket  // [
	RBracket  // ]

	Operator // + - * / % ^ | & && || == != < > <= >= ! ~ = += -= ...

	Identifier
	TypeKeyword // INT, STRING, ...
	Do          // DO
	Set         // SET
	Make        // MAKE
	Function    // FUNCTION
	True        // TRUE
	False       // FALSE

	Int
	Float
	String
	Char
)

func (self TokenKind) String() string {
	switch self {
	case Unknown:
		return "Unknown"
	case EOF:
		return "EOF"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LParen:
		return "("
	case RParen:
		return ")"
	case LCurly:
		return "{"
	case RCurly:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Operator:
		return "operator"
	case Identifier:
		return "identifier"
	case TypeKeyword:
		return "type"
	case Do:
		return "DO"
	case Set:
		return "SET"
	case Make:
		return "MAKE"
	case Function:
		return "FUNCTION"
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Char:
		return "char"
	default:
		panic(fmt.Sprintf("A new token kind (%d) was added without updating this code", self))
	}
}

// IsMaster reports whether the token may start a statement.
func (self TokenKind) IsMaster() bool {
	return self == Do || self == Set || self == Make
}

var keywords = map[string]TokenKind{
	"DO":       Do,
	"SET":      Set,
	"MAKE":     Make,
	"FUNCTION": Function,
	"TRUE":     True,
	"FALSE":    False,
}

func newToken(kind TokenKind, value string, span errors.Span) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Span:  span,
	}
}

func UnknownToken(location errors.Location) Token {
	return newToken(Unknown, "Unknown", errors.Span{Start: location, End: location})
}
