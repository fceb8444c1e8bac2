package lexer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

type Lexer struct {
	currentIndex int
	currentChar  *rune
	nextChar     *rune
	program      []rune
	location     errors.Location
	filename     string
	upper        cases.Caser
}

func NewLexer(programSource string, filename string) Lexer {
	program := []rune(programSource)

	lexer := Lexer{
		currentIndex: -1,
		program:      program,
		location: errors.Location{
			Index:  0,
			Line:   1,
			Column: 1,
		},
		filename: filename,
		upper:    cases.Upper(language.Und),
	}
	lexer.seek(0)
	return lexer
}

func (self *Lexer) seek(index int) {
	self.currentIndex = index
	programLen := len(self.program)

	if self.currentIndex >= programLen {
		self.currentChar = nil
	} else {
		self.currentChar = &self.program[self.currentIndex]
	}

	if self.currentIndex+1 >= programLen {
		self.nextChar = nil
	} else {
		self.nextChar = &self.program[self.currentIndex+1]
	}
}

func (self *Lexer) advance() {
	self.location.Advance(self.currentChar != nil && *self.currentChar == '\n')
	self.seek(self.currentIndex + 1)
}

func (self *Lexer) span(start errors.Location, end errors.Location) errors.Span {
	return errors.Span{
		Start:    start,
		End:      end,
		Filename: self.filename,
	}
}

func (self *Lexer) skipLineComment() {
	for self.currentChar != nil && *self.currentChar != '\n' {
		self.advance()
	}
}

func (self *Lexer) skipBlockComment() *errors.Error {
	start := self.location
	self.advance()
	self.advance()

	for {
		if self.currentChar == nil || self.nextChar == nil {
			return errors.NewWithSpan(errors.Syntax, self.span(start, self.location)).
				WithNote("block comment is never closed")
		}
		if *self.currentChar == '*' && *self.nextChar == '/' {
			self.advance()
			self.advance()
			return nil
		}
		self.advance()
	}
}

// Tokenize scans the whole input. The last token is always EOF.
func (self *Lexer) Tokenize() ([]Token, *errors.Error) {
	tokens := make([]Token, 0)
	for {
		token, err := self.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

func (self *Lexer) NextToken() (Token, *errors.Error) {
outer:
	for self.currentChar != nil {
		switch *self.currentChar {
		case ' ', '\n', '\t', '\r':
			self.advance()
		case '"':
			return self.makeString()
		case '\'':
			return self.makeChar()
		case ';':
			return self.makeSingleChar(Semicolon), nil
		case ',':
			return self.makeSingleChar(Comma), nil
		case '(':
			return self.makeSingleChar(LParen), nil
		case ')':
			return self.makeSingleChar(RParen), nil
		case '{':
			return self.makeSingleChar(LCurly), nil
		case '}':
			return self.makeSingleChar(RCurly), nil
		case '[':
			return self.makeSingleChar(LBracket), nil
		case ']':
			return self.makeSingleChar(RBracket), nil
		case '/':
			if self.nextChar != nil {
				switch *self.nextChar {
				case '/':
					self.skipLineComment()
					continue outer
				case '*':
					if err := self.skipBlockComment(); err != nil {
						return UnknownToken(self.location), err
					}
					continue outer
				}
			}
			return self.makeOperator(), nil
		case '+', '-', '*', '%', '^', '|', '&', '=', '!', '~', '<', '>':
			return self.makeOperator(), nil
		default:
			if isDigit(*self.currentChar) {
				return self.makeNumber(), nil
			}
			if isLetter(*self.currentChar) {
				return self.makeName(), nil
			}
			return UnknownToken(self.location), errors.NewWithSpan(errors.Syntax, self.span(self.location, self.location)).
				WithNote("illegal character: %c", *self.currentChar)
		}
	}
	return newToken(EOF, "EOF", self.span(self.location, self.location)), nil
}

func (self *Lexer) makeSingleChar(kind TokenKind) Token {
	token := newToken(kind, string(*self.currentChar), self.span(self.location, self.location))
	self.advance()
	return token
}

// Operators made of one character, optionally followed by a second one.
var singleOperators = map[rune]ast.Operator{
	'+': ast.OperatorAdd,
	'-': ast.OperatorSubtract,
	'*': ast.OperatorMultiply,
	'/': ast.OperatorDivide,
	'%': ast.OperatorModulo,
	'^': ast.OperatorXor,
	'|': ast.OperatorOr,
	'&': ast.OperatorAnd,
	'=': ast.OperatorAssign,
	'!': ast.OperatorNot,
	'~': ast.OperatorNotBitwise,
	'<': ast.OperatorLessThan,
	'>': ast.OperatorGreaterThan,
}

var doubleOperators = map[string]ast.Operator{
	"+=": ast.OperatorAssignAdd,
	"-=": ast.OperatorAssignSubtract,
	"*=": ast.OperatorAssignMultiply,
	"/=": ast.OperatorAssignDivide,
	"%=": ast.OperatorAssignModulo,
	"^=": ast.OperatorAssignXor,
	"|=": ast.OperatorAssignOr,
	"&=": ast.OperatorAssignAnd,
	"||": ast.OperatorLogicOr,
	"&&": ast.OperatorLogicAnd,
	"==": ast.OperatorEqual,
	"!=": ast.OperatorNotEqual,
	"<=": ast.OperatorLessThanOrEqual,
	">=": ast.OperatorGreaterThanOrEqual,
}

func (self *Lexer) makeOperator() Token {
	startLocation := self.location

	if self.nextChar != nil {
		value := string([]rune{*self.currentChar, *self.nextChar})
		if op, found := doubleOperators[value]; found {
			self.advance()
			token := newToken(Operator, value, self.span(startLocation, self.location))
			token.Carry = uint8(op)
			self.advance()
			return token
		}
	}

	op := singleOperators[*self.currentChar]
	token := newToken(Operator, string(*self.currentChar), self.span(startLocation, startLocation))
	token.Carry = uint8(op)
	self.advance()
	return token
}

func (self *Lexer) makeString() (Token, *errors.Error) {
	startLocation := self.location
	var valueBuf []rune

	// skip opening quote
	self.advance()

	for self.currentChar != nil && *self.currentChar != '"' {
		if *self.currentChar == '\\' {
			char, err := self.makeEscapeSequence()
			if err != nil {
				return UnknownToken(startLocation), err
			}
			valueBuf = append(valueBuf, char)
			continue
		}
		valueBuf = append(valueBuf, *self.currentChar)
		self.advance()
	}

	if self.currentChar == nil {
		return UnknownToken(startLocation), errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("string literal is never closed")
	}

	token := newToken(String, string(valueBuf), self.span(startLocation, self.location))

	// skip closing quote
	self.advance()
	return token, nil
}

func (self *Lexer) makeChar() (Token, *errors.Error) {
	startLocation := self.location
	self.advance()

	if self.currentChar == nil || *self.currentChar == '\'' {
		return UnknownToken(startLocation), errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("character literal must contain exactly one character")
	}

	var char rune
	if *self.currentChar == '\\' {
		escaped, err := self.makeEscapeSequence()
		if err != nil {
			return UnknownToken(startLocation), err
		}
		char = escaped
	} else {
		char = *self.currentChar
		self.advance()
	}

	if self.currentChar == nil || *self.currentChar != '\'' {
		return UnknownToken(startLocation), errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("character literal must contain exactly one character")
	}
	if char > 0xFF {
		return UnknownToken(startLocation), errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("character literal %q does not fit into a single byte", char)
	}

	token := newToken(Char, string(char), self.span(startLocation, self.location))
	self.advance()
	return token, nil
}

func (self *Lexer) makeEscapeSequence() (rune, *errors.Error) {
	startLocation := self.location
	self.advance()
	if self.currentChar == nil {
		return ' ', errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("unfinished escape sequence")
	}

	var char rune
	switch *self.currentChar {
	case '\\':
		char = '\\'
	case '\'':
		char = '\''
	case '"':
		char = '"'
	case 'n':
		char = '\n'
	case 'r':
		char = '\r'
	case 't':
		char = '\t'
	case '0':
		char = 0
	default:
		return ' ', errors.NewWithSpan(errors.Syntax, self.span(startLocation, self.location)).
			WithNote("invalid escape sequence: \\%c", *self.currentChar)
	}
	self.advance()
	return char, nil
}

func (self *Lexer) makeNumber() Token {
	startLocation := self.location
	lastEnd := startLocation
	value := ""
	kind := Int

	for self.currentChar != nil && (isDigit(*self.currentChar) || *self.currentChar == '_') {
		value += string(*self.currentChar)
		lastEnd = self.location
		self.advance()
	}

	if self.currentChar != nil && *self.currentChar == '.' && self.nextChar != nil && isDigit(*self.nextChar) {
		kind = Float

		value += "."
		self.advance()
		for self.currentChar != nil && isDigit(*self.currentChar) {
			value += string(*self.currentChar)
			lastEnd = self.location
			self.advance()
		}
	}

	return newToken(kind, strings.ReplaceAll(value, "_", ""), self.span(startLocation, lastEnd))
}

func (self *Lexer) makeName() Token {
	startLocation := self.location
	lastEnd := startLocation
	value := ""

	for self.currentChar != nil && (isLetter(*self.currentChar) || isDigit(*self.currentChar)) {
		value += string(*self.currentChar)
		lastEnd = self.location
		self.advance()
	}

	span := self.span(startLocation, lastEnd)
	upper := self.upper.String(value)

	if kind, found := keywords[upper]; found {
		return newToken(kind, upper, span)
	}
	if typ, found := ast.DataTypeFromKeyword(upper); found {
		token := newToken(TypeKeyword, upper, span)
		token.Carry = uint8(typ)
		return token
	}
	return newToken(Identifier, value, span)
}

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func isLetter(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char == '_'
}
