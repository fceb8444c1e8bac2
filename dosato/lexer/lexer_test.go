package lexer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

func TestLexer(t *testing.T) {
	start := time.Now()

	program := "MAKE INT[] list = [10, 2.5]; // comment\n/* block\ncomment */ SET list[0] += 'a';\ndo SAYLN(\"hi\\n\", TRUE);"
	lexer := NewLexer(program, "test")

	tokens, err := lexer.Tokenize()
	require.Nil(t, err)
	fmt.Printf("Lex: %v\n", time.Since(start))

	expected := []TokenKind{
		Make, TypeKeyword, LBracket, RBracket, Identifier, Operator, LBracket, Int, Comma, Float, RBracket, Semicolon,
		Set, Identifier, LBracket, Int, RBracket, Operator, Char, Semicolon,
		Do, Identifier, LParen, String, Comma, True, RParen, Semicolon,
		EOF,
	}

	kinds := make([]TokenKind, 0, len(tokens))
	for _, token := range tokens {
		kinds = append(kinds, token.Kind)
	}
	assert.Equal(t, expected, kinds)

	assert.Equal(t, ast.Int, tokens[1].DataType())
	assert.Equal(t, ast.OperatorAssign, tokens[5].Operator())
	assert.Equal(t, "2.5", tokens[9].Value)
	assert.Equal(t, ast.OperatorAssignAdd, tokens[17].Operator())
	assert.Equal(t, "a", tokens[18].Value)
	assert.Equal(t, "DO", tokens[20].Value)
	assert.Equal(t, "SAYLN", tokens[21].Value)
	assert.Equal(t, "hi\n", tokens[23].Value)

	// SET is the first token of the third line
	assert.Equal(t, uint(3), tokens[12].Span.Start.Line)
	assert.Equal(t, uint(12), tokens[12].Span.Start.Column)
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input    string
		operator ast.Operator
	}{
		{input: "+", operator: ast.OperatorAdd},
		{input: "-=", operator: ast.OperatorAssignSubtract},
		{input: "&&", operator: ast.OperatorLogicAnd},
		{input: "&", operator: ast.OperatorAnd},
		{input: "&=", operator: ast.OperatorAssignAnd},
		{input: "||", operator: ast.OperatorLogicOr},
		{input: "==", operator: ast.OperatorEqual},
		{input: "=", operator: ast.OperatorAssign},
		{input: "!=", operator: ast.OperatorNotEqual},
		{input: "!", operator: ast.OperatorNot},
		{input: "~", operator: ast.OperatorNotBitwise},
		{input: "<=", operator: ast.OperatorLessThanOrEqual},
		{input: ">", operator: ast.OperatorGreaterThan},
		{input: "%=", operator: ast.OperatorAssignModulo},
		{input: "/", operator: ast.OperatorDivide},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			lexer := NewLexer(test.input, "test")
			token, err := lexer.NextToken()
			require.Nil(t, err)
			assert.Equal(t, Operator, token.Kind)
			assert.Equal(t, test.operator, token.Operator())
			assert.Equal(t, test.input, token.Value)

			eof, err := lexer.NextToken()
			require.Nil(t, err)
			assert.Equal(t, EOF, eof.Kind)
		})
	}
}

func TestLexerKeywordsIgnoreCase(t *testing.T) {
	lexer := NewLexer("make Int x", "test")
	tokens, err := lexer.Tokenize()
	require.Nil(t, err)

	assert.Equal(t, Make, tokens[0].Kind)
	assert.Equal(t, TypeKeyword, tokens[1].Kind)
	assert.Equal(t, ast.Int, tokens[1].DataType())
	assert.Equal(t, Identifier, tokens[2].Kind)
	assert.Equal(t, "x", tokens[2].Value)
}

func TestLexerErrors(t *testing.T) {
	tests := []string{
		"\"never closed",
		"'ab'",
		"''",
		"\"bad \\q escape\"",
		"/* open",
		"MAKE INT x = 1 $ 2;",
	}

	for _, input := range tests {
		lexer := NewLexer(input, "test")
		_, err := lexer.Tokenize()
		require.NotNil(t, err, input)
		assert.Equal(t, errors.Syntax, err.Code, input)
	}
}
