package parser

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
)

func parse(t *testing.T, source string) Program {
	parser := NewParser(source, "test")
	program, err := parser.Parse()
	require.Nil(t, err, "%v", err)
	return program
}

func TestParserStatements(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{
			source:   "DO SAYLN(1, x);",
			expected: "FunctionCall{FunctionIdentifier(SAYLN){Identifier(SAYLN), Arguments{Literal(1), Identifier(x)}}}",
		},
		{
			source:   "DO noop();",
			expected: "FunctionCall{FunctionIdentifier(noop){Identifier(noop), Arguments}}",
		},
		{
			source:   "MAKE INT x = 2 + 3 * 4;",
			expected: "MakeVar{TypeIdentifier(INT), Identifier(x), BinaryExpression(+){Literal(2), Operator(+), BinaryExpression(*){Literal(3), Operator(*), Literal(4)}}}",
		},
		{
			source:   "MAKE STRING[][] grid = [[\"a\"], []];",
			expected: "MakeVar{TypeIdentifier(STRING){ArrayDimension, ArrayDimension}, Identifier(grid), ArrayExpression{ArrayExpression{Literal(a)}, ArrayExpression}}",
		},
		{
			source:   "SET list[1] += -x;",
			expected: "SetVar{IndexExpression{Identifier(list), Literal(1)}, Operator(+=), UnaryExpression(-){Operator(-), Identifier(x)}}",
		},
		{
			source:   "SET 5 = x;",
			expected: "SetVar{Literal(5), Operator(=), Identifier(x)}",
		},
		{
			source:   "MAKE BOOL b = (1 + 2) * 3 == 9 && !FALSE;",
			expected: "MakeVar{TypeIdentifier(BOOL), Identifier(b), BinaryExpression(&&){BinaryExpression(==){BinaryExpression(*){BinaryExpression(+){Literal(1), Operator(+), Literal(2)}, Operator(*), Literal(3)}, Operator(==), Literal(9)}, Operator(&&), UnaryExpression(!){Operator(!), Literal(FALSE)}}}",
		},
		{
			source:   "MAKE FUNCTION add(INT a, INT[] b) { DO SAY(a); }",
			expected: "FunctionDeclaration(add){Identifier(add), FunctionDeclarationArguments{FunctionDeclarationArgument(a){TypeIdentifier(INT), Identifier(a)}, FunctionDeclarationArgument(b){TypeIdentifier(INT){ArrayDimension}, Identifier(b)}}, Block{FunctionCall{FunctionIdentifier(SAY){Identifier(SAY), Arguments{Identifier(a)}}}}}",
		},
	}

	for idx, test := range tests {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			program := parse(t, test.source)
			require.Len(t, program.Root.Body, 1)

			statement := program.Root.Body[0]
			if !assert.Equal(t, test.expected, statement.String()) {
				fmt.Println(spew.Sdump(statement))
			}
		})
	}
}

func TestParserTokenIndices(t *testing.T) {
	program := parse(t, "MAKE INT[] x = [1];\nSET x[0] -= 1;")
	require.Len(t, program.Root.Body, 2)

	makeVar := program.Root.Body[0]
	assert.Equal(t, lexer.Make, program.Token(makeVar).Kind)
	assert.Equal(t, 0, makeVar.Start)
	assert.Equal(t, 9, makeVar.End)

	typeIdent := makeVar.Body[0]
	assert.Equal(t, ast.Int, program.Token(typeIdent).DataType())
	assert.Equal(t, uint8(1), typeIdent.ArrayDepth())

	setVar := program.Root.Body[1]
	operator := setVar.Body[1]
	assert.Equal(t, ast.OperatorAssignSubtract, program.Token(operator).Operator())

	span := program.Span(setVar)
	assert.Equal(t, uint(2), span.Start.Line)
	assert.Equal(t, uint(1), span.Start.Column)
	assert.Equal(t, uint(14), span.End.Column)
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		source string
		code   errors.Code
	}{
		{source: "x = 1;", code: errors.ExpectedMaster},
		{source: "DO 5();", code: errors.ExpectedIdentifier},
		{source: "DO SAY;", code: errors.ExpectedArguments},
		{source: "DO SAY(1 2);", code: errors.ExpectedComma},
		{source: "DO SAY(1,);", code: errors.ExpectedArgument},
		{source: "DO SAY(1;", code: errors.WrongBracketRound},
		{source: "DO SAY(1)", code: errors.ExpectedSeperator},
		{source: "MAKE x = 1;", code: errors.ExpectedType},
		{source: "MAKE INT = 1;", code: errors.ExpectedIdentifier},
		{source: "MAKE INT x 1;", code: errors.ExpectedAssignOperator},
		{source: "MAKE INT x = ;", code: errors.ExpectedExpression},
		{source: "MAKE INT[ x = 1;", code: errors.WrongBracketSquare},
		{source: "SET x == 1;", code: errors.ExpectedAssignOperator},
		{source: "SET x = * 2;", code: errors.OperatorNotUnary},
		{source: "SET x = );", code: errors.InvalidExpression},
		{source: "SET x = [1, 2;", code: errors.WrongBracketSquare},
		{source: "MAKE FUNCTION f(a) { DO SAY(1); }", code: errors.InvalidFunctionDeclarationArgument},
		{source: "MAKE FUNCTION f() DO SAY(1);", code: errors.ExpectedBlock},
		{source: "MAKE FUNCTION f() {}", code: errors.EmptyBlock},
		{source: "MAKE FUNCTION f() { DO SAY(1);", code: errors.WrongBracketCurly},
		{source: "MAKE INT x = \"open;", code: errors.Syntax},
		{source: "MAKE FUNCTION f() { MAKE FUNCTION g() { DO SAY(1); } }", code: errors.Syntax},
	}

	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			parser := NewParser(test.source, "test")
			_, err := parser.Parse()
			require.NotNil(t, err)
			assert.Equal(t, test.code, err.Code, "%v", err)
		})
	}
}

func TestNestedFunctionDeclaration(t *testing.T) {
	parser := NewParser("MAKE FUNCTION f(INT a) {\n  MAKE FUNCTION g() { DO SAY(a); }\n}", "test")
	_, err := parser.Parse()
	require.NotNil(t, err)
	assert.Equal(t, errors.Syntax, err.Code)
	assert.Equal(t, uint(2), err.Span.Start.Line)
	assert.Equal(t, uint(8), err.Span.Start.Column)

	// sibling declarations stay valid once a body is closed
	program := parse(t, "MAKE FUNCTION f() { DO SAY(1); }\nMAKE FUNCTION g() { DO f(); }")
	assert.Len(t, program.Root.Body, 2)
}

func TestParserEmptyProgram(t *testing.T) {
	program := parse(t, "// nothing here\n")
	assert.Empty(t, program.Root.Body)
	assert.Equal(t, lexer.EOF, program.Tokens[len(program.Tokens)-1].Kind)
}
