package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCodeHasAMessage(t *testing.T) {
	seen := make(map[string]Code)
	for code := Null; code <= Unknown; code++ {
		message := code.Message()
		assert.NotEmpty(t, message, "code %d", code)

		if other, found := seen[message]; found {
			t.Errorf("codes %d and %d share the message %q", other, code, message)
		}
		seen[message] = code
	}
}

func TestCodeValuesAreStable(t *testing.T) {
	assert.Equal(t, Code(0), Null)
	assert.Equal(t, Code(26), InvalidFunctionDeclarationArgument)
	assert.Equal(t, Code(27), ProcessNotRunning)
	assert.Equal(t, Code(28), InterpreterInvalidCommand)
	assert.Equal(t, "E29", TypeMismatch.String())
}

func TestUnknownCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = (Unknown + 1).Message()
	})
}

func TestIsSyntax(t *testing.T) {
	assert.False(t, Null.IsSyntax())
	assert.True(t, ExpectedSeperator.IsSyntax())
	assert.False(t, ProcessNotRunning.IsSyntax())
	assert.False(t, TypeMismatch.IsSyntax())
}

func TestLocationFromOffset(t *testing.T) {
	source := "MAKE INT x = 1;\nSET x = 2;\n\nDO SAY(x);"

	tests := []struct {
		offset uint
		line   uint
		column uint
	}{
		{offset: 0, line: 1, column: 1},
		{offset: 5, line: 1, column: 6},
		{offset: 16, line: 2, column: 1},
		{offset: 20, line: 2, column: 5},
		{offset: 28, line: 4, column: 1},
		{offset: 1000, line: 4, column: 11},
	}

	for _, test := range tests {
		location := LocationFromOffset(source, test.offset)
		assert.Equal(t, test.line, location.Line, "offset %d", test.offset)
		assert.Equal(t, test.column, location.Column, "offset %d", test.offset)
	}
}

func TestErrorAtKeepsInnermostSpan(t *testing.T) {
	inner := Span{Start: Location{Line: 3, Column: 2}, End: Location{Line: 3, Column: 4}, Filename: "fn"}
	outer := Span{Start: Location{Line: 9, Column: 1}, End: Location{Line: 9, Column: 1}, Filename: "main"}

	err := New(TypeMismatch).At(inner).At(outer)
	assert.Equal(t, inner, err.Span)

	unlocated := New(TypeMismatch).At(outer)
	assert.Equal(t, outer, unlocated.Span)
}

func TestErrorString(t *testing.T) {
	err := NewWithSpan(DivisionByZero, Span{
		Start:    Location{Line: 2, Column: 7},
		End:      Location{Line: 2, Column: 7},
		Filename: "main.to",
	}).WithNote("divisor was %d", 0)

	assert.Equal(t, "E50: Division by zero at main.to:2:7 (divisor was 0)", err.Error())
}
