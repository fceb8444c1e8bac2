package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dosato-lang/dosato/dosato/errors"
)

const program = "MAKE INT x = 1;\nSET x = \"a\";\nDO SAY(x);"

func TestReport(t *testing.T) {
	diagnostic := Report(errors.TypeMismatch, program, "main.to", 20)

	assert.Equal(t, errors.TypeMismatch, diagnostic.Code)
	assert.Equal(t, uint(2), diagnostic.Span.Start.Line)
	assert.Equal(t, uint(5), diagnostic.Span.Start.Column)
	assert.Equal(t, "E29: Type mismatch\nAt line 2:5", diagnostic.Short())
}

func TestDisplayWithoutColor(t *testing.T) {
	err := errors.NewWithSpan(errors.UndefinedVariable, errors.Span{
		Start:    errors.Location{Line: 2, Column: 5},
		End:      errors.Location{Line: 2, Column: 5},
		Filename: "main.to",
	}).WithNote("did you mean `x`?")

	output := FromError(err).Display(program, false)

	assert.NotContains(t, output, "\x1b[")
	assert.Contains(t, output, "Error at main.to:2:5")
	assert.Contains(t, output, "SET x = \"a\";")
	assert.Contains(t, output, "MAKE INT x = 1;")
	assert.Contains(t, output, "DO SAY(x);")
	assert.Contains(t, output, strings.Repeat(" ", 11)+"^")
	assert.Contains(t, output, "E30: Variable is not defined")
	assert.Contains(t, output, " - note: did you mean `x`?")
}

func TestDisplayWithColor(t *testing.T) {
	err := errors.NewWithSpan(errors.TypeMismatch, errors.Span{
		Start:    errors.Location{Line: 1, Column: 6},
		End:      errors.Location{Line: 1, Column: 8},
		Filename: "main.to",
	})

	output := FromError(err).Display(program, true)
	assert.Contains(t, output, "\x1b[1;31m")
	assert.Contains(t, output, "^^^")
}

func TestDisplayWithoutSpan(t *testing.T) {
	output := FromError(errors.New(errors.ProcessNotRunning)).Display(program, false)
	assert.True(t, strings.HasPrefix(output, "Error in "))
	assert.Contains(t, output, errors.ProcessNotRunning.Message())
}

func TestSuggest(t *testing.T) {
	suggestion, found := Suggest("SAYL", []string{"SAY", "SAYLN", "END", "SLEEP"})
	assert.True(t, found)
	assert.Contains(t, []string{"SAY", "SAYLN"}, suggestion)

	suggestion, found = Suggest("countr", []string{"counter", "total"})
	assert.True(t, found)
	assert.Equal(t, "counter", suggestion)

	_, found = Suggest("completelyDifferent", []string{"x", "y"})
	assert.False(t, found)

	_, found = Suggest("x", []string{"x"})
	assert.False(t, found)
}
