package interpreter

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosato-lang/dosato/dosato/builtin"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

type bufferExecutor struct {
	output string
}

func (self *bufferExecutor) WriteStringTo(input string) error {
	self.output += input
	return nil
}

func (self *bufferExecutor) Sleep(time.Duration) {}

func parse(t *testing.T, source string) *parser.Program {
	t.Helper()
	p := parser.NewParser(source, "test.to")
	program, err := p.Parse()
	require.Nil(t, err, "unexpected parse error: %v", err)
	return &program
}

func newInterpreter(t *testing.T, source string, retainRoot bool) (*Interpreter, *bufferExecutor) {
	t.Helper()
	executor := &bufferExecutor{}
	interpreter := NewInterpreter(parse(t, source), executor, Options{
		CallStackLimit: 16,
		RetainRoot:     retainRoot,
		Logger:         zerolog.Nop(),
	})
	return interpreter, executor
}

func variable(t *testing.T, interpreter *Interpreter, name string) *value.Variable {
	t.Helper()
	found := interpreter.Process().Lookup(name)
	require.NotNil(t, found, "variable `%s` is not declared", name)
	return found
}

func TestMakeAndCompoundAssign(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT x = 2 + 3; SET x += 4;", true)

	require.Nil(t, interpreter.Run())
	x := variable(t, interpreter, "x")
	assert.Equal(t, value.ValueInt{Inner: 9}, x.Inner)
	assert.True(t, interpreter.Process().Running)
}

func TestAdvanceSteps(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT x = 1; SET x *= 7;", false)

	result, err := interpreter.Advance()
	require.Nil(t, err)
	assert.Equal(t, StepContinue, result)
	assert.Equal(t, value.ValueInt{Inner: 1}, variable(t, interpreter, "x").Inner)

	result, err = interpreter.Advance()
	require.Nil(t, err)
	assert.Equal(t, StepContinue, result)
	assert.Equal(t, value.ValueInt{Inner: 7}, variable(t, interpreter, "x").Inner)

	// exhausting the root block ends the process
	result, err = interpreter.Advance()
	require.Nil(t, err)
	assert.Equal(t, StepBlockFinished, result)
	assert.False(t, interpreter.Process().Running)
	assert.Equal(t, 0, interpreter.Process().ExitCode)

	_, err = interpreter.Advance()
	require.NotNil(t, err)
	assert.Equal(t, errors.ProcessNotRunning, err.Code)
	assert.Equal(t, errors.ProcessNotRunning, interpreter.Process().ErrorCode)
	assert.Equal(t, 0, interpreter.Process().ErrorAstIndex)
	assert.Equal(t, errors.Location{}, interpreter.Process().ErrorLocation)
}

func TestNotRunning(t *testing.T) {
	interpreter, _ := newInterpreter(t, "DO SAY(1);", false)
	interpreter.Process().Stop(0)

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.ProcessNotRunning, err.Code)

	err = interpreter.InterpretCommand(&ast.Node{Kind: ast.FunctionCallNodeKind})
	require.NotNil(t, err)
	assert.Equal(t, errors.ProcessNotRunning, err.Code)
}

func TestInvalidCommand(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT x = 1;", true)
	program := interpreter.program

	// a literal node used as a statement
	literal := program.Root.Body[0].Body[2]
	err := interpreter.InterpretCommand(&literal)
	require.NotNil(t, err)
	assert.Equal(t, errors.InterpreterInvalidCommand, err.Code)
	assert.False(t, interpreter.Process().Running)
	assert.Equal(t, errors.InterpreterInvalidCommand, interpreter.Process().ErrorCode)
}

func TestSayOutput(t *testing.T) {
	interpreter, executor := newInterpreter(t, `
		MAKE STRING name = "Dosato";
		MAKE DOUBLE half = 1 / 2.0;
		DO SAYLN("hello ", name, "! ", half, " ", 7 % 3, " ", 'c');
		DO SAY(TRUE && !FALSE);
	`, false)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, "hello Dosato! 0.5 1 c\nTRUE", executor.output)
	assert.False(t, interpreter.Process().Running)
	// the root scope has been popped and its variables released
	assert.Equal(t, 0, interpreter.Process().Depth())
}

func TestAssignToLiteral(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT x = 1;\nSET 5 = x;", true)

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.ExpectedRefrence, err.Code)

	proc := interpreter.Process()
	assert.False(t, proc.Running)
	assert.Equal(t, errors.ExpectedRefrence, proc.ErrorCode)
	assert.Equal(t, 1, proc.ErrorAstIndex)
	assert.Equal(t, uint(2), proc.ErrorLocation.Line)
	assert.Equal(t, uint(5), proc.ErrorLocation.Column)
	assert.Equal(t, int(errors.ExpectedRefrence), proc.ExitCode)
}

func TestAssignToConstant(t *testing.T) {
	interpreter, _ := newInterpreter(t, "SET limit = 3;", true)
	require.Nil(t, interpreter.AddConstant("limit", value.ValueInt{Inner: 10}))

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.CannotModifyConstant, err.Code)
	assert.Equal(t, value.ValueInt{Inner: 10}, variable(t, interpreter, "limit").Inner)

	interpreter, _ = newInterpreter(t, "SET limits[0] = 3;", true)
	require.Nil(t, interpreter.AddConstant("limits", value.ValueArray{
		Elements:    []*value.Variable{value.NewLiteral(value.ValueInt{Inner: 1})},
		ElementType: ast.Int,
		Depth:       1,
	}))

	err = interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.CannotModifyConstant, err.Code)
}

func TestDuplicateVariable(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT x = 1; MAKE LONG x = 2;", true)

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.VariableAlreadyExists, err.Code)
	assert.Equal(t, 1, interpreter.Process().ErrorAstIndex)
	assert.Equal(t, value.ValueInt{Inner: 1}, variable(t, interpreter, "x").Inner)
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		source string
		code   errors.Code
	}{
		{source: "MAKE INT x = 1 / 0;", code: errors.DivisionByZero},
		{source: "MAKE INT x = 5 % 0;", code: errors.DivisionByZero},
		{source: "MAKE INT x = \"abc\";", code: errors.TypeMismatch},
		{source: "MAKE INT x = y;", code: errors.UndefinedVariable},
		{source: "DO missing();", code: errors.UndefinedFunction},
		{source: "MAKE INT x = 1; SET x += \"a\";", code: errors.TypeMismatch},
		{source: "MAKE STRING s = \"a\"; SET s -= \"a\";", code: errors.TypeMismatch},
		{source: "MAKE INT[] a = [1, 2]; DO SAY(a[2]);", code: errors.ArrayOutOfBounds},
		{source: "MAKE INT[] a = [1, [2]];", code: errors.IncorrectArrayDepth},
		{source: "MAKE INT[] a = [1]; SET a = [2];", code: errors.TypeMismatch},
		{source: "MAKE INT[] a = []; MAKE STRING[][][] b = a;", code: errors.TypeMismatch},
		{source: "MAKE INT x = 1; SET x = y;", code: errors.UndefinedVariable},
		{source: "MAKE STRING s = \"ab\"; SET s[0] = \"c\";", code: errors.TypeMismatch},
		{source: "MAKE INT x = 99999999999999999999999;", code: errors.InvalidNumber},
		{source: "DO END(\"1\");", code: errors.TypeMismatch},
	}

	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			interpreter, _ := newInterpreter(t, test.source, true)
			err := interpreter.Run()
			require.NotNil(t, err)
			assert.Equal(t, test.code, err.Code, err.Error())
			assert.False(t, err.Span.IsEmpty(), "error should carry a position")
			assert.Equal(t, test.code, interpreter.Process().ErrorCode)
		})
	}
}

func TestUndefinedVariableSuggestion(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE INT counter = 1; SET countr += 1;", true)

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.UndefinedVariable, err.Code)
	assert.Contains(t, err.Notes, "did you mean `counter`?")
}

func TestArrays(t *testing.T) {
	interpreter, executor := newInterpreter(t, `
		MAKE INT[][] grid = [[1, 2], [3, 4]];
		SET grid[1][0] += 10;
		SET grid[0][1] = grid[1][0] * 2;
		DO SAY(grid, " ", grid[1], " ", "abc"[1]);
		MAKE DOUBLE[] mixed = [1, 2.5];
		MAKE LONG[] empty = [];
	`, true)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, "[[1, 26], [13, 4]] [13, 4] b", executor.output)

	mixed := variable(t, interpreter, "mixed")
	assert.Equal(t, ast.Double, mixed.BaseType())
	assert.Equal(t, value.ValueDouble{Inner: 1}, mixed.Elements()[0].Inner)
	assert.Equal(t, value.ValueDouble{Inner: 2.5}, mixed.Elements()[1].Inner)

	empty := variable(t, interpreter, "empty")
	assert.Equal(t, ast.Long, empty.BaseType())
	assert.Equal(t, uint8(1), empty.Depth())
	assert.Len(t, empty.Elements(), 0)
}

func TestStringConcatenation(t *testing.T) {
	interpreter, _ := newInterpreter(t, `
		MAKE STRING s = "n=";
		SET s += 4;
		SET s += TRUE;
	`, true)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, value.ValueString{Inner: "n=4TRUE"}, variable(t, interpreter, "s").Inner)
}

func TestFunctions(t *testing.T) {
	interpreter, executor := newInterpreter(t, `
		MAKE INT total = 0;
		MAKE FUNCTION add(INT amount, STRING label) {
			SET total += amount;
			DO SAYLN(label, total);
		}
		DO add(2, "a=");
		DO add(40, "b=");
	`, true)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, "a=2\nb=42\n", executor.output)
	assert.Equal(t, value.ValueInt{Inner: 42}, variable(t, interpreter, "total").Inner)
	// parameters do not leak into the caller
	assert.Nil(t, interpreter.Process().Lookup("amount"))
	assert.Equal(t, 1, interpreter.Process().Depth())
}

func TestFunctionErrors(t *testing.T) {
	tests := []struct {
		source string
		code   errors.Code
	}{
		{source: "MAKE FUNCTION f(INT a) { DO SAY(a); } DO f();", code: errors.TooFewArguments},
		{source: "MAKE FUNCTION f(INT a) { DO SAY(a); } DO f(1, 2);", code: errors.TooManyArguments},
		{source: "MAKE FUNCTION f(INT a) { DO SAY(a); } DO f(\"x\");", code: errors.TypeMismatch},
		{source: "MAKE FUNCTION f() { DO SAY(1); } MAKE FUNCTION f() { DO SAY(2); }", code: errors.FunctionAlreadyExists},
		{source: "MAKE FUNCTION SAY() { DO END(); }", code: errors.FunctionAlreadyExists},
		{source: "MAKE FUNCTION f(INT a, INT a) { DO SAY(a); }", code: errors.InvalidFunctionDeclarationArgument},
		{source: "MAKE FUNCTION f() { DO f(); } DO f();", code: errors.Recursion},
	}

	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			interpreter, _ := newInterpreter(t, test.source, true)
			err := interpreter.Run()
			require.NotNil(t, err)
			assert.Equal(t, test.code, err.Code, err.Error())
			// abandoned scopes are unwound
			assert.Equal(t, 1, interpreter.Process().Depth())
		})
	}
}

func TestErrorInsideFunctionKeepsInnermostPosition(t *testing.T) {
	interpreter, _ := newInterpreter(t, "MAKE FUNCTION f() {\n  MAKE INT x = 1 / 0;\n}\nDO f();", true)

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.DivisionByZero, err.Code)
	assert.Equal(t, uint(2), err.Span.Start.Line)
	assert.Equal(t, uint(2), interpreter.Process().ErrorLocation.Line)
	assert.Equal(t, 0, interpreter.Process().ErrorAstIndex)
}

func TestEnd(t *testing.T) {
	interpreter, executor := newInterpreter(t, `
		MAKE FUNCTION stop() {
			DO END(3);
			DO SAY("unreachable");
		}
		DO SAY("before");
		DO stop();
		DO SAY("after");
	`, false)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, "before", executor.output)
	assert.False(t, interpreter.Process().Running)
	assert.Equal(t, 3, interpreter.Process().ExitCode)
	assert.Equal(t, errors.Null, interpreter.Process().ErrorCode)
}

func TestContinue(t *testing.T) {
	interpreter, executor := newInterpreter(t, "MAKE INT x = 1;", true)
	require.Nil(t, interpreter.Run())

	interpreter.Continue(parse(t, "SET x += 1; MAKE FUNCTION show() { DO SAY(x); }"))
	require.Nil(t, interpreter.Run())

	// an error stops the process, Continue re-arms it
	interpreter.Continue(parse(t, "SET x /= 0;"))
	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.DivisionByZero, err.Code)

	interpreter.Continue(parse(t, "DO show();"))
	require.Nil(t, interpreter.Run())
	assert.Equal(t, "2", executor.output)
	assert.Equal(t, errors.Null, interpreter.Process().ErrorCode)
}

func TestArgumentsReleasedOnFailedCall(t *testing.T) {
	interpreter, _ := newInterpreter(t, `MAKE INT[] list = [1, 2]; DO CAPTURE(list, "text");`, false)

	var captured []*value.Variable
	require.Nil(t, interpreter.Registry().Register("CAPTURE", func(_ builtin.Executor, _ *process.Process, args []*value.Variable) *errors.Error {
		captured = args
		return errors.New(errors.Runtime).WithNote("capture always fails")
	}))

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.Runtime, err.Code)

	require.Len(t, captured, 2)
	for _, arg := range captured {
		assert.True(t, arg.IsNull())
	}
}

func TestArgumentsReleasedOnFailedArgument(t *testing.T) {
	var logs bytes.Buffer
	interpreter := NewInterpreter(parse(t, "DO SAY(1, missing, 3);"), &bufferExecutor{}, Options{
		CallStackLimit: 16,
		Logger:         zerolog.New(&logs).Level(zerolog.TraceLevel),
	})

	err := interpreter.Run()
	require.NotNil(t, err)
	assert.Equal(t, errors.UndefinedVariable, err.Code)
	// the first argument was evaluated before `missing` failed
	assert.Contains(t, logs.String(), `"released":1`)
	assert.NotContains(t, logs.String(), "Call: invoke")
}

func TestCharOutput(t *testing.T) {
	interpreter, executor := newInterpreter(t, "MAKE CHAR c = 'é'; DO SAY(c, 'a');", false)

	require.Nil(t, interpreter.Run())
	assert.Equal(t, "éa", executor.output)
}
