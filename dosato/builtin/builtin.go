package builtin

import (
	"strings"
	"time"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

func builtins() map[string]Function {
	return map[string]Function{
		"SAY":   Say,
		"SAYLN": SayLn,
		"END":   End,
		"SLEEP": Sleep,
	}
}

func checkArity(name string, args []*value.Variable, min int, max int) *errors.Error {
	if len(args) < min {
		return errors.New(errors.TooFewArguments).
			WithNote("function `%s` takes at least %d argument(s) but %d were given", name, min, len(args))
	}
	if len(args) > max {
		return errors.New(errors.TooManyArguments).
			WithNote("function `%s` takes at most %d argument(s) but %d were given", name, max, len(args))
	}
	return nil
}

func integerArg(name string, arg *value.Variable) (int64, *errors.Error) {
	if !arg.Type().IsNumeric() || arg.Type().IsFloating() {
		return 0, errors.New(errors.TypeMismatch).
			WithNote("function `%s` expects an integer, found %s", name, arg.Type())
	}
	return value.SignedNumber(arg.Inner), nil
}

func display(args []*value.Variable) (string, *errors.Error) {
	var output strings.Builder
	for _, arg := range args {
		disp, err := value.ToString(arg.Inner)
		if err != nil {
			return "", err
		}
		output.WriteString(disp)
	}
	return output.String(), nil
}

func write(executor Executor, output string) *errors.Error {
	if err := executor.WriteStringTo(output); err != nil {
		return errors.New(errors.Runtime).WithNote("could not write output: %s", err.Error())
	}
	return nil
}

// Say prints its arguments without a separator.
func Say(executor Executor, _ *process.Process, args []*value.Variable) *errors.Error {
	output, err := display(args)
	if err != nil {
		return err
	}
	return write(executor, output)
}

func SayLn(executor Executor, _ *process.Process, args []*value.Variable) *errors.Error {
	output, err := display(args)
	if err != nil {
		return err
	}
	return write(executor, output+"\n")
}

// End stops the process with an optional exit code.
func End(_ Executor, proc *process.Process, args []*value.Variable) *errors.Error {
	if err := checkArity("END", args, 0, 1); err != nil {
		return err
	}

	code := int64(0)
	if len(args) == 1 {
		number, err := integerArg("END", args[0])
		if err != nil {
			return err
		}
		code = number
	}

	proc.Stop(int(code))
	return nil
}

// Sleep blocks for the given number of milliseconds.
func Sleep(executor Executor, _ *process.Process, args []*value.Variable) *errors.Error {
	if err := checkArity("SLEEP", args, 1, 1); err != nil {
		return err
	}

	millis, err := integerArg("SLEEP", args[0])
	if err != nil {
		return err
	}
	if millis < 0 {
		return errors.New(errors.InvalidNumber).WithNote("can not sleep for a negative duration")
	}

	executor.Sleep(time.Duration(millis) * time.Millisecond)
	return nil
}
