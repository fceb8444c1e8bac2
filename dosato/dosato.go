package dosato

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/dosato-lang/dosato/dosato/builtin"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/interpreter"
	"github.com/dosato-lang/dosato/dosato/parser"
	"github.com/dosato-lang/dosato/dosato/value"
)

type Options struct {
	// Zero selects process.DefaultCallStackLimit
	CallStackLimit int
	// Declared as constant variables in the root scope
	Constants map[string]value.Value
	Logger    zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
	}
}

// Parse tokenizes and parses the given source code.
func Parse(filename string, source string) (parser.Program, *errors.Error) {
	p := parser.NewParser(source, filename)
	return p.Parse()
}

// Run executes a program until it ends or fails.
// The exit code is the argument of `END`, 0 if the program ran to its end, or the error code.
func Run(executor builtin.Executor, filename string, source string, options Options) (int, *errors.Error) {
	program, err := Parse(filename, source)
	if err != nil {
		options.Logger.Debug().Err(err).Str("filename", filename).Msg("parsing failed")
		return int(err.Code), err
	}

	instance, err := NewInterpreter(&program, executor, options, false)
	if err != nil {
		return int(err.Code), err
	}
	defer instance.Process().Destroy()

	if err := instance.Run(); err != nil {
		return instance.Process().ExitCode, err
	}
	return instance.Process().ExitCode, nil
}

// NewInterpreter prepares an interpreter with the configured constants in its root scope.
func NewInterpreter(program *parser.Program, executor builtin.Executor, options Options, retainRoot bool) (*interpreter.Interpreter, *errors.Error) {
	instance := interpreter.NewInterpreter(program, executor, interpreter.Options{
		CallStackLimit: options.CallStackLimit,
		RetainRoot:     retainRoot,
		Logger:         options.Logger,
	})

	names := make([]string, 0, len(options.Constants))
	for name := range options.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := instance.AddConstant(name, options.Constants[name]); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
