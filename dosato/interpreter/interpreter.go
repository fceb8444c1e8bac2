package interpreter

import (
	"github.com/rs/zerolog"

	"github.com/dosato-lang/dosato/dosato/builtin"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

type StepResult uint8

const (
	// A statement was interpreted
	StepContinue StepResult = iota
	// The innermost block was exhausted and its scope popped
	StepBlockFinished
)

type Options struct {
	CallStackLimit int
	// Keep the root scope once the program is exhausted so that Continue can append to it
	RetainRoot bool
	Logger     zerolog.Logger
}

type Interpreter struct {
	process  *process.Process
	registry *builtin.Registry
	// the program the innermost scope belongs to, swapped while calling user functions
	program *parser.Program
	logger  zerolog.Logger
}

func NewInterpreter(program *parser.Program, executor builtin.Executor, options Options) *Interpreter {
	proc := process.NewProcess(&program.Root, options.CallStackLimit, options.Logger)
	proc.RetainRoot = options.RetainRoot

	return &Interpreter{
		process:  proc,
		registry: builtin.NewRegistry(executor),
		program:  program,
		logger:   options.Logger,
	}
}

func (self *Interpreter) Process() *process.Process {
	return self.process
}

func (self *Interpreter) Registry() *builtin.Registry {
	return self.registry
}

// AddConstant declares a constant variable in the root scope.
func (self *Interpreter) AddConstant(name string, inner value.Value) *errors.Error {
	if len(self.process.Scopes) == 0 {
		return errors.New(errors.ProcessNotRunning)
	}
	return self.process.Scopes[0].AddVariable(value.NewVariable(name, inner, true, true))
}

func (self *Interpreter) checkRunning() *errors.Error {
	if self.process.Running && self.process.CurrentScope() != nil {
		return nil
	}

	self.process.ErrorCode = errors.ProcessNotRunning
	self.process.ErrorAstIndex = 0
	self.process.ErrorLocation = errors.Location{}
	return errors.New(errors.ProcessNotRunning)
}

// Advance executes exactly one statement of the innermost scope.
// If that scope has no statements left, it is popped instead.
func (self *Interpreter) Advance() (StepResult, *errors.Error) {
	if err := self.checkRunning(); err != nil {
		return StepContinue, err
	}

	scope := self.process.CurrentScope()

	if scope.Finished() {
		if self.process.RetainRoot && self.process.Depth() == 1 {
			return StepBlockFinished, nil
		}

		self.logger.Trace().Int("depth", self.process.Depth()).Msg("Advance: end of block")
		self.process.PopScope()
		if self.process.Depth() == 0 {
			self.process.Stop(self.process.ExitCode)
		}
		return StepBlockFinished, nil
	}

	node := scope.Current()
	self.logger.Trace().
		Str("statement", node.Kind.String()).
		Int("depth", self.process.Depth()).
		Int("line", scope.RunningLine).
		Msg("Advance: interpret")

	err := self.interpretCommand(node)
	if err != nil {
		self.logger.Trace().Err(err).Int("line", scope.RunningLine).Msg("Advance: error")
		self.fail(err, scope.RunningLine)
	}
	scope.RunningLine++
	return StepContinue, err
}

// InterpretCommand executes a single statement outside of the cursor-driven loop.
func (self *Interpreter) InterpretCommand(node *ast.Node) *errors.Error {
	if err := self.checkRunning(); err != nil {
		return err
	}
	if err := self.interpretCommand(node); err != nil {
		self.fail(err, 0)
		return err
	}
	return nil
}

// Run advances until the process stops or, with a retained root, the root block is exhausted.
func (self *Interpreter) Run() *errors.Error {
	if err := self.checkRunning(); err != nil {
		return err
	}

	for self.process.Running {
		if self.process.RetainRoot && self.process.Depth() == 1 && self.process.CurrentScope().Finished() {
			return nil
		}
		if _, err := self.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Continue appends another program to the retained root scope and re-arms the process
// after an error. Earlier variables and functions remain visible.
func (self *Interpreter) Continue(program *parser.Program) {
	self.process.PopScopesTo(1)
	if self.process.Depth() == 0 {
		self.process.Scopes = append(self.process.Scopes, process.NewScope(&program.Root))
	}

	root := self.process.Scopes[0]
	root.Body = &program.Root
	root.RunningLine = 0

	self.program = program
	self.process.Running = true
	self.process.ErrorCode = errors.Null
	self.process.ErrorAstIndex = 0
	self.process.ErrorLocation = errors.Location{}
}

// the first failure is recorded, outer statements of a failing call keep it intact
func (self *Interpreter) fail(err *errors.Error, astIndex int) {
	if !self.process.Running {
		return
	}
	self.process.Fail(err.Code, astIndex, err.Span.Start)
}

func (self *Interpreter) span(node *ast.Node) errors.Span {
	return self.program.Span(*node)
}
