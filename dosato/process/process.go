package process

import (
	"github.com/rs/zerolog"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

const DefaultCallStackLimit = 1024

// MaxCallStackLimit keeps deep recursion below the size of the Go stack.
const MaxCallStackLimit = 1 << 16

// Process is the execution context of one program run.
// It is not safe for concurrent use.
type Process struct {
	Running bool
	Scopes  []*Scope

	ErrorCode     errors.Code
	ErrorAstIndex int
	ErrorLocation errors.Location
	ExitCode      int

	CallStackLimit int
	// RetainRoot keeps the root scope alive once its block is exhausted,
	// so that more statements can be appended to it later.
	RetainRoot bool

	logger zerolog.Logger
}

func NewProcess(root *ast.Node, callStackLimit int, logger zerolog.Logger) *Process {
	if callStackLimit <= 0 {
		callStackLimit = DefaultCallStackLimit
	}
	if callStackLimit > MaxCallStackLimit {
		logger.Warn().Int("requested", callStackLimit).Int("max", MaxCallStackLimit).Msg("Call stack limit lowered")
		callStackLimit = MaxCallStackLimit
	}

	process := &Process{
		Running:        true,
		Scopes:         make([]*Scope, 0),
		CallStackLimit: callStackLimit,
		logger:         logger,
	}
	process.Scopes = append(process.Scopes, NewScope(root))
	return process
}

func (self *Process) Logger() zerolog.Logger {
	return self.logger
}

func (self *Process) Depth() int {
	return len(self.Scopes)
}

// PushScope enters a new block. It refuses to nest deeper than the call stack limit.
func (self *Process) PushScope(body *ast.Node) (*Scope, *errors.Error) {
	if len(self.Scopes) >= self.CallStackLimit {
		self.logger.Debug().Int("depth", len(self.Scopes)).Msg("scope refused: call stack limit reached")
		return nil, errors.New(errors.Recursion).
			WithNote("maximum call stack size of %d scopes exceeded", self.CallStackLimit)
	}

	scope := NewScope(body)
	self.Scopes = append(self.Scopes, scope)
	self.logger.Debug().Int("depth", len(self.Scopes)).Msg("scope pushed")
	return scope, nil
}

// PopScope leaves the innermost block and destroys its variables.
func (self *Process) PopScope() {
	if len(self.Scopes) == 0 {
		return
	}

	last := len(self.Scopes) - 1
	self.Scopes[last].Destroy()
	self.Scopes[last] = nil
	self.Scopes = self.Scopes[:last]
	self.logger.Debug().Int("depth", len(self.Scopes)).Msg("scope popped")
}

// PopScopesTo unwinds the scope stack down to `depth` scopes.
func (self *Process) PopScopesTo(depth int) {
	for len(self.Scopes) > depth {
		self.PopScope()
	}
}

func (self *Process) CurrentScope() *Scope {
	if len(self.Scopes) == 0 {
		return nil
	}
	return self.Scopes[len(self.Scopes)-1]
}

// Lookup searches the scope stack from the innermost to the outermost scope.
func (self *Process) Lookup(name string) *value.Variable {
	for idx := len(self.Scopes) - 1; idx >= 0; idx-- {
		if variable := self.Scopes[idx].GetVariable(name); variable != nil {
			return variable
		}
	}
	return nil
}

// Names lists every visible variable name, innermost first.
func (self *Process) Names() []string {
	names := make([]string, 0)
	for idx := len(self.Scopes) - 1; idx >= 0; idx-- {
		names = append(names, self.Scopes[idx].Names()...)
	}
	return names
}

// Fail records the error state and stops the process.
func (self *Process) Fail(code errors.Code, astIndex int, location errors.Location) {
	self.ErrorCode = code
	self.ErrorAstIndex = astIndex
	self.ErrorLocation = location
	self.ExitCode = int(code)
	self.Running = false

	self.logger.Debug().
		Str("code", code.String()).
		Int("ast_index", astIndex).
		Uint("line", location.Line).
		Uint("column", location.Column).
		Msg("process failed")
}

// Stop ends the process without an error.
func (self *Process) Stop(exitCode int) {
	self.ExitCode = exitCode
	self.Running = false
	self.logger.Debug().Int("exit_code", exitCode).Msg("process stopped")
}

// Destroy tears down every remaining scope.
func (self *Process) Destroy() {
	self.PopScopesTo(0)
	self.Running = false
}
