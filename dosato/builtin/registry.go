package builtin

import (
	"sort"
	"time"

	"github.com/dosato-lang/dosato/dosato/diagnostic"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

// Executor connects builtin functions to the host.
type Executor interface {
	// Writes the given string (produced by SAY for instance) to any arbitrary destination
	WriteStringTo(input string) error
	// Blocks for the given duration
	Sleep(duration time.Duration)
}

// Function receives its evaluated arguments. The caller owns and destroys them.
type Function func(executor Executor, proc *process.Process, args []*value.Variable) *errors.Error

type Registry struct {
	executor  Executor
	functions map[string]Function
}

// NewRegistry returns a registry preloaded with the builtin functions.
func NewRegistry(executor Executor) *Registry {
	registry := &Registry{
		executor:  executor,
		functions: make(map[string]Function),
	}

	for name, function := range builtins() {
		registry.functions[name] = function
	}
	return registry
}

func (self *Registry) Register(name string, function Function) *errors.Error {
	if _, found := self.functions[name]; found {
		return errors.New(errors.FunctionAlreadyExists).WithNote("function `%s` is already defined", name)
	}
	self.functions[name] = function
	return nil
}

func (self *Registry) Has(name string) bool {
	_, found := self.functions[name]
	return found
}

func (self *Registry) Names() []string {
	names := make([]string, 0, len(self.functions))
	for name := range self.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a function by name. Nil means success.
func (self *Registry) Call(name string, args []*value.Variable, proc *process.Process) *errors.Error {
	function, found := self.functions[name]
	if !found {
		err := errors.New(errors.UndefinedFunction).WithNote("function `%s` is not defined", name)
		if suggestion, ok := diagnostic.Suggest(name, self.Names()); ok {
			err.WithNote("did you mean `%s`?", suggestion)
		}
		return err
	}
	return function(self.executor, proc, args)
}
