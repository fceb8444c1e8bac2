package process

import (
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

// Scope holds the variables of one executing block and the cursor into its statements.
type Scope struct {
	Variables   []*value.Variable
	RunningLine int
	Body        *ast.Node
}

func NewScope(body *ast.Node) *Scope {
	return &Scope{
		Variables:   make([]*value.Variable, 0),
		RunningLine: 0,
		Body:        body,
	}
}

// Finished reports whether the cursor moved past the last statement of the block.
func (self *Scope) Finished() bool {
	return self.Body == nil || self.RunningLine >= len(self.Body.Body)
}

// Current is the statement under the cursor.
func (self *Scope) Current() *ast.Node {
	return &self.Body.Body[self.RunningLine]
}

func (self *Scope) AddVariable(variable *value.Variable) *errors.Error {
	if self.GetVariable(variable.Name) != nil {
		return errors.New(errors.VariableAlreadyExists).WithNote("`%s` is already declared in this scope", variable.Name)
	}
	self.Variables = append(self.Variables, variable)
	return nil
}

func (self *Scope) GetVariable(name string) *value.Variable {
	for _, variable := range self.Variables {
		if variable.Name == name {
			return variable
		}
	}
	return nil
}

func (self *Scope) Names() []string {
	names := make([]string, 0, len(self.Variables))
	for _, variable := range self.Variables {
		names = append(names, variable.Name)
	}
	return names
}

// Destroy releases every variable owned by the scope.
func (self *Scope) Destroy() {
	for _, variable := range self.Variables {
		variable.Destroy()
	}
	self.Variables = nil
}
