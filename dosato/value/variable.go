package value

import "github.com/dosato-lang/dosato/dosato/parser/ast"

// LiteralName marks variables which are temporaries and not bound to a scope.
const LiteralName = "-lit"

// Variable is a named, possibly constant value slot.
// An owned variable releases its payload when destroyed, an alias never does.
type Variable struct {
	Name     string
	Constant bool
	Inner    Value

	owned      bool
	destroyed  bool
	generation uint64
}

// NewVariable wraps a payload. With takeOwnership unset the variable is an alias:
// it shares the payload of another variable and destroying it is a no-op.
func NewVariable(name string, inner Value, takeOwnership bool, constant bool) *Variable {
	if inner == nil {
		inner = ValueNull{}
	}
	return &Variable{
		Name:     name,
		Constant: constant,
		Inner:    inner,
		owned:    takeOwnership,
	}
}

// NewNullVariable returns an empty slot. It is never a valid operand.
func NewNullVariable() *Variable {
	return NewVariable(LiteralName, ValueNull{}, true, false)
}

// NewLiteral is an owned, non-constant temporary.
func NewLiteral(inner Value) *Variable {
	return NewVariable(LiteralName, inner, true, false)
}

// NewArray creates an owned array of the given elements, taking ownership of them.
func NewArray(name string, elementType ast.DataType, depth uint8, elements []*Variable) *Variable {
	return NewVariable(name, ValueArray{
		Elements:    elements,
		ElementType: elementType,
		Depth:       depth,
	}, true, false)
}

func (self *Variable) Type() ast.DataType {
	return self.Inner.Type()
}

func (self *Variable) IsArray() bool {
	return self.Inner.Type() == ast.Array
}

func (self *Variable) IsNull() bool {
	return self.Inner.Type() == ast.Null
}

func (self *Variable) IsOwned() bool {
	return self.owned
}

// Depth is the number of array levels, 0 for scalars.
func (self *Variable) Depth() uint8 {
	if array, ok := self.Inner.(ValueArray); ok {
		return array.Depth
	}
	return 0
}

// BaseType is the innermost scalar type of an array or the type of a scalar.
func (self *Variable) BaseType() ast.DataType {
	if array, ok := self.Inner.(ValueArray); ok {
		return array.ElementType
	}
	return self.Inner.Type()
}

// Elements returns the children of an array variable, nil for scalars.
func (self *Variable) Elements() []*Variable {
	if array, ok := self.Inner.(ValueArray); ok {
		return array.Elements
	}
	return nil
}

// Destroy releases an owned payload, recursively for arrays, and leaves the
// variable empty. Calling it twice or on an alias does nothing.
func (self *Variable) Destroy() {
	if !self.owned || self.destroyed {
		return
	}

	if array, ok := self.Inner.(ValueArray); ok {
		for _, element := range array.Elements {
			element.Destroy()
		}
	}

	self.Inner = ValueNull{}
	self.destroyed = true
	self.generation++
}

// Clone deep copies the variable. The clone is owned, non-constant and
// independent of the source's lifetime.
func (self *Variable) Clone() *Variable {
	return NewVariable(self.Name, self.Inner.clone(), true, false)
}

// Replace destroys the current contents and moves the payload of `other` into
// this slot, which owns it from now on.
func (self *Variable) Replace(other *Variable) {
	self.Destroy()

	self.Inner = other.Inner
	self.owned = true
	self.destroyed = false

	other.Inner = ValueNull{}
	other.destroyed = true
	other.generation++
}

// Borrow returns a handle which becomes invalid once the variable is destroyed.
func (self *Variable) Borrow() Ref {
	return Ref{
		variable:   self,
		generation: self.generation,
	}
}

// Ref is a non-owning handle to a variable living in a scope or an array.
type Ref struct {
	variable   *Variable
	generation uint64
}

// Get returns the referenced variable unless its owner destroyed it since the borrow.
func (self Ref) Get() (*Variable, bool) {
	if self.variable == nil || self.variable.generation != self.generation || self.variable.destroyed {
		return nil, false
	}
	return self.variable, true
}
