package interpreter

import (
	"fmt"

	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/operator"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

func (self *Interpreter) interpretCommand(node *ast.Node) *errors.Error {
	switch node.Kind {
	case ast.FunctionCallNodeKind:
		return self.functionCall(node)
	case ast.MakeVarNodeKind:
		return self.makeVariable(node)
	case ast.SetVarNodeKind:
		return self.setVariable(node)
	case ast.FunctionDeclarationNodeKind:
		return self.makeFunction(node)
	case ast.BlockNodeKind,
		ast.FunctionIdentifierNodeKind,
		ast.IdentifierNodeKind,
		ast.ArgumentsNodeKind,
		ast.FunctionDeclarationArgumentsNodeKind,
		ast.FunctionDeclarationArgumentNodeKind,
		ast.TypeIdentifierNodeKind,
		ast.ArrayDimensionNodeKind,
		ast.OperatorNodeKind,
		ast.LiteralNodeKind,
		ast.BinaryExpressionNodeKind,
		ast.UnaryExpressionNodeKind,
		ast.ArrayExpressionNodeKind,
		ast.IndexExpressionNodeKind:
		return errors.NewWithSpan(errors.InterpreterInvalidCommand, self.span(node)).
			WithNote("%s can not be executed as a statement", node.Kind)
	default:
		panic(fmt.Sprintf("A new node kind (%v) was added without updating this code", node.Kind))
	}
}

// DO name(args...);
func (self *Interpreter) functionCall(node *ast.Node) *errors.Error {
	if len(node.Body) == 0 || node.Body[0].Kind != ast.FunctionIdentifierNodeKind {
		return errors.NewWithSpan(errors.ExpectedIdentifier, self.span(node))
	}
	callee := &node.Body[0]
	if len(callee.Body) == 0 || callee.Body[0].Kind != ast.IdentifierNodeKind {
		return errors.NewWithSpan(errors.ExpectedIdentifier, self.span(callee))
	}
	if len(callee.Body) < 2 || callee.Body[1].Kind != ast.ArgumentsNodeKind {
		return errors.NewWithSpan(errors.ExpectedArguments, self.span(callee))
	}

	identifier := &callee.Body[0]
	argNodes := callee.Body[1].Body

	args := make([]*value.Variable, 0, len(argNodes))
	// arguments are released whatever the outcome of the call
	defer func() {
		for _, arg := range args {
			arg.Destroy()
		}
		self.logger.Trace().Str("function", identifier.Text).Int("released", len(args)).Msg("Call: arguments released")
	}()

	for idx := range argNodes {
		arg, err := self.evaluate(&argNodes[idx])
		if err != nil {
			return err
		}
		args = append(args, arg)
	}

	self.logger.Trace().Str("function", identifier.Text).Int("args", len(args)).Msg("Call: invoke")

	if err := self.registry.Call(identifier.Text, args, self.process); err != nil {
		return err.At(self.span(identifier))
	}
	return nil
}

// MAKE TYPE name = expression;
func (self *Interpreter) makeVariable(node *ast.Node) *errors.Error {
	if len(node.Body) == 0 || node.Body[0].Kind != ast.TypeIdentifierNodeKind {
		return errors.NewWithSpan(errors.ExpectedType, self.span(node))
	}
	if len(node.Body) < 2 || node.Body[1].Kind != ast.IdentifierNodeKind {
		return errors.NewWithSpan(errors.ExpectedIdentifier, self.span(node))
	}
	if len(node.Body) < 3 {
		return errors.NewWithSpan(errors.ExpectedExpression, self.span(node))
	}

	typeNode := &node.Body[0]
	identifier := &node.Body[1]
	initializer := &node.Body[2]

	typ := self.program.Token(*typeNode).DataType()
	depth := typeNode.ArrayDepth()

	variable, err := self.evaluate(initializer)
	if err != nil {
		return err
	}
	variable.Name = identifier.Text
	variable.Constant = false

	if err := value.CastValue(variable, typ, depth); err != nil {
		variable.Destroy()
		return errors.NewWithSpan(errors.TypeMismatch, self.span(initializer)).
			WithNote("can not initialize `%s` of type %s: %s", identifier.Text, describeType(typ, depth), err.Code.Message()).
			Wrap(err)
	}

	if err := self.process.CurrentScope().AddVariable(variable); err != nil {
		variable.Destroy()
		return err.At(self.span(identifier))
	}

	self.logger.Trace().Str("variable", identifier.Text).Str("type", describeType(typ, depth)).Msg("Make: declared")
	return nil
}

// SET target op expression;
func (self *Interpreter) setVariable(node *ast.Node) *errors.Error {
	if len(node.Body) != 3 {
		return errors.NewWithSpan(errors.ExpectedExpression, self.span(node))
	}

	targetNode := &node.Body[0]
	operatorNode := &node.Body[1]
	valueNode := &node.Body[2]

	op := self.program.Token(*operatorNode).Operator()
	if operatorNode.Kind != ast.OperatorNodeKind || !op.IsAssignment() {
		return errors.NewWithSpan(errors.ExpectedAssignOperator, self.span(operatorNode))
	}

	ref, err := self.reference(targetNode)
	if err != nil {
		return err
	}

	right, err := self.evaluate(valueNode)
	if err != nil {
		return err
	}
	defer right.Destroy()

	target, alive := ref.Get()
	if !alive {
		return errors.NewWithSpan(errors.ExpectedRefrence, self.span(targetNode)).
			WithNote("the assignment target was released while evaluating the right-hand side")
	}
	if target.Constant {
		return errors.NewWithSpan(errors.CannotModifyConstant, self.span(targetNode)).
			WithNote("`%s` is a constant", target.Name)
	}

	// the right-hand side takes the type of the target before the operation is applied
	if err := value.CastValue(right, target.BaseType(), target.Depth()); err != nil {
		return errors.NewWithSpan(errors.TypeMismatch, self.span(valueNode)).
			WithNote("can not assign to `%s` of type %s: %s", target.Name, describeType(target.BaseType(), target.Depth()), err.Code.Message()).
			Wrap(err)
	}

	if err := operator.Compound(op, target, right); err != nil {
		return err.At(self.span(node))
	}
	return nil
}

// MAKE FUNCTION name(params...) { body }
func (self *Interpreter) makeFunction(node *ast.Node) *errors.Error {
	if len(node.Body) == 0 || node.Body[0].Kind != ast.IdentifierNodeKind {
		return errors.NewWithSpan(errors.ExpectedIdentifier, self.span(node))
	}
	if len(node.Body) < 2 || node.Body[1].Kind != ast.FunctionDeclarationArgumentsNodeKind {
		return errors.NewWithSpan(errors.ExpectedArguments, self.span(node))
	}
	if len(node.Body) < 3 || node.Body[2].Kind != ast.BlockNodeKind {
		return errors.NewWithSpan(errors.ExpectedBlock, self.span(node))
	}

	identifier := &node.Body[0]
	function, err := self.newFunction(identifier.Text, &node.Body[1], &node.Body[2])
	if err != nil {
		return err
	}

	if err := self.registry.Register(identifier.Text, function.call); err != nil {
		return err.At(self.span(identifier))
	}

	self.logger.Trace().Str("function", identifier.Text).Int("params", len(function.params)).Msg("Make: function declared")
	return nil
}

func describeType(typ ast.DataType, depth uint8) string {
	out := typ.String()
	for idx := uint8(0); idx < depth; idx++ {
		out += "[]"
	}
	return out
}
