package interpreter

import (
	"github.com/dosato-lang/dosato/dosato/builtin"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/process"
	"github.com/dosato-lang/dosato/dosato/value"
)

type parameter struct {
	name  string
	typ   ast.DataType
	depth uint8
}

// function is declared by the program itself.
// Its body refers to the tokens of the program it was declared in.
type function struct {
	name        string
	params      []parameter
	body        *ast.Node
	program     *parser.Program
	interpreter *Interpreter
}

func (self *Interpreter) newFunction(name string, paramsNode *ast.Node, body *ast.Node) (*function, *errors.Error) {
	params := make([]parameter, 0, len(paramsNode.Body))

	for idx := range paramsNode.Body {
		paramNode := &paramsNode.Body[idx]
		if paramNode.Kind != ast.FunctionDeclarationArgumentNodeKind ||
			len(paramNode.Body) != 2 ||
			paramNode.Body[0].Kind != ast.TypeIdentifierNodeKind ||
			paramNode.Body[1].Kind != ast.IdentifierNodeKind {
			return nil, errors.NewWithSpan(errors.InvalidFunctionDeclarationArgument, self.span(paramNode))
		}

		paramName := paramNode.Body[1].Text
		for _, other := range params {
			if other.name == paramName {
				return nil, errors.NewWithSpan(errors.InvalidFunctionDeclarationArgument, self.span(paramNode)).
					WithNote("parameter `%s` is declared more than once", paramName)
			}
		}

		params = append(params, parameter{
			name:  paramName,
			typ:   self.program.Token(paramNode.Body[0]).DataType(),
			depth: paramNode.Body[0].ArrayDepth(),
		})
	}

	return &function{
		name:        name,
		params:      params,
		body:        body,
		program:     self.program,
		interpreter: self,
	}, nil
}

// call runs the body in a fresh scope until that scope is popped again.
// Arguments are copied into the scope, the caller keeps ownership of `args`.
func (self *function) call(_ builtin.Executor, proc *process.Process, args []*value.Variable) *errors.Error {
	if len(args) < len(self.params) {
		return errors.New(errors.TooFewArguments).
			WithNote("function `%s` takes %d argument(s) but %d were given", self.name, len(self.params), len(args))
	}
	if len(args) > len(self.params) {
		return errors.New(errors.TooManyArguments).
			WithNote("function `%s` takes %d argument(s) but %d were given", self.name, len(self.params), len(args))
	}

	baseDepth := proc.Depth()
	scope, err := proc.PushScope(self.body)
	if err != nil {
		return err
	}

	interpreter := self.interpreter
	callerProgram := interpreter.program
	interpreter.program = self.program
	defer func() { interpreter.program = callerProgram }()

	for idx, param := range self.params {
		arg := args[idx].Clone()
		arg.Name = param.name

		if err := value.CastValue(arg, param.typ, param.depth); err != nil {
			arg.Destroy()
			proc.PopScopesTo(baseDepth)
			return errors.New(errors.TypeMismatch).
				WithNote("argument `%s` of `%s` expects %s, found %s", param.name, self.name, describeType(param.typ, param.depth), describeType(args[idx].BaseType(), args[idx].Depth())).
				Wrap(err)
		}
		// parameter names are unique, this can not fail
		_ = scope.AddVariable(arg)
	}

	interpreter.logger.Trace().Str("function", self.name).Int("depth", proc.Depth()).Msg("Call: enter")

	for proc.Running && proc.Depth() > baseDepth {
		if _, err := interpreter.Advance(); err != nil {
			proc.PopScopesTo(baseDepth)
			return err
		}
	}

	interpreter.logger.Trace().Str("function", self.name).Int("depth", proc.Depth()).Msg("Call: leave")
	return nil
}
