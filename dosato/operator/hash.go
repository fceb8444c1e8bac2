package operator

import (
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

func resolveIndex(index *value.Variable, length int) (int, *errors.Error) {
	if !checkIfBitwise(index.Type()) {
		return 0, errors.New(errors.TypeMismatch).WithNote("can not index using a value of type %s", index.Type())
	}

	position := value.SignedNumber(index.Inner)
	if position < 0 || position >= int64(length) {
		return 0, errors.New(errors.ArrayOutOfBounds).
			WithNote("index %d is out of bounds for length %d", position, length)
	}
	return int(position), nil
}

// Hash evaluates `container[index]` and returns a copy of the element.
// Indexing a string yields a one-character string.
func Hash(container, index *value.Variable) (*value.Variable, *errors.Error) {
	switch inner := container.Inner.(type) {
	case value.ValueArray:
		position, err := resolveIndex(index, len(inner.Elements))
		if err != nil {
			return nil, err
		}
		element := inner.Elements[position].Clone()
		element.Name = value.LiteralName
		return element, nil
	case value.ValueString:
		position, err := resolveIndex(index, len(inner.Inner))
		if err != nil {
			return nil, err
		}
		return value.NewLiteral(value.ValueString{Inner: inner.Inner[position : position+1]}), nil
	default:
		return nil, errors.New(errors.TypeMismatch).WithNote("can not index a value of type %s", container.Type())
	}
}

// HashReference resolves `container[index]` to a borrowed handle of the element
// so that it can be assigned to. Only arrays are addressable.
func HashReference(container, index *value.Variable) (value.Ref, *errors.Error) {
	array, ok := container.Inner.(value.ValueArray)
	if !ok {
		if container.Type() == ast.String {
			return value.Ref{}, errors.New(errors.TypeMismatch).WithNote("characters of a string can not be assigned to")
		}
		return value.Ref{}, errors.New(errors.TypeMismatch).WithNote("can not index a value of type %s", container.Type())
	}

	position, err := resolveIndex(index, len(array.Elements))
	if err != nil {
		return value.Ref{}, err
	}
	return array.Elements[position].Borrow(), nil
}
