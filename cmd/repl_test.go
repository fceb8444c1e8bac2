package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosato-lang/dosato/dosato"
	"github.com/dosato-lang/dosato/dosato/parser/ast"
	"github.com/dosato-lang/dosato/dosato/value"
)

func TestIncomplete(t *testing.T) {
	tests := []struct {
		code       string
		incomplete bool
	}{
		{code: "MAKE INT x = 1", incomplete: true},
		{code: "MAKE FUNCTION f() {\n  DO SAY(1);", incomplete: true},
		{code: "DO SAY(1, ", incomplete: true},
		{code: "SAY(1);", incomplete: false},
		{code: "MAKE INT x = ;", incomplete: false},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			_, err := dosato.Parse("repl", test.code)
			require.NotNil(t, err)
			assert.Equal(t, test.incomplete, incomplete(err, test.code), err.Error())
		})
	}
}

func TestDescribe(t *testing.T) {
	list := value.NewArray("list", ast.Int, 2, nil)
	assert.Equal(t, "INT[][]", describe(list))

	constant := value.NewVariable("PI", value.ValueDouble{Inner: 3.14}, true, true)
	assert.Equal(t, "CONST DOUBLE", describe(constant))
}
