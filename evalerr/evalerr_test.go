/*
File    : goeval/evalerr/evalerr_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evalerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_NameKnown(t *testing.T) {
	assert.Equal(t, "E_EVAL_STACK_EMPTY", StackEmpty.Name())
	assert.Equal(t, "E_EVAL_OK", OK.Name())
}

func TestCode_NameUnknown(t *testing.T) {
	assert.Equal(t, "E_EVAL_UNKNOWN", Code(-999).Name())
}

func TestError_WithoutPosition(t *testing.T) {
	err := New(UndefinedConstant, "Undefined constant '%s'", "FOO")
	assert.Equal(t, "E_EVAL_UNDEFINED_CONSTANT: Undefined constant 'FOO'", err.Error())
}

func TestError_WithPosition(t *testing.T) {
	err := NewAt(UnexpectedCharacter, 2, 5, "Unexpected character '%s'", "@")
	assert.Equal(t, "E_EVAL_UNEXPECTED_CHARACTER (line 2, column 5): Unexpected character '@'", err.Error())
}

func TestError_ImplementsErrorInterface(t *testing.T) {
	var err error = New(StackEmpty, "empty")
	assert.Error(t, err)
}
