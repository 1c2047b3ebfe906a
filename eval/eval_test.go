/*
File    : goeval/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/goeval/builtins"
	"github.com/akashmaji946/goeval/evalerr"
	"github.com/akashmaji946/goeval/operator"
	"github.com/akashmaji946/goeval/postfix"
	"github.com/akashmaji946/goeval/regbank"
	"github.com/akashmaji946/goeval/registry"
)

func newEvaluator() *Evaluator {
	reg := registry.New()
	reg.RegisterConstants(builtins.Constants...)
	reg.RegisterFunctions(builtins.Functions(builtins.DegreeMode{UseDegrees: false})...)
	return New(reg, regbank.New(0))
}

func num(v float64) postfix.Instruction {
	return postfix.Instruction{Op: postfix.Numeric, Number: v}
}

func opIns(d operator.Descriptor) postfix.Instruction {
	return postfix.Instruction{Op: postfix.Operator, Operator: d}
}

func TestEvaluator_MinusIsNotCommuted(t *testing.T) {
	// 5 - 3 => 5 3 minus ; pop order must yield 5-3, not 3-5
	ev := newEvaluator()
	minus, _ := operator.Match("-")
	seq := []postfix.Instruction{num(5), num(3), opIns(minus)}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, result)
}

func TestEvaluator_DivIsNotCommuted(t *testing.T) {
	// 10 2 / => 10/2 = 5, not 2/10
	ev := newEvaluator()
	div, _ := operator.Match("/")
	seq := []postfix.Instruction{num(10), num(2), opIns(div)}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestEvaluator_UnaryMinus(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{num(4), opIns(operator.UnaryMinus)}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, -4.0, result)
}

func TestEvaluator_ConstantLookup(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{{Op: postfix.ConstantName, Name: "PI"}}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159265358979323846, result, 1e-12)
}

func TestEvaluator_UndefinedConstant(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{{Op: postfix.ConstantName, Name: "NOPE"}}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.UndefinedConstant, err.(*evalerr.Error).Code)
}

func TestEvaluator_FunctionCallArgumentOrder(t *testing.T) {
	// dist(0,0,3,4) = 5 ; args must be popped back into original left-to-right order
	ev := newEvaluator()
	seq := []postfix.Instruction{
		num(0), num(0), num(3), num(4),
		{Op: postfix.FunctionCall, Name: "dist", Argc: 4},
	}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestEvaluator_UndefinedFunction(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{num(1), {Op: postfix.FunctionCall, Name: "nope", Argc: 1}}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.UndefinedFunction, err.(*evalerr.Error).Code)
}

func TestEvaluator_BadArgumentCount(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{num(1), num(2), {Op: postfix.FunctionCall, Name: "sqrt", Argc: 2}}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.BadArgumentCount, err.(*evalerr.Error).Code)
}

func TestEvaluator_StackEmptyForOperator(t *testing.T) {
	ev := newEvaluator()
	plus, _ := operator.Match("+")
	seq := []postfix.Instruction{num(1), opIns(plus)}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.StackEmpty, err.(*evalerr.Error).Code)
}

func TestEvaluator_RegisterSaveAndRecall(t *testing.T) {
	// Save does not pop its operand or reset the bank itself; a recall
	// later in the same sequence sees the saved value. Resetting the
	// bank between top-level evaluations is the session's job, not the
	// Evaluator's (see session.Session.evaluate).
	ev := newEvaluator()
	plus, _ := operator.Match("+")
	seq := []postfix.Instruction{
		num(42),
		{Op: postfix.RegisterSave, Register: 0},
		{Op: postfix.RegisterRecall, Register: 0},
		opIns(plus),
	}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 84.0, result)
}

func TestEvaluator_RegisterRecallUnassigned(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{{Op: postfix.RegisterRecall, Register: 5}}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.InvalidRegisterIndex, err.(*evalerr.Error).Code)
}

func TestEvaluator_VariableCallback(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{{Op: postfix.Variable, Name: "x"}}
	callback := func(name string) (float64, bool) {
		if name == "x" {
			return 7, true
		}
		return 0, false
	}
	result, err := ev.Run(seq, callback)
	require.NoError(t, err)
	assert.Equal(t, 7.0, result)
}

func TestEvaluator_VariableWithNilCallback(t *testing.T) {
	ev := newEvaluator()
	seq := []postfix.Instruction{{Op: postfix.Variable, Name: "x"}}
	_, err := ev.Run(seq, nil)
	require.Error(t, err)
	assert.Equal(t, evalerr.UndefinedVariable, err.(*evalerr.Error).Code)
}

func TestEvaluator_EmptySequence(t *testing.T) {
	ev := newEvaluator()
	result, err := ev.Run(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result)
}

func TestEvaluator_FactorialTruncatesFraction(t *testing.T) {
	ev := newEvaluator()
	factorial, _ := operator.Match("!")
	seq := []postfix.Instruction{num(4.7), opIns(factorial)}
	result, err := ev.Run(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 24.0, result)
}
