/*
File    : goeval/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval implements the stack-based interpreter that executes a
postfix instruction sequence produced by the parser. It is a direct
port of the original evaluator's eval_compute(): a single value stack
accumulates operands, operators/functions consume from and push back
onto it, and the final single residual value is the expression result.
*/
package eval

import (
	"math"

	"github.com/akashmaji946/goeval/evalerr"
	"github.com/akashmaji946/goeval/operator"
	"github.com/akashmaji946/goeval/postfix"
	"github.com/akashmaji946/goeval/regbank"
	"github.com/akashmaji946/goeval/registry"
)

// Callback resolves the value of a $name variable reference. ok is
// false when the variable is undefined, matching EVAL_CALLBACK_UNDEFINED.
type Callback func(name string) (value float64, ok bool)

// Evaluator executes postfix instruction sequences against a given
// registry and register bank. It holds no sequence-specific state of
// its own, so one Evaluator can run any number of sequences.
type Evaluator struct {
	Registry *registry.Registry
	Registers *regbank.Bank
}

// New returns an Evaluator backed by reg and regs.
func New(reg *registry.Registry, regs *regbank.Bank) *Evaluator {
	return &Evaluator{Registry: reg, Registers: regs}
}

// Run executes seq, calling callback to resolve any Variable
// instruction (callback may be nil if the sequence is known to contain
// none, e.g. when produced by a Parser with AllowVariables=false).
func (e *Evaluator) Run(seq []postfix.Instruction, callback Callback) (float64, error) {
	if len(seq) == 0 {
		return 0, nil
	}

	stack := make([]float64, 0, len(seq))
	push := func(v float64) { stack = append(stack, v) }
	pop := func() float64 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	var result float64

	for _, ins := range seq {
		switch ins.Op {
		case postfix.Numeric:
			push(ins.Number)
			result = ins.Number

		case postfix.Operator:
			op := ins.Operator
			need := 2
			if op.Unary {
				need = 1
			}
			if len(stack) < need {
				return 0, evalerr.New(evalerr.StackEmpty, "Stack does not contain enough elements to process the '%s' operator", op.Spelling)
			}

			var v1, v2 float64
			if op.Unary {
				v1 = pop()
			} else {
				v1 = pop()
				v2 = pop()
			}

			r, err := applyOperator(op, v1, v2)
			if err != nil {
				return 0, err
			}
			result = r
			push(result)

		case postfix.ConstantName:
			def, ok := e.Registry.FindConstant(ins.Name)
			if !ok {
				return 0, evalerr.New(evalerr.UndefinedConstant, "Undefined constant '%s'", ins.Name)
			}
			result = def.Value
			push(result)

		case postfix.Variable:
			if callback == nil {
				return 0, evalerr.New(evalerr.UndefinedVariable, "Undefined variable '%s'", ins.Name)
			}
			v, ok := callback(ins.Name)
			if !ok {
				return 0, evalerr.New(evalerr.UndefinedVariable, "Undefined variable '%s'", ins.Name)
			}
			result = v
			push(result)

		case postfix.RegisterRecall:
			v, _, ok := e.Registers.Recall(regIndex(ins.Register))
			if !ok {
				return 0, evalerr.New(evalerr.InvalidRegisterIndex, "Register #%d has not been assigned any value", ins.Register)
			}
			result = v
			push(result)

		case postfix.RegisterSave:
			if len(stack) == 0 {
				return 0, evalerr.New(evalerr.StackEmpty, "No value available to save to a register")
			}
			top := stack[len(stack)-1]
			if _, ok := e.Registers.Save(regIndex(ins.Register), top); !ok {
				return 0, evalerr.New(evalerr.InvalidRegisterIndex, "Invalid register index %d", ins.Register)
			}

		case postfix.FunctionCall:
			def, ok := e.Registry.FindFunction(ins.Name)
			if !ok {
				return 0, evalerr.New(evalerr.UndefinedFunction, "Undefined function '%s'", ins.Name)
			}
			if len(stack) < ins.Argc {
				return 0, evalerr.New(evalerr.ImplementationError, "Not enough parameters (%d) remain on stack for function %s()", len(stack), def.Name)
			}
			if ins.Argc < def.MinArgs || ins.Argc > def.MaxArgs {
				return 0, evalerr.New(evalerr.BadArgumentCount, "Bad number of arguments (%d) for function %s(); authorized range is %d..%d",
					ins.Argc, def.Name, def.MinArgs, def.MaxArgs)
			}

			args := make([]float64, ins.Argc)
			for j := ins.Argc - 1; j >= 0; j-- {
				args[j] = pop()
			}
			result = def.Func(args)
			push(result)

		default:
			return 0, evalerr.New(evalerr.UndefinedTokenType, "Undefined instruction type '#%d'", int(ins.Op))
		}
	}

	if len(stack) > 1 {
		return 0, evalerr.New(evalerr.ImplementationError, "Value stack should hold at most one value")
	}

	return result, nil
}

// regIndex maps the parser's "-1 means implicit" register convention
// directly onto regbank's identical convention.
func regIndex(n int) int { return n }

func toInt(v float64) int64 { return int64(v) }

func applyOperator(op operator.Descriptor, v1, v2 float64) (float64, error) {
	switch op.Code {
	case operator.Plus:
		return v2 + v1, nil
	case operator.Minus:
		return v2 - v1, nil
	case operator.Mul:
		return v1 * v2, nil
	case operator.Div:
		return v2 / v1, nil
	case operator.IDiv:
		return math.Floor(v2 / v1), nil
	case operator.Power:
		return math.Pow(v2, v1), nil
	case operator.Mod:
		return math.Mod(v2, v1), nil
	case operator.And:
		return float64(toInt(v1) & toInt(v2)), nil
	case operator.Or:
		return float64(toInt(v1) | toInt(v2)), nil
	case operator.Xor:
		return float64(toInt(v1) ^ toInt(v2)), nil
	case operator.Not:
		return float64(^toInt(v1)), nil
	case operator.OpUnaryPlus:
		return v1, nil
	case operator.OpUnaryMinus:
		return -v1, nil
	case operator.Shl:
		return float64(toInt(v2) << uint(toInt(v1))), nil
	case operator.Shr:
		return float64(toInt(v2) >> uint(toInt(v1))), nil
	case operator.Factorial:
		return factorial(v1), nil
	default:
		return 0, evalerr.New(evalerr.UndefinedOperator, "Undefined operator '%s' found", op.Spelling)
	}
}

func factorial(value float64) float64 {
	n := value
	if n < 0 {
		n = -n
	}
	result := 1.0
	for i := 2.0; i <= math.Trunc(n); i++ {
		result *= i
	}
	return result
}
