/*
File    : goeval/postfix/postfix.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package postfix defines the instruction sequence produced by the
shunting-yard parser and consumed by the stack evaluator. It is kept
as its own package, separate from both parser and eval, so neither of
those needs to import the other.
*/
package postfix

import "github.com/akashmaji946/goeval/operator"

// Op identifies what an Instruction does.
type Op int

const (
	Numeric Op = iota
	ConstantName
	Operator
	RegisterSave
	RegisterRecall
	FunctionCall
	Variable
)

// Instruction is one element of a postfix sequence. Only the field(s)
// relevant to Op are meaningful; this mirrors the original C union but
// as a flat, zero-valued-safe Go struct rather than an unsafe union.
type Instruction struct {
	Op       Op
	Number   float64             // Numeric
	Name     string              // ConstantName, Variable, FunctionCall (function name)
	Operator operator.Descriptor // Operator
	Register int                 // RegisterSave, RegisterRecall
	Argc     int                 // FunctionCall
}
