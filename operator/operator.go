/*
File    : goeval/operator/operator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package operator holds the static table of operators the evaluator
understands: their spelling, precedence, associativity and arity.
The table is kept sorted by descending spelling length so the lexer
can match multi-character operators (like "**") before shorter ones
that share a prefix (like "*").
*/
package operator

import "sort"

// Assoc is an operator's associativity.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

// Code identifies an operator's semantics, independently of its spelling.
type Code int

const (
	Plus Code = iota
	Minus
	Mul
	Div
	IDiv
	Power
	Mod
	And
	Or
	Xor
	Not
	Shl
	Shr
	Factorial
	OpUnaryPlus
	OpUnaryMinus
	OpLeftParen
	OpRightParen
	OpComma
)

// Descriptor is one entry of the operator table.
type Descriptor struct {
	Spelling string
	Code     Code
	Prec     int
	Assoc    Assoc
	Unary    bool
}

// Table lists every lexer-reachable binary/unary operator spelling,
// sorted longest-spelling-first so prefix matching picks "**" over "*".
var Table = func() []Descriptor {
	t := []Descriptor{
		{"+", Plus, 5, AssocLeft, false},
		{"-", Minus, 5, AssocLeft, false},
		{"*", Mul, 8, AssocLeft, false},
		{"/", Div, 8, AssocLeft, false},
		{"\\", IDiv, 8, AssocLeft, false},
		{"**", Power, 9, AssocRight, false},
		{"%", Mod, 8, AssocLeft, false},
		{"&", And, 5, AssocLeft, false},
		{"|", Or, 5, AssocLeft, false},
		{"^", Xor, 5, AssocLeft, false},
		{"~", Not, 10, AssocRight, true},
		{"<<", Shl, 5, AssocLeft, false},
		{">>", Shr, 5, AssocLeft, false},
		{"!", Factorial, 10, AssocLeft, true},
	}
	sort.SliceStable(t, func(i, j int) bool { return len(t[i].Spelling) > len(t[j].Spelling) })
	return t
}()

// UnaryMinus, LeftParenOp, RightParenOp and CommaOp are synthetic
// descriptors: never produced by the lexer's operator scan (the lexer
// emits LeftParen/RightParen/Comma token kinds directly, and unary
// minus is disambiguated by the parser from binary minus), but the
// parser needs them shaped like a lexed operator so they can sit on
// the same operator stack.
var (
	UnaryMinus   = Descriptor{"-", OpUnaryMinus, 10, AssocRight, true}
	LeftParenOp  = Descriptor{"(", OpLeftParen, 50, AssocNone, false}
	RightParenOp = Descriptor{")", OpRightParen, 50, AssocNone, false}
	CommaOp      = Descriptor{",", OpComma, 50, AssocNone, false}
)

// Match finds the longest operator spelling that prefixes s, returning
// its descriptor and true, or (zero, false) if no operator matches.
func Match(s string) (Descriptor, bool) {
	for _, d := range Table {
		if len(s) >= len(d.Spelling) && s[:len(d.Spelling)] == d.Spelling {
			return d, true
		}
	}
	return Descriptor{}, false
}
