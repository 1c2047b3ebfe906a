/*
File    : goeval/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements the shunting-yard algorithm that turns a
token stream into a postfix instruction sequence: operators are pushed
to and popped from an operator stack according to precedence and
associativity, while operands, register and variable references are
pushed directly to the output sequence. Function calls are treated as
n-ary operators whose arity is only known once their closing
parenthesis (or an intervening comma) has been seen.

The algorithm is ported directly from the original evaluator's
eval_parse(); the struct/error-handling shape follows this project's
own lexer and evaluator packages.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/goeval/evalerr"
	"github.com/akashmaji946/goeval/lexer"
	"github.com/akashmaji946/goeval/operator"
	"github.com/akashmaji946/goeval/postfix"
)

const maxNestedFunctionCalls = 64
const maxRegisters = 64

// tokClass is a bitmask classification of the last significant token
// seen, mirroring the original lexer's bit-flag token constants so the
// same "last_token & (A|B|C)" membership tests translate directly.
type tokClass int

const (
	classEOF tokClass = 1 << iota
	classNumber
	className
	classOperator
	classComma
	classLeftParen
	classRightParen
	classRegisterSave
	classRegisterRecall
	classVariable
)

func classOf(k lexer.Kind) tokClass {
	switch k {
	case lexer.EOF:
		return classEOF
	case lexer.Number:
		return classNumber
	case lexer.Name:
		return className
	case lexer.Operator:
		return classOperator
	case lexer.Comma:
		return classComma
	case lexer.LeftParen:
		return classLeftParen
	case lexer.RightParen:
		return classRightParen
	case lexer.RegisterSave:
		return classRegisterSave
	case lexer.RegisterRecall:
		return classRegisterRecall
	case lexer.Variable:
		return classVariable
	default:
		return 0
	}
}

// Parser turns one expression string into a postfix instruction
// sequence. AllowVariables gates whether $name tokens are accepted,
// matching evaluate() (false) vs evaluate_ex() (true).
type Parser struct {
	lex            *lexer.Lexer
	AllowVariables bool
}

// New returns a Parser over expr. Set allowVariables to false to
// reject $name references the way evaluate() does.
func New(expr string, allowVariables bool) *Parser {
	return &Parser{lex: lexer.New(expr), AllowVariables: allowVariables}
}

// Parse runs the shunting-yard algorithm to completion, returning the
// resulting postfix instruction sequence or the first error encountered.
func (p *Parser) Parse() ([]postfix.Instruction, error) {
	var output []postfix.Instruction
	var opStack []postfix.Instruction

	lastClass := classEOF
	parenNesting := []int{0}
	funcArgs := []int{0}
	nestingLevel := 0

	pushOp := func(d operator.Descriptor) {
		opStack = append(opStack, postfix.Instruction{Op: postfix.Operator, Operator: d})
	}
	popOp := func() (postfix.Instruction, bool) {
		if len(opStack) == 0 {
			return postfix.Instruction{}, false
		}
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		return top, true
	}
	peekOp := func() (postfix.Instruction, bool) {
		if len(opStack) == 0 {
			return postfix.Instruction{}, false
		}
		return opStack[len(opStack)-1], true
	}

	for {
		tok := p.lex.Next()
		inert := false

		switch tok.Kind {
		case lexer.EOF:
			goto ParseEnd

		case lexer.Error:
			return nil, evalerr.NewAt(evalerr.UnexpectedCharacter, tok.Line, tok.Column, "Unexpected character '%s'", tok.Text)

		case lexer.Number:
			// A number can occur only at the start of an expression,
			// after an operator, or in a function call after "(" or ",".
			if lastClass&(classEOF|classOperator|classComma|classLeftParen) == 0 {
				return nil, evalerr.NewAt(evalerr.UnexpectedNumber, tok.Line, tok.Column, "Unexpected number '%s'", tok.Text)
			}
			value, ok := parseNumericLiteral(tok.Text)
			if !ok {
				return nil, evalerr.NewAt(evalerr.InvalidNumber, tok.Line, tok.Column, "Invalid numeric value '%s'", tok.Text)
			}
			output = append(output, postfix.Instruction{Op: postfix.Numeric, Number: value})

		case lexer.Operator:
			d := p.lex.Descriptor()
			handled := false

			// A plus/minus sign is unary if it follows the start of the
			// string, another operator, or an opening parenthesis.
			// Unary plus is silently dropped; it does not change its
			// operand's value.
			if lastClass&(classOperator|classEOF|classLeftParen) != 0 {
				switch {
				case d.Code == operator.Plus:
					inert = true
					handled = true
				case d.Code == operator.Minus:
					d = operator.UnaryMinus
				case !d.Unary:
					return nil, evalerr.NewAt(evalerr.UnexpectedOperator, tok.Line, tok.Column, "Unexpected operator '%s'", tok.Text)
				}
			} else if lastClass&(classNumber|className|classVariable|classRightParen|classRegisterRecall) == 0 {
				return nil, evalerr.NewAt(evalerr.UnexpectedOperator, tok.Line, tok.Column, "Unexpected operator '%s'", tok.Text)
			} else if d.Unary && d.Assoc == operator.AssocLeft {
				// Left-associative unary operators (factorial) apply to
				// their left operand, so they go straight to the output.
				output = append(output, postfix.Instruction{Op: postfix.Operator, Operator: d})
				inert = true
				handled = true
			}

			if !handled {
				for {
					top, ok := peekOp()
					if !ok {
						break
					}
					if top.Op != postfix.Operator || top.Operator.Code == operator.OpLeftParen {
						break
					}
					prev := top.Operator
					pop := (d.Assoc == operator.AssocLeft && d.Prec <= prev.Prec) ||
						(d.Assoc == operator.AssocRight && d.Prec < prev.Prec)
					if !pop {
						break
					}
					popped, _ := popOp()
					output = append(output, popped)
				}
				pushOp(d)
			}

		case lexer.LeftParen:
			if lastClass&className != 0 {
				if nestingLevel+1 > maxNestedFunctionCalls {
					return nil, evalerr.NewAt(evalerr.TooManyNestedCalls, tok.Line, tok.Column, "Too many nested function calls")
				}
				if len(output) == 0 {
					return nil, evalerr.NewAt(evalerr.ImplementationError, tok.Line, tok.Column, "Function call with no preceding name")
				}
				name := output[len(output)-1]
				output = output[:len(output)-1]
				opStack = append(opStack, postfix.Instruction{Op: postfix.FunctionCall, Name: name.Name})
				nestingLevel++
				parenNesting = append(parenNesting, 1)
				funcArgs = append(funcArgs, 0)
			} else if lastClass&(classEOF|classLeftParen|classOperator|classComma) != 0 {
				pushOp(operator.LeftParenOp)
				parenNesting[nestingLevel]++
			} else {
				return nil, evalerr.NewAt(evalerr.UnexpectedToken, tok.Line, tok.Column, "Unexpected opening parenthesis")
			}

		case lexer.RightParen:
			foundLeft := false

			if lastClass&(classNumber|classRightParen|className|classVariable|classLeftParen) != 0 {
				if lastClass&classLeftParen == 0 {
					funcArgs[nestingLevel]++
				}

				for {
					top, ok := popOp()
					if !ok {
						break
					}
					if top.Op == postfix.FunctionCall {
						top.Argc = funcArgs[nestingLevel]
						output = append(output, top)
						foundLeft = true
						break
					} else if top.Operator.Code == operator.OpLeftParen {
						foundLeft = true
						break
					}
					output = append(output, top)
				}
			}

			if lastClass&classComma == 0 && nestingLevel > 0 && parenNesting[nestingLevel] == 1 {
				foundLeft = true
			}

			if !foundLeft {
				return nil, evalerr.NewAt(evalerr.UnexpectedRightParent, tok.Line, tok.Column, "Unexpected closing parenthesis")
			}

			parenNesting[nestingLevel]--
			if parenNesting[nestingLevel] == 0 && nestingLevel > 0 {
				nestingLevel--
				parenNesting = parenNesting[:nestingLevel+1]
				funcArgs = funcArgs[:nestingLevel+1]
			}

		case lexer.Name:
			if lastClass&(classEOF|classOperator|classComma|classLeftParen) == 0 {
				return nil, evalerr.NewAt(evalerr.UnexpectedName, tok.Line, tok.Column, "Unexpected name '%s'", tok.Text)
			}
			output = append(output, postfix.Instruction{Op: postfix.ConstantName, Name: tok.Text})

		case lexer.Variable:
			if !p.AllowVariables {
				return nil, evalerr.NewAt(evalerr.VariablesNotAllowed, tok.Line, tok.Column,
					"Variable references are not allowed by this entry point (referenced variable: %s)", tok.Text)
			}
			if lastClass&(classEOF|classOperator|classComma|classLeftParen) == 0 {
				return nil, evalerr.NewAt(evalerr.UnexpectedVariable, tok.Line, tok.Column, "Unexpected variable reference '%s'", tok.Text)
			}
			output = append(output, postfix.Instruction{Op: postfix.Variable, Name: tok.Text})

		case lexer.RegisterSave:
			if tok.Register >= maxRegisters {
				return nil, evalerr.NewAt(evalerr.InvalidRegisterIndex, tok.Line, tok.Column,
					"Invalid register index %d (range is 0..%d)", tok.Register, maxRegisters-1)
			}
			output = append(output, postfix.Instruction{Op: postfix.RegisterSave, Register: tok.Register})
			inert = true

		case lexer.RegisterRecall:
			if lastClass&(classEOF|classOperator|classComma|classLeftParen) == 0 {
				return nil, evalerr.NewAt(evalerr.UnexpectedToken, tok.Line, tok.Column, "Unexpected register '%s' value recall", tok.Text)
			}
			if tok.Register >= maxRegisters {
				return nil, evalerr.NewAt(evalerr.InvalidRegisterIndex, tok.Line, tok.Column,
					"Invalid register index %d (allowed range is 0..%d)", tok.Register, maxRegisters-1)
			}
			output = append(output, postfix.Instruction{Op: postfix.RegisterRecall, Register: tok.Register})

		case lexer.Comma:
			if lastClass&(classNumber|className|classVariable|classRightParen) != 0 {
				foundParent := false
				funcArgs[nestingLevel]++

				for {
					top, ok := popOp()
					if !ok {
						break
					}
					if top.Op == postfix.FunctionCall {
						opStack = append(opStack, top)
						foundParent = true
						break
					} else if top.Operator.Code == operator.OpLeftParen {
						foundParent = true
						break
					}
					output = append(output, top)
				}

				if !foundParent {
					return nil, evalerr.NewAt(evalerr.UnexpectedArgSeparator, tok.Line, tok.Column, "Unexpected argument delimiter ',' found")
				}
			} else {
				return nil, evalerr.NewAt(evalerr.UnexpectedArgSeparator, tok.Line, tok.Column, "Unexpected argument separator")
			}

		default:
			return nil, evalerr.NewAt(evalerr.UnexpectedToken, tok.Line, tok.Column, "Unexpected token")
		}

		if !inert {
			lastClass = classOf(tok.Kind)
		}
	}

ParseEnd:
	if nestingLevel > 0 {
		return nil, evalerr.New(evalerr.UnterminatedFunctionCall, "Unterminated function call")
	}
	if parenNesting[0] != 0 {
		return nil, evalerr.New(evalerr.UnbalancedParentheses, "Unbalanced parentheses")
	}

	for {
		top, ok := popOp()
		if !ok {
			break
		}
		output = append(output, top)
	}

	return output, nil
}

// parseNumericLiteral converts an already-tokenized number (validated
// by the lexer's digit/base/point/exponent state machine) into a
// float64, honoring 0x/0b/0o/0d base prefixes and the bare
// leading-zero octal convention. It ports eval_double_value, except
// that a bare-octal literal (e.g. "017", no prefix letter) keeps every
// digit after the leading zero: the original C conversion drops the
// first post-zero digit from the accumulated value, a conversion bug
// distinct from (and not one of) the spec's named Open Questions, not
// worth reproducing since the lexer's own octal detection does not
// share that flaw. A leading-zero literal that contains a decimal
// point or exponent ("0.5", "0.25e1") is never base-prefix notation;
// it is left for the strconv.ParseFloat fallback below rather than
// rejected the way eval_double_value's equivalent switch would reject it.
// In a "0x" literal an E is a hexadecimal digit, not an exponent.
func parseNumericLiteral(text string) (float64, bool) {
	if text == "" {
		return 0, true
	}

	isHex := len(text) > 1 && upper(text[1]) == 'X'
	if text[0] == '0' && len(text) > 1 && (isHex || !strings.ContainsAny(text, ".eE")) {
		base := 10
		start := 2 // skip the leading "0" and the base-prefix letter
		switch c := upper(text[1]); c {
		case 'B':
			base = 2
		case 'O':
			base = 8
		case 'D':
			base = 10
		case 'X':
			base = 16
		default:
			if c >= '0' && c <= '7' {
				base = 8
				start = 1 // no prefix letter; keep the first octal digit
			} else {
				return 0, false
			}
		}

		value := 0.0
		for i := start; i < len(text); i++ {
			ch := upper(text[i])
			var digit int
			if ch >= 'A' {
				digit = int(ch-'A') + 10
			} else {
				digit = int(ch - '0')
			}
			value = value*float64(base) + float64(digit)
		}
		return value, true
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func upper(b byte) byte {
	return byte(strings.ToUpper(string(b))[0])
}
