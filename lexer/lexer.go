/*
File    : goeval/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package lexer scans an expression byte by byte, classifying numbers
(with optional 0x/0b/0o/0d base prefixes or a leading-zero octal
convention), names, operators (by longest spelling), parentheses, the
comma separator, $name variable references and #n!/#n? register
notation.
*/
package lexer

import (
	"strings"
	"unicode"

	"github.com/akashmaji946/goeval/operator"
)

// Lexer walks an input string producing one Token per call to Next.
type Lexer struct {
	input    string
	pos      int // byte offset of the next unread character
	line     int
	column   int
	lastDesc operator.Descriptor // operator descriptor of the last Operator token returned
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input, pos: 0, line: 1, column: 0}
}

func (l *Lexer) peekByte(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

func (l *Lexer) cur() byte {
	return l.peekByte(0)
}

// skipSpaces advances past whitespace, tracking line/column the way
// the original scanner does (newlines reset column and bump line).
func (l *Lexer) skipSpaces() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\n' {
			l.line++
			l.column = 0
			l.pos++
		} else if ch == ' ' || ch == '\t' || ch == '\r' {
			l.pos++
			l.column++
		} else {
			break
		}
	}
}

func isAlpha(b byte) bool  { return unicode.IsLetter(rune(b)) }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isAlnum(b byte) bool  { return isAlpha(b) || isDigit(b) }
func isXDigit(b byte) bool { return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') }

// Descriptor returns the operator descriptor carried by the most
// recently returned Operator token (undefined otherwise).
func (l *Lexer) Descriptor() operator.Descriptor { return l.lastDesc }

// Next scans and returns the next token. On TOKEN_EOF/Error the caller
// should stop; Error tokens carry the offending text in Text (a single
// character, or the scanned prefix of a malformed number or variable).
func (l *Lexer) Next() Token {
	l.skipSpaces()

	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Line: l.line, Column: l.column}
	}

	startLine, startCol := l.line, l.column
	start := l.pos
	ch := l.cur()

	switch {
	// Name, possibly a function name.
	case isAlpha(ch) || ch == '_':
		for l.pos < len(l.input) && (isAlnum(l.cur()) || l.cur() == '_') {
			l.pos++
			l.column++
		}
		return Token{Kind: Name, Text: l.input[start:l.pos], Line: startLine, Column: startCol}

	// Number: integer with optional base prefix, or a float.
	case isDigit(ch):
		return l.lexNumber(start, startLine, startCol)

	case ch == '(':
		l.pos++
		l.column++
		return Token{Kind: LeftParen, Text: "(", Line: startLine, Column: startCol}

	case ch == ')':
		l.pos++
		l.column++
		return Token{Kind: RightParen, Text: ")", Line: startLine, Column: startCol}

	case ch == ',':
		l.pos++
		l.column++
		return Token{Kind: Comma, Text: ",", Line: startLine, Column: startCol}

	// $name : externally resolved variable.
	case ch == '$':
		return l.lexVariable(startLine, startCol)

	// #n! / #n? : register save/recall.
	case ch == '#':
		return l.lexRegister(startLine, startCol)

	// Otherwise, try to match a known operator spelling.
	default:
		rest := l.input[l.pos:]
		if d, ok := operator.Match(rest); ok {
			l.lastDesc = d
			l.pos += len(d.Spelling)
			l.column += len(d.Spelling)
			return Token{Kind: Operator, Text: d.Spelling, Line: startLine, Column: startCol}
		}

		// Unrecognized character: consume exactly one byte so the
		// caller's error message can quote it, then report Error.
		l.pos++
		l.column++
		return Token{Kind: Error, Text: string(ch), Line: startLine, Column: startCol}
	}
}

// lexNumber ports eval_lex's number scanner: it recognizes a leading
// "0" followed by a base letter (x/b/o/d) or a bare octal digit, then
// validates the remaining digits against that base, tracking whether a
// decimal point, an exponent or a base specifier has already been seen
// since those are mutually exclusive.
func (l *Lexer) lexNumber(start, startLine, startCol int) Token {
	base := 10
	if l.cur() == '0' && isXDigit(l.peekByte(1)) {
		// Decide whether this is an octal literal (no '.' / 'e' / 'E'
		// appears anywhere in the remaining digit run) purely to mirror
		// the source's lookahead; the actual base-digit walk below is
		// what ultimately governs acceptance.
		p := l.pos + 1
		foundFloatHint := false
		for p < len(l.input) {
			c := l.input[p]
			if c == '.' || c == 'e' || c == 'E' {
				foundFloatHint = true
				break
			}
			if !isXDigit(c) && !strings.ContainsRune("xXbBoOdD", rune(c)) {
				break
			}
			p++
		}
		if !foundFloatHint {
			base = 8
		}
	}

	foundBase, foundDot, foundExp := false, false, false
	for l.pos < len(l.input) {
		ch := l.cur()
		up := byte(unicode.ToUpper(rune(ch)))

		switch up {
		case 'X', 'B', 'D', 'O':
			// After a hexadecimal prefix, B and D are ordinary digits.
			if foundBase && base == 16 && (up == 'B' || up == 'D') {
				l.pos++
				l.column++
				continue
			}
			if foundDot || foundExp || foundBase {
				return Token{Kind: Error, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
			}
			switch up {
			case 'X':
				base = 16
			case 'D':
				base = 10
			case 'O':
				base = 8
			case 'B':
				base = 2
			}
			foundBase = true
			l.pos++
			l.column++
			continue

		case '.':
			if foundDot || foundExp || foundBase {
				return Token{Kind: Error, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
			}
			foundDot = true
			l.pos++
			l.column++
			continue

		case 'E':
			if !foundBase {
				if foundDot || foundExp {
					return Token{Kind: Error, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
				}
				foundExp = true
				l.pos++
				l.column++
				if l.cur() == '+' || l.cur() == '-' {
					l.pos++
					l.column++
				}
				continue
			}
			fallthrough

		default:
			if (up >= '0' && up <= '9') || (up >= 'A' && up <= 'F') {
				var digit int
				if up >= 'A' {
					digit = int(up-'A') + 10
				} else {
					digit = int(up - '0')
				}
				if digit >= base {
					return Token{Kind: Error, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
				}
				l.pos++
				l.column++
				continue
			}
		}
		break
	}

	return Token{Kind: Number, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
}

func (l *Lexer) lexVariable(startLine, startCol int) Token {
	l.pos++ // consume '$'
	l.column++
	if l.pos >= len(l.input) {
		return Token{Kind: Error, Text: "$", Line: startLine, Column: startCol}
	}
	start := l.pos
	if !isAlpha(l.cur()) && l.cur() != '_' {
		return Token{Kind: Error, Text: l.input[start-1 : start+1], Line: startLine, Column: startCol}
	}
	for l.pos < len(l.input) && (isAlnum(l.cur()) || l.cur() == '_') {
		l.pos++
		l.column++
	}
	return Token{Kind: Variable, Text: l.input[start:l.pos], Line: startLine, Column: startCol}
}

func (l *Lexer) lexRegister(startLine, startCol int) Token {
	l.pos++ // consume '#'
	l.column++
	l.skipSpaces()

	regID := 0
	foundDigits := false
	for l.pos < len(l.input) && isDigit(l.cur()) {
		regID = regID*10 + int(l.cur()-'0')
		foundDigits = true
		l.pos++
		l.column++
	}
	l.skipSpaces()

	if !foundDigits {
		regID = -1
	}

	switch l.cur() {
	case '!':
		l.pos++
		l.column++
		return Token{Kind: RegisterSave, Text: "#!", Line: startLine, Column: startCol, Register: regID}
	case '?':
		l.pos++
		l.column++
		return Token{Kind: RegisterRecall, Text: "#?", Line: startLine, Column: startCol, Register: regID}
	default:
		return Token{Kind: Error, Text: "#", Line: startLine, Column: startCol}
	}
}
