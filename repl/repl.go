/*
File    : goeval/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the expression
evaluator. The REPL provides an interactive environment where users
can:
- Enter one expression per line
- See the immediate `[SUCCESS] result = %g (0xHEX)` result
- Navigate command history using arrow keys
- Receive colored feedback for different kinds of output

The REPL uses the readline library for line editing and drives one
long-lived session.Session across the whole interactive run, mirroring
the original evaluator tester's "enter expression, evaluate, repeat
until blank line" loop.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/goeval/session"
)

// Color definitions for REPL output.
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates
// all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the evaluator
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "goeval> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to goeval!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' or press enter on a blank line to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, evaluating each line against sess
// until the user exits. A fresh readline instance owns history/line
// editing; sess persists across every line so register-bank contents
// are only as long-lived as one top-level evaluation (see
// session.Session.Evaluate), matching the original tester loop.
func (r *Repl) Start(reader io.Reader, writer io.Writer, sess *session.Session) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" || line == ".exit" {
			writer.Write([]byte("done.\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, sess)
	}
}

// executeWithRecovery evaluates one line against sess with panic
// recovery, printing the spec's success/error line shape. Unlike a
// one-shot CLI invocation, the REPL never exits on an evaluation
// error; it prints it and returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, sess *session.Session) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	result, ok := sess.Evaluate(line)
	if !ok {
		redColor.Fprintf(writer, "%s\n", sess.Perror())
		return
	}

	yellowColor.Fprintf(writer, "[SUCCESS] result = %g (0x%.16X)\n", result, int64(result))
}
