/*
File    : goeval/cmd/goeval/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the goeval command-line tool. It
provides three modes of operation:
1. One-shot evaluation of a single expression ("goeval eval <expr>")
2. An interactive REPL ("goeval repl")
3. A live register-bank TUI ("goeval tui")

Wired with spf13/cobra rather than a manual os.Args switch, but keeping
the banner/version/author/prompt conventions of the original
interpreter tester this project's REPL is adapted from.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/goeval/regview"
	"github.com/akashmaji946/goeval/repl"
	"github.com/akashmaji946/goeval/session"
	"github.com/akashmaji946/goeval/sessioncfg"
)

// VERSION is the current version of goeval.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the maintainer.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "goeval> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▄████  ▒█████  ▓█████ ██▒   █▓ ▄▄▄       ██▓
  ██▒ ▀█▒▒██▒  ██▒▓█   ▀▓██░   █▒▒████▄    ▓██▒
 ▒██░▄▄▄░▒██░  ██▒▒███   ▓██  █▒░▒██  ▀█▄  ▒██░
 ░▓█  ██▓▒██   ██░▒▓█  ▄  ▒██ █░░░██▄▄▄▄██ ▒██░
 ░▒▓███▀▒░ ████▓▒░░▒████▒  ▒▀█░   ▓█   ▓██▒░██████▒
  ░▒   ▒ ░ ▒░▒░▒░ ░░ ▒░ ░  ░ ▐░   ▒▒   ▓▒█░░ ▒░▓  ░
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "goeval",
		Short: "A registers-and-functions arithmetic expression evaluator",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML session configuration file")

	root.AddCommand(evalCmd(), replCmd(), tuiCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSession() (*session.Session, error) {
	cfg, err := sessioncfg.Load(configPath)
	if err != nil {
		return nil, err
	}
	return session.New(cfg, nil), nil
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single expression and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			result, ok := sess.Evaluate(args[0])
			if !ok {
				redColor.Fprintf(os.Stderr, "%s\n", sess.Perror())
				os.Exit(1)
			}
			yellowColor.Fprintf(os.Stdout, "[SUCCESS] result = %g (0x%.16X)\n", result, int64(result))
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			prompt := PROMPT
			if sess.Config.CLI.Prompt != "" {
				prompt = sess.Config.CLI.Prompt
			}
			r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, prompt)
			r.Start(os.Stdin, os.Stdout, sess)
			return nil
		},
	}
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch a live register-bank viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			tui := regview.NewTUI(sess)
			if err := tui.Run(); err != nil {
				return fmt.Errorf("regview: %w", err)
			}
			return nil
		},
	}
}
