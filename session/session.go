/*
File    : goeval/session/session.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package session ties the lexer, parser, evaluator, primitive registry
and register bank together behind the two entry points the original
evaluator exposes: a variableless Evaluate and a callback-taking
EvaluateWithVariables. Unlike the original's process-wide globals, a
Session owns its own registry and register bank so independent
sessions never interfere with one another (see DESIGN.md's redesign
note).
*/
package session

import (
	"github.com/akashmaji946/goeval/builtins"
	"github.com/akashmaji946/goeval/eval"
	"github.com/akashmaji946/goeval/evalerr"
	"github.com/akashmaji946/goeval/parser"
	"github.com/akashmaji946/goeval/regbank"
	"github.com/akashmaji946/goeval/registry"
	"github.com/akashmaji946/goeval/sessioncfg"

	"go.uber.org/zap"
)

// Session is a self-contained evaluation context: its own primitive
// registry, register bank and configuration.
type Session struct {
	Registry   *registry.Registry
	Registers  *regbank.Bank
	Config     *sessioncfg.Config
	Log        *zap.Logger
	UseDegrees bool

	lastErr error
}

// New builds a Session from cfg (nil selects sessioncfg.Default()),
// registering the default builtin catalogue plus any extra constants
// cfg requests. log may be nil, which installs a no-op logger.
func New(cfg *sessioncfg.Config, log *zap.Logger) *Session {
	if cfg == nil {
		cfg = sessioncfg.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	reg := registry.New()
	reg.RegisterConstants(builtins.Constants...)
	reg.RegisterFunctions(builtins.Functions(builtins.DegreeMode{UseDegrees: cfg.Evaluator.UseDegrees})...)

	for name, value := range cfg.Evaluator.ExtraConstants {
		reg.RegisterConstants(registry.Constant{Name: name, Value: value})
	}

	return &Session{
		Registry:   reg,
		Registers:  regbank.New(cfg.Evaluator.RegisterCapacity),
		Config:     cfg,
		Log:        log,
		UseDegrees: cfg.Evaluator.UseDegrees,
	}
}

// RegisterConstants adds caller-supplied constants on top of the
// default catalogue, mirroring evaluator_register_constants().
func (s *Session) RegisterConstants(defs ...registry.Constant) {
	s.Registry.RegisterConstants(defs...)
}

// RegisterFunctions adds caller-supplied functions on top of the
// default catalogue, mirroring evaluator_register_functions().
func (s *Session) RegisterFunctions(defs ...registry.FuncDef) {
	s.Registry.RegisterFunctions(defs...)
}

// LastError returns the error raised by the most recent Evaluate* call,
// or nil after a successful evaluation.
func (s *Session) LastError() error { return s.lastErr }

// Evaluate parses and runs expr with no variable support, mirroring
// evaluate(). A $name reference anywhere in expr is rejected.
func (s *Session) Evaluate(expr string) (float64, bool) {
	return s.evaluate(expr, false, nil)
}

// EvaluateWithVariables parses and runs expr, resolving any $name
// reference through callback, mirroring evaluate_ex().
func (s *Session) EvaluateWithVariables(expr string, callback eval.Callback) (float64, bool) {
	return s.evaluate(expr, true, callback)
}

func (s *Session) evaluate(expr string, allowVariables bool, callback eval.Callback) (float64, bool) {
	s.lastErr = nil
	s.Registers.Reset()

	p := parser.New(expr, allowVariables)
	seq, err := p.Parse()
	if err != nil {
		s.lastErr = err
		s.Log.Warn("parse failed", zap.String("expr", expr), zap.Error(err))
		return 0, false
	}

	ev := eval.New(s.Registry, s.Registers)
	result, err := ev.Run(seq, callback)
	if err != nil {
		s.lastErr = err
		s.Log.Warn("evaluate failed", zap.String("expr", expr), zap.Error(err))
		return 0, false
	}

	s.Log.Debug("evaluate succeeded", zap.String("expr", expr), zap.Float64("result", result))
	return result, true
}

// Perror reports the last error in the evaluator's own diagnostic
// style, mirroring evaluator_perror() ; it is a no-op when there was
// no error.
func (s *Session) Perror() string {
	if s.lastErr == nil {
		return ""
	}
	if ee, ok := s.lastErr.(*evalerr.Error); ok {
		return ee.Error()
	}
	return s.lastErr.Error()
}
