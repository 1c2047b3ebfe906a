/*
File    : goeval/sessioncfg/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package sessioncfg loads the TOML configuration file a Session is
built from: degree/radian mode for trigonometric functions, register
bank capacity, log level and extra constants to seed into the
registry, plus CLI-facing prompt/history settings.
*/
package sessioncfg

import (
	"github.com/BurntSushi/toml"

	"github.com/akashmaji946/goeval/regbank"
)

// EvaluatorConfig controls the evaluation engine itself.
type EvaluatorConfig struct {
	UseDegrees       bool               `toml:"use_degrees"`
	RegisterCapacity int                `toml:"register_capacity"`
	LogLevel         string             `toml:"log_level"`
	ExtraConstants   map[string]float64 `toml:"extra_constants"`
}

// CLIConfig controls the interactive front-ends (repl, tui).
type CLIConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Config is the full, TOML-decoded session configuration.
type Config struct {
	Evaluator EvaluatorConfig `toml:"evaluator"`
	CLI       CLIConfig       `toml:"cli"`
}

// Default returns the configuration a Session uses when no file is
// supplied: degrees mode on (matching evaluator_use_degrees's default),
// a full-size register bank, info-level logging and no extra constants.
func Default() *Config {
	return &Config{
		Evaluator: EvaluatorConfig{
			UseDegrees:       true,
			RegisterCapacity: regbank.DefaultCapacity,
			LogLevel:         "info",
			ExtraConstants:   map[string]float64{},
		},
		CLI: CLIConfig{
			Prompt:      "goeval> ",
			HistoryFile: "",
		},
	}
}

// Load decodes the TOML file at path over top of Default(), so a file
// that overrides only one field leaves the rest at their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Evaluator.ExtraConstants == nil {
		cfg.Evaluator.ExtraConstants = map[string]float64{}
	}
	return cfg, nil
}
