// Package config loads swiftlex's repo-root configuration file. The
// teacher carries no config file of its own; this package gives the
// teacher's otherwise-indirect goccy/go-yaml dependency (pulled in only
// transitively, via go-snaps' own fixture tooling) a direct caller.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how `swiftlex lex` prints its lexeme stream.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the shape of .swiftlex.yaml.
type Config struct {
	// TabWidth is read from the file; `swiftlex lex` does not use it in
	// its output, and the lexer itself never computes columns.
	TabWidth int `yaml:"tabWidth"`
	// OutputFormat is the default for `swiftlex lex` when --json is not
	// given explicitly.
	OutputFormat OutputFormat `yaml:"outputFormat"`
	// ShowTrivia defaults --show-trivia when the flag is not passed.
	ShowTrivia bool `yaml:"showTrivia"`
}

// Default returns the configuration used when no .swiftlex.yaml is
// present.
func Default() Config {
	return Config{
		TabWidth:     4,
		OutputFormat: FormatText,
		ShowTrivia:   false,
	}
}

// Load reads and parses the YAML config file at path. A missing file is
// not an error: it returns Default() unchanged, matching the CLI's
// "works with zero configuration" expectation.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
