// Package config defines the rules-file data model and defaults for cxform.
package config

import "gopkg.in/yaml.v3"

// DefaultRulesFile is the rules file looked up when --rules is not given.
const DefaultRulesFile = ".transform-rules"

// DefaultCompilerArgs are the compiler arguments passed to the parser
// provider when none are configured.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultCompilerArgs = []string{"-std=c++20"}

// RuleSpec is one entry of the declarative rules file: a rule name and its
// raw parameter object. Parameters stay as a YAML node until the rule's
// factory decodes them into its own typed configuration.
type RuleSpec struct {
	// Name is the declarative rule name.
	Name string

	// Params is the rule's parameter object (mapping, sequence, or null).
	Params *yaml.Node

	// Line is the 1-based line of the entry in the rules file, for
	// diagnostics.
	Line int
}

// Config holds the transform run options resolved from flags.
type Config struct {
	// RulesFile is the path to the declarative rules file.
	RulesFile string

	// CompilerArgs are passed through to the parser provider.
	CompilerArgs []string

	// Backup writes a .bak copy before overwriting an existing output file.
	Backup bool
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		RulesFile:    DefaultRulesFile,
		CompilerArgs: append([]string(nil), DefaultCompilerArgs...),
	}
}
