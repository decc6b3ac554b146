// Package transform provides the rule engine: the Rule interface, the
// registry mapping declarative rule names to constructors, and the engine
// that runs a configured rule list against translation units.
package transform

import (
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/unit"
)

// Rule is one configured transformation step. A rule is constructed once from
// its declarative parameter object and is stateless across invocations beyond
// that configuration; Run never mutates it.
type Rule interface {
	// Name returns the declarative rule name, e.g. "NamespaceRename".
	Name() string

	// Run reads the unit's tokens and AST and appends zero or more pending
	// replacements. A ShapeError return is fatal for the current file.
	Run(u *unit.Unit) error
}

// Factory constructs a rule from its declarative parameter node. Factories
// return a ConfigError when a required parameter is missing or malformed;
// construction failures surface before any file is parsed.
type Factory func(params *yaml.Node) (Rule, error)

// DecodeParams decodes a rule's parameter node into a typed configuration
// struct, wrapping decode failures as ConfigError.
func DecodeParams(ruleName string, params *yaml.Node, out any) error {
	if params == nil {
		return &ConfigError{Rule: ruleName, Message: "missing parameters"}
	}
	if err := params.Decode(out); err != nil {
		return &ConfigError{Rule: ruleName, Message: "malformed parameters", Err: err}
	}
	return nil
}
