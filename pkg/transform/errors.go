package transform

import "fmt"

// ConfigError reports a missing or invalid declarative rule parameter. It is
// surfaced at rule construction, before any file is opened for parsing.
type ConfigError struct {
	// Rule is the declarative rule name.
	Rule string

	// Message describes the problem.
	Message string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rule %s: %s: %v", e.Rule, e.Message, e.Err)
	}
	return fmt.Sprintf("rule %s: %s", e.Rule, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnknownRuleError reports an unrecognized rule name in the configuration.
// The loader reports it and skips the entry; the remaining rules still run.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}

// ShapeError reports a token or AST layout that violates a rule's structural
// assumption. It is fatal for the current file: processing aborts and no
// output is written, favoring visible failure over silent mis-transformation.
type ShapeError struct {
	// Rule is the rule whose assumption was violated.
	Rule string

	// Path is the file being processed.
	Path string

	// Message describes the violated assumption.
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("rule %s: unsupported shape in %s: %s", e.Rule, e.Path, e.Message)
}
