package configloader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaError reports a structurally malformed rules file. It is surfaced
// before any rule is constructed and aborts the entire run.
type SchemaError struct {
	// Path is the rules file.
	Path string

	// Line is the 1-based line of the offending node, when known.
	Line int

	// Message describes the violation.
	Message string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// validateDocument checks the rules file's structure: a single YAML document
// holding a sequence of single-key mappings, each key a scalar rule name and
// each value a mapping, sequence, or null parameter object. Parameter
// contents are the rule factories' concern.
func validateDocument(path string, doc *yaml.Node) error {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		// Empty file: nothing to transform, nothing to reject.
		return nil
	}
	if len(doc.Content) > 1 {
		return &SchemaError{Path: path, Message: "rules file must contain a single YAML document"}
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return &SchemaError{
			Path:    path,
			Line:    seq.Line,
			Message: "rules file must be a sequence of rule entries",
		}
	}

	for _, entry := range seq.Content {
		if err := validateEntry(path, entry); err != nil {
			return err
		}
	}
	return nil
}

func validateEntry(path string, entry *yaml.Node) error {
	if entry.Kind != yaml.MappingNode {
		return &SchemaError{
			Path:    path,
			Line:    entry.Line,
			Message: "rule entry must be a mapping with a single rule-name key",
		}
	}
	if len(entry.Content) != 2 {
		return &SchemaError{
			Path:    path,
			Line:    entry.Line,
			Message: fmt.Sprintf("rule entry must have exactly one key, found %d", len(entry.Content)/2),
		}
	}

	key := entry.Content[0]
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return &SchemaError{
			Path:    path,
			Line:    key.Line,
			Message: "rule name must be a non-empty string",
		}
	}

	value := entry.Content[1]
	switch value.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		return &SchemaError{
			Path:    path,
			Line:    value.Line,
			Message: fmt.Sprintf("parameters for rule %q must be a mapping or sequence", key.Value),
		}
	default:
		return &SchemaError{
			Path:    path,
			Line:    value.Line,
			Message: fmt.Sprintf("parameters for rule %q must be a mapping or sequence", key.Value),
		}
	}
}
