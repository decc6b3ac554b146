// Package configloader loads and validates the declarative rules file and
// turns its entries into constructed rules. Structural validation happens
// before any rule is built; a malformed file aborts the run, while an
// unknown rule name only skips that entry.
package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/config"
)

// Load reads the rules file at path and returns its ordered rule entries.
// The file is validated structurally (top-level sequence of single-key
// mappings) before any entry is returned.
func Load(path string) ([]config.RuleSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(path, content)
}

// Parse validates and decodes rules-file content.
func Parse(path string, content []byte) ([]config.RuleSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &SchemaError{Path: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	if err := validateDocument(path, &doc); err != nil {
		return nil, err
	}

	// An empty file is a valid no-op rule set.
	if len(doc.Content) == 0 {
		return nil, nil
	}

	seq := doc.Content[0]
	specs := make([]config.RuleSpec, 0, len(seq.Content))
	for _, entry := range seq.Content {
		specs = append(specs, config.RuleSpec{
			Name:   entry.Content[0].Value,
			Params: entry.Content[1],
			Line:   entry.Line,
		})
	}
	return specs, nil
}
