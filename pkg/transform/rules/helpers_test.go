package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/parser/cpplex"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// params decodes a YAML fragment into the parameter node a rule factory
// receives, exactly as the config loader would hand it over.
func params(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)
	return doc.Content[0]
}

// runRule applies one rule to in-memory content and returns the materialized
// result.
func runRule(t *testing.T, rule transform.Rule, content string) string {
	t.Helper()
	u, err := unit.NewFromContent(cpplex.New(), "test.hpp", []byte(content), nil)
	require.NoError(t, err)
	require.NoError(t, rule.Run(u))
	return string(u.Materialize())
}

// runRuleErr applies one rule and returns the Run error.
func runRuleErr(t *testing.T, rule transform.Rule, content string) error {
	t.Helper()
	u, err := unit.NewFromContent(cpplex.New(), "test.hpp", []byte(content), nil)
	require.NoError(t, err)
	return rule.Run(u)
}
