package transform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// renameFoo is a minimal rule replacing the identifier foo with bar.
type renameFoo struct{}

func (renameFoo) Name() string { return "renameFoo" }

func (renameFoo) Run(u *unit.Unit) error {
	start := 0
	for {
		idx := cppast.FindToken(cppast.TokIdentifier, "foo", u.Tokens, start)
		if idx == cppast.NotFound {
			return nil
		}
		if err := u.AddReplacement(u.Tokens[idx].Range, "bar"); err != nil {
			return err
		}
		start = idx + 1
	}
}

// failingRule aborts every file.
type failingRule struct{}

func (failingRule) Name() string { return "failingRule" }

func (failingRule) Run(*unit.Unit) error {
	return errors.New("structural assumption violated")
}

func TestEngine_TransformContent(t *testing.T) {
	t.Parallel()

	engine := transform.NewEngine(cpplex.New(), []transform.Rule{renameFoo{}})

	out, report, err := engine.TransformContent("a.hpp", []byte("namespace foo { int foo; }\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, "namespace bar { int bar; }\n", string(out))
	assert.Equal(t, 2, report.Replacements)
	assert.True(t, report.Diff.HasChanges())
}

func TestEngine_TransformContent_NoChanges(t *testing.T) {
	t.Parallel()

	engine := transform.NewEngine(cpplex.New(), []transform.Rule{renameFoo{}})

	content := []byte("int unrelated;\n")
	out, report, err := engine.TransformContent("a.hpp", content, nil)
	require.NoError(t, err)

	assert.Equal(t, content, out)
	assert.Zero(t, report.Replacements)
	assert.Nil(t, report.Diff)
}

func TestEngine_TransformFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.hpp")
	output := filepath.Join(dir, "out.hpp")
	require.NoError(t, os.WriteFile(input, []byte("int foo;\n"), 0o644))

	engine := transform.NewEngine(cpplex.New(), []transform.Rule{renameFoo{}})

	report, err := engine.TransformFile(context.Background(), input, output)
	require.NoError(t, err)
	assert.Equal(t, input, report.Input)
	assert.Equal(t, output, report.Output)
	assert.Equal(t, 1, report.Replacements)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "int bar;\n", string(written))
}

func TestEngine_RuleErrorAbortsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.hpp")
	output := filepath.Join(dir, "out.hpp")
	require.NoError(t, os.WriteFile(input, []byte("int foo;\n"), 0o644))

	engine := transform.NewEngine(cpplex.New(), []transform.Rule{renameFoo{}, failingRule{}})

	_, err := engine.TransformFile(context.Background(), input, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failingRule")

	// The output must not exist: a rule error aborts before any write.
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEngine_RulesRunInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	first := ruleFunc{name: "first", order: &order}
	second := ruleFunc{name: "second", order: &order}

	engine := transform.NewEngine(cpplex.New(), []transform.Rule{first, second})
	_, _, err := engine.TransformContent("a.hpp", []byte("int x;\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, order)
}

// ruleFunc records its invocation order.
type ruleFunc struct {
	name  string
	order *[]string
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Run(*unit.Unit) error {
	*r.order = append(*r.order, r.name)
	return nil
}
