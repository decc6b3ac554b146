package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/fsutil"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
	"github.com/yaklabco/cxform/pkg/runner"
	"github.com/yaklabco/cxform/pkg/transform"
	_ "github.com/yaklabco/cxform/pkg/transform/rules"
)

func testLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

// renameRules builds a single NamespaceRename old_ns -> new_ns rule list.
func renameRules(t *testing.T) []transform.Rule {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("from: old_ns\nto: new_ns\n"), &doc))

	rule, err := transform.DefaultRegistry.Build("NamespaceRename", doc.Content[0])
	require.NoError(t, err)
	return []transform.Rule{rule}
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "widget.hpp", "namespace old_ns {\nint x;\n}\n")
	output := filepath.Join(dir, "out", "widget.hpp")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))

	r := runner.New(cpplex.New(), renameRules(t), testLogger())
	result, err := r.Run(context.Background(), runner.Options{
		Pairs: []runner.FilePair{{Input: input, Output: output}},
	})
	require.NoError(t, err)

	assert.False(t, result.Failed())
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesFailed)
	assert.Equal(t, 1, result.Stats.ReplacementsMade)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "namespace new_ns {\nint x;\n}\n", string(got))
}

func TestRunner_FailedFileDoesNotStopBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeInput(t, dir, "good.hpp", "namespace old_ns { int x; }\n")
	// Unterminated block comment fails lexing.
	bad := writeInput(t, dir, "bad.hpp", "/* never closed\n")

	pairs := []runner.FilePair{
		{Input: bad, Output: filepath.Join(dir, "bad.out.hpp")},
		{Input: good, Output: filepath.Join(dir, "good.out.hpp")},
	}

	r := runner.New(cpplex.New(), renameRules(t), testLogger())
	result, err := r.Run(context.Background(), runner.Options{Pairs: pairs})
	require.NoError(t, err)

	assert.True(t, result.Failed())
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesFailed)

	require.Len(t, result.Files, 2)
	assert.Error(t, result.Files[0].Error)
	assert.NoError(t, result.Files[1].Error)

	// The good file was still written.
	_, err = os.Stat(filepath.Join(dir, "good.out.hpp"))
	assert.NoError(t, err)
	// The bad file produced no output.
	_, err = os.Stat(filepath.Join(dir, "bad.out.hpp"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunner_Backup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "widget.hpp", "namespace old_ns { int x; }\n")
	output := writeInput(t, dir, "widget.out.hpp", "previous contents\n")

	r := runner.New(cpplex.New(), renameRules(t), testLogger())
	result, err := r.Run(context.Background(), runner.Options{
		Pairs:  []runner.FilePair{{Input: input, Output: output}},
		Backup: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Failed())

	backup, err := os.ReadFile(fsutil.BackupPath(output))
	require.NoError(t, err)
	assert.Equal(t, "previous contents\n", string(backup))
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(cpplex.New(), renameRules(t), testLogger())
	_, err := r.Run(ctx, runner.Options{
		Pairs: []runner.FilePair{{Input: "in.hpp", Output: "out.hpp"}},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
