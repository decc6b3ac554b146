package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cxform/internal/ui/pretty"
	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
)

func TestRenderTokens(t *testing.T) {
	t.Parallel()

	content := []byte("namespace a { int x; }\n")
	result, err := cpplex.New().Parse("test.hpp", content, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	pretty.RenderTokens(&buf, result.Tokens, plainStyles())

	out := buf.String()
	assert.Contains(t, out, `"namespace"`)
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, "kwd")
	assert.Contains(t, out, "ident")
}

func TestRenderTree(t *testing.T) {
	t.Parallel()

	content := []byte("namespace a {\nclass Widget {};\n}\n")
	result, err := cpplex.New().Parse("test.hpp", content, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	pretty.RenderTree(&buf, result.Root, cppast.BuildLineIndex(content), plainStyles())

	out := buf.String()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "1:1")
}
