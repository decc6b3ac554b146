package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/transform/rules"
)

func TestReplaceTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		content string
		want    string
	}{
		{
			name: "qualified name collapsed",
			yaml: "to: new_ns\ntokens:\n  - text: old_outer\n  - token: punct\n    text: \"::\"\n  - text: old_inner",
			content: "old_outer::old_inner::thing x;\n",
			want:    "new_ns::thing x;\n",
		},
		{
			name: "sequence spanning whitespace",
			yaml: "to: \"auto\"\ntokens:\n  - token: kwd\n    text: unsigned\n  - token: kwd\n    text: long",
			content: "unsigned long a;\nunsigned   long b;\n",
			want:    "auto a;\nauto b;\n",
		},
		{
			name: "prev context limits matches",
			yaml: "to: \"X\"\ntokens:\n  - text: b\nprev:\n  - text: a",
			content: "a b; c b;\n",
			want:    "a X; c b;\n",
		},
		{
			name: "after context stays in place",
			yaml: "to: \"X\"\ntokens:\n  - text: b\nafter:\n  - token: punct\n    text: \";\"",
			content: "b; b,\n",
			want:    "X; b,\n",
		},
		{
			name: "no match leaves content alone",
			yaml: "to: x\ntokens:\n  - text: absent",
			content: "int y;\n",
			want:    "int y;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule, err := rules.NewReplaceTokens(params(t, tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, runRule(t, rule, tt.content))
		})
	}
}

func TestReplaceTokens_ConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"missing to", "tokens:\n  - text: a"},
		{"missing tokens", "to: x"},
		{"token entry without text", "to: x\ntokens:\n  - token: punct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := rules.NewReplaceTokens(params(t, tt.yaml))
			var cfgErr *transform.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "ReplaceTokens", cfgErr.Rule)
		})
	}
}
