package cpplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/parser/cpplex"
)

// kindSpellings flattens a token stream for compact comparison. An empty
// stream flattens to nil.
func kindSpellings(tokens []cppast.Token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Kind.String()+" "+t.Spelling)
	}
	return out
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "empty input",
			src:  "",
			want: nil,
		},
		{
			name: "simple declaration",
			src:  "int x = 42;",
			want: []string{"kwd int", "ident x", "punct =", "lit 42", "punct ;"},
		},
		{
			name: "namespace header",
			src:  "namespace foo {",
			want: []string{"kwd namespace", "ident foo", "punct {"},
		},
		{
			name: "compound namespace",
			src:  "namespace a::b {",
			want: []string{"kwd namespace", "ident a", "punct ::", "ident b", "punct {"},
		},
		{
			name: "include directive",
			src:  "#include <vector>",
			want: []string{"punct #", "ident include", "punct <", "ident vector", "punct >"},
		},
		{
			name: "quoted include",
			src:  `#include "foo.hpp"`,
			want: []string{"punct #", "ident include", `lit "foo.hpp"`},
		},
		{
			name: "line comment",
			src:  "x // trailing\ny",
			want: []string{"ident x", "comment // trailing", "ident y"},
		},
		{
			name: "block comment",
			src:  "x /* mid */ y",
			want: []string{"ident x", "comment /* mid */", "ident y"},
		},
		{
			name: "maximal munch punctuation",
			src:  "a<<=b",
			want: []string{"ident a", "punct <<=", "ident b"},
		},
		{
			name: "scope resolution not two colons",
			src:  "a::b",
			want: []string{"ident a", "punct ::", "ident b"},
		},
		{
			name: "string with escape",
			src:  `s = "a\"b";`,
			want: []string{"ident s", "punct =", `lit "a\"b"`, "punct ;"},
		},
		{
			name: "char literal",
			src:  "c = 'x';",
			want: []string{"ident c", "punct =", "lit 'x'", "punct ;"},
		},
		{
			name: "prefixed string literal",
			src:  `L"wide"`,
			want: []string{`lit L"wide"`},
		},
		{
			name: "raw string literal",
			src:  `R"(no "escape")"`,
			want: []string{`lit R"(no "escape")"`},
		},
		{
			name: "hex and separator literals",
			src:  "0xFF 1'000 3.14f 1e-5",
			want: []string{"lit 0xFF", "lit 1'000", "lit 3.14f", "lit 1e-5"},
		},
		{
			name: "float starting with dot",
			src:  ".5f",
			want: []string{"lit .5f"},
		},
		{
			name: "line continuation inside directive",
			src:  "#define A \\\n  B",
			want: []string{"punct #", "ident define", "ident A", "ident B"},
		},
		{
			name: "crlf line comment excludes carriage return",
			src:  "// note\r\nx",
			want: []string{"comment // note", "ident x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens, err := cpplex.Lex([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, kindSpellings(tokens))
		})
	}
}

func TestLex_Offsets(t *testing.T) {
	t.Parallel()

	src := "namespace foo {"
	tokens, err := cpplex.Lex([]byte(src))
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	for _, tok := range tokens {
		assert.Equal(t, tok.Spelling, src[tok.Range.Start:tok.Range.End])
	}
	assert.Equal(t, cppast.ByteRange{Start: 10, End: 13}, tokens[1].Range)
}

func TestLex_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"unterminated block comment", "/* never closed"},
		{"unterminated string", `"open`},
		{"string broken by newline", "\"open\nx"},
		{"unterminated char", "'x"},
		{"unterminated raw string", `R"(open`},
		{"unterminated prefixed string", `L"open`},
		{"unterminated prefixed char", "u8'x"},
		{"stray byte", "a \x01 b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cpplex.Lex([]byte(tt.src))
			var lexErr *cpplex.LexError
			require.ErrorAs(t, err, &lexErr)
		})
	}
}

func FuzzLex(f *testing.F) {
	f.Add("namespace foo { int x = 1; }")
	f.Add("#include <vector>\n// comment\n")
	f.Add(`R"(raw)" L'c' 0x1p-3`)
	f.Add("a <<= b >>= c <=> d")

	f.Fuzz(func(t *testing.T, src string) {
		tokens, err := cpplex.Lex([]byte(src))
		if err != nil {
			return
		}
		// Every token's range must map back to its spelling.
		for _, tok := range tokens {
			if tok.Range.Start < 0 || tok.Range.End > len(src) || tok.Range.Start >= tok.Range.End {
				t.Fatalf("token %q has bad range %v in input of length %d", tok.Spelling, tok.Range, len(src))
			}
			if src[tok.Range.Start:tok.Range.End] != tok.Spelling {
				t.Fatalf("token spelling %q does not match source slice %q",
					tok.Spelling, src[tok.Range.Start:tok.Range.End])
			}
		}
	})
}
