package transform

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// TokenSpec is one entry of a declarative token list. The token field selects
// the kind ("punct", "kwd", "lit", "comment"); an absent or empty token field
// means identifier, the overwhelmingly common case in rule files.
type TokenSpec struct {
	Token string `yaml:"token"`
	Text  string `yaml:"text"`
}

// Match converts the spec into a matcher element.
func (s TokenSpec) Match() (cppast.TokenMatch, error) {
	if s.Text == "" {
		return cppast.TokenMatch{}, fmt.Errorf("token entry is missing required key %q", "text")
	}

	kind := cppast.TokIdentifier
	switch s.Token {
	case "", "ident":
	case "punct":
		kind = cppast.TokPunctuation
	case "kwd":
		kind = cppast.TokKeyword
	case "lit":
		kind = cppast.TokLiteral
	case "comment":
		kind = cppast.TokComment
	default:
		return cppast.TokenMatch{}, fmt.Errorf("unknown token kind %q", s.Token)
	}
	return cppast.TokenMatch{Kind: kind, Spelling: s.Text}, nil
}

// CompilePattern converts a declarative token list into a token pattern,
// wrapping any element failure as a ConfigError for the named rule.
func CompilePattern(ruleName string, specs []TokenSpec) (cppast.TokenPattern, error) {
	pattern := make(cppast.TokenPattern, 0, len(specs))
	for _, s := range specs {
		m, err := s.Match()
		if err != nil {
			return nil, &ConfigError{Rule: ruleName, Message: err.Error()}
		}
		pattern = append(pattern, m)
	}
	return pattern, nil
}

// PatternString renders a pattern for display, inserting a space between
// adjacent non-punctuation tokens so `const int` does not print as `constint`.
func PatternString(pattern cppast.TokenPattern) string {
	var b strings.Builder
	prevKind := cppast.TokPunctuation
	for _, m := range pattern {
		if m.Kind != cppast.TokPunctuation && prevKind != cppast.TokPunctuation {
			b.WriteByte(' ')
		}
		prevKind = m.Kind
		b.WriteString(m.Spelling)
	}
	return b.String()
}
