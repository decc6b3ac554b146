package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// TokenIdReplace replaces single identifier tokens, optionally requiring
// literal context tokens before and after the identifier. Only the identifier
// itself is rewritten; context tokens stay untouched and may serve as context
// for a later occurrence again.
type TokenIdReplace struct {
	from      string
	to        string
	prevCount int
	pattern   cppast.TokenPattern
}

type tokenIdReplaceParams struct {
	From  string                `yaml:"from"`
	To    string                `yaml:"to"`
	Prev  []transform.TokenSpec `yaml:"prev"`
	After []transform.TokenSpec `yaml:"after"`
}

// NewTokenIdReplace constructs the rule from its parameter node.
func NewTokenIdReplace(params *yaml.Node) (transform.Rule, error) {
	var p tokenIdReplaceParams
	if err := transform.DecodeParams("TokenIdReplace", params, &p); err != nil {
		return nil, err
	}
	if p.From == "" {
		return nil, &transform.ConfigError{Rule: "TokenIdReplace", Message: "missing required key \"from\""}
	}
	if p.To == "" {
		return nil, &transform.ConfigError{Rule: "TokenIdReplace", Message: "missing required key \"to\""}
	}

	prev, err := transform.CompilePattern("TokenIdReplace", p.Prev)
	if err != nil {
		return nil, err
	}
	after, err := transform.CompilePattern("TokenIdReplace", p.After)
	if err != nil {
		return nil, err
	}

	pattern := make(cppast.TokenPattern, 0, len(prev)+1+len(after))
	pattern = append(pattern, prev...)
	pattern = append(pattern, cppast.TokenMatch{Kind: cppast.TokIdentifier, Spelling: p.From})
	pattern = append(pattern, after...)

	return &TokenIdReplace{
		from:      p.From,
		to:        p.To,
		prevCount: len(prev),
		pattern:   pattern,
	}, nil
}

// Name implements transform.Rule.
func (r *TokenIdReplace) Name() string { return "TokenIdReplace" }

// Run implements transform.Rule. The scan resumes just past each match's
// target token, never past its trailing context.
func (r *TokenIdReplace) Run(u *unit.Unit) error {
	tokens := u.Tokens

	start := 0
	for start < len(tokens) {
		idx := cppast.FindTokens(r.pattern, tokens, start)
		if idx == cppast.NotFound {
			return nil
		}

		target := tokens[idx+r.prevCount]
		if err := u.AddReplacement(target.Range, r.to); err != nil {
			return err
		}

		start = idx + r.prevCount + 1
	}
	return nil
}
