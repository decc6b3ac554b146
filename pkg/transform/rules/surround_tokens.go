package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// SurroundTokens brackets every occurrence of a literal token sequence with a
// configured prefix and suffix, typically preprocessor guards. The matched
// tokens themselves are never altered.
type SurroundTokens struct {
	pre     string
	post    string
	pattern cppast.TokenPattern
}

type surroundTokensParams struct {
	Pre    *string               `yaml:"pre"`
	Post   *string               `yaml:"post"`
	Tokens []transform.TokenSpec `yaml:"tokens"`
}

// NewSurroundTokens constructs the rule from its parameter node. Both pre and
// post must be present; either may be empty to insert on one side only.
func NewSurroundTokens(params *yaml.Node) (transform.Rule, error) {
	var p surroundTokensParams
	if err := transform.DecodeParams("SurroundTokens", params, &p); err != nil {
		return nil, err
	}
	if p.Pre == nil {
		return nil, &transform.ConfigError{Rule: "SurroundTokens", Message: "missing required key \"pre\""}
	}
	if p.Post == nil {
		return nil, &transform.ConfigError{Rule: "SurroundTokens", Message: "missing required key \"post\""}
	}
	if len(p.Tokens) == 0 {
		return nil, &transform.ConfigError{Rule: "SurroundTokens", Message: "missing required key \"tokens\""}
	}

	pattern, err := transform.CompilePattern("SurroundTokens", p.Tokens)
	if err != nil {
		return nil, err
	}
	return &SurroundTokens{pre: *p.Pre, post: *p.Post, pattern: pattern}, nil
}

// Name implements transform.Rule.
func (r *SurroundTokens) Name() string { return "SurroundTokens" }

// Run implements transform.Rule. Scanning resumes immediately after each
// match.
func (r *SurroundTokens) Run(u *unit.Unit) error {
	tokens := u.Tokens

	start := 0
	for start < len(tokens) {
		idx := cppast.FindTokens(r.pattern, tokens, start)
		if idx == cppast.NotFound {
			return nil
		}

		matchStart := tokens[idx].Range.Start
		matchEnd := tokens[idx+len(r.pattern)-1].Range.End

		if r.pre != "" {
			if err := u.AddInsertion(matchStart, r.pre); err != nil {
				return err
			}
		}
		if r.post != "" {
			if err := u.AddInsertion(matchEnd, r.post); err != nil {
				return err
			}
		}

		start = idx + len(r.pattern)
	}
	return nil
}
