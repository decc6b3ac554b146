package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// ReplaceTokens replaces a literal multi-token sequence with a destination
// text, optionally requiring context tokens around the target. Like
// TokenIdReplace, only the target sub-span is rewritten.
type ReplaceTokens struct {
	to        string
	prevCount int
	target    cppast.TokenPattern
	pattern   cppast.TokenPattern
}

type replaceTokensParams struct {
	To     string                `yaml:"to"`
	Tokens []transform.TokenSpec `yaml:"tokens"`
	Prev   []transform.TokenSpec `yaml:"prev"`
	After  []transform.TokenSpec `yaml:"after"`
}

// NewReplaceTokens constructs the rule from its parameter node.
func NewReplaceTokens(params *yaml.Node) (transform.Rule, error) {
	var p replaceTokensParams
	if err := transform.DecodeParams("ReplaceTokens", params, &p); err != nil {
		return nil, err
	}
	if p.To == "" {
		return nil, &transform.ConfigError{Rule: "ReplaceTokens", Message: "missing required key \"to\""}
	}
	if len(p.Tokens) == 0 {
		return nil, &transform.ConfigError{Rule: "ReplaceTokens", Message: "missing required key \"tokens\""}
	}

	target, err := transform.CompilePattern("ReplaceTokens", p.Tokens)
	if err != nil {
		return nil, err
	}
	prev, err := transform.CompilePattern("ReplaceTokens", p.Prev)
	if err != nil {
		return nil, err
	}
	after, err := transform.CompilePattern("ReplaceTokens", p.After)
	if err != nil {
		return nil, err
	}

	pattern := make(cppast.TokenPattern, 0, len(prev)+len(target)+len(after))
	pattern = append(pattern, prev...)
	pattern = append(pattern, target...)
	pattern = append(pattern, after...)

	return &ReplaceTokens{
		to:        p.To,
		prevCount: len(prev),
		target:    target,
		pattern:   pattern,
	}, nil
}

// Name implements transform.Rule.
func (r *ReplaceTokens) Name() string { return "ReplaceTokens" }

// Run implements transform.Rule. The scan resumes after the target sub-span,
// so a match never overlaps the previous one's rewritten tokens.
func (r *ReplaceTokens) Run(u *unit.Unit) error {
	tokens := u.Tokens

	start := 0
	for start < len(tokens) {
		idx := cppast.FindTokens(r.pattern, tokens, start)
		if idx == cppast.NotFound {
			return nil
		}

		first := tokens[idx+r.prevCount]
		last := tokens[idx+r.prevCount+len(r.target)-1]
		span := cppast.ByteRange{Start: first.Range.Start, End: last.Range.End}
		if err := u.AddReplacement(span, r.to); err != nil {
			return err
		}

		start = idx + r.prevCount + len(r.target)
	}
	return nil
}
