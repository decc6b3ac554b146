package rules

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// IncludeToQuotes rewrites `#include <header>` directives to the quoted form
// for headers in its allow-list, leaving the header name itself untouched.
type IncludeToQuotes struct {
	headers map[string]bool
}

// NewIncludeToQuotes constructs the rule. Its parameter object is the
// allow-list itself: a sequence of header names.
func NewIncludeToQuotes(params *yaml.Node) (transform.Rule, error) {
	var headers []string
	if err := transform.DecodeParams("IncludeToQuotes", params, &headers); err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, &transform.ConfigError{Rule: "IncludeToQuotes", Message: "header allow-list is empty"}
	}

	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[h] = true
	}
	return &IncludeToQuotes{headers: set}, nil
}

// Name implements transform.Rule.
func (r *IncludeToQuotes) Name() string { return "IncludeToQuotes" }

// includeOpen is the token shape that starts an angle-bracket include.
//
//nolint:gochecknoglobals // Read-only pattern.
var includeOpen = cppast.TokenPattern{
	{Kind: cppast.TokPunctuation, Spelling: "#"},
	{Kind: cppast.TokIdentifier, Spelling: "include"},
	{Kind: cppast.TokPunctuation, Spelling: "<"},
}

// Run implements transform.Rule. The header name is reconstructed by
// concatenating the spellings of every token strictly between the angle
// brackets; scanning resumes after the closing delimiter so overlapping
// includes are never double-matched.
func (r *IncludeToQuotes) Run(u *unit.Unit) error {
	tokens := u.Tokens

	start := 0
	for start < len(tokens) {
		idx := cppast.FindTokens(includeOpen, tokens, start)
		if idx == cppast.NotFound {
			return nil
		}

		closeIdx := cppast.FindToken(cppast.TokPunctuation, ">", tokens, idx+len(includeOpen))
		if closeIdx == cppast.NotFound {
			return nil
		}

		var name strings.Builder
		for i := idx + len(includeOpen); i < closeIdx; i++ {
			name.WriteString(tokens[i].Spelling)
		}

		if header := name.String(); r.headers[header] {
			span := cppast.ByteRange{
				Start: tokens[idx+len(includeOpen)-1].Range.Start,
				End:   tokens[closeIdx].Range.End,
			}
			if err := u.AddReplacement(span, `"`+header+`"`); err != nil {
				return err
			}
		}

		start = closeIdx + 1
	}
	return nil
}
