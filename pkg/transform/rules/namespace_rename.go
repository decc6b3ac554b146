// Package rules implements the built-in transformation rules. Each rule is
// constructed from its declarative parameter object and registered with the
// transform registry during init().
package rules

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// NamespaceRename renames top-level namespace declarations whose qualified
// name equals the configured source name. Nested and unrelated namespaces are
// never descended into. A comment shortly after the namespace's closing brace
// that mentions the old name is renamed too, as a best-effort textual fix.
type NamespaceRename struct {
	from      string
	to        string
	fromParts int
}

type namespaceRenameParams struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// NewNamespaceRename constructs the rule from its parameter node.
func NewNamespaceRename(params *yaml.Node) (transform.Rule, error) {
	var p namespaceRenameParams
	if err := transform.DecodeParams("NamespaceRename", params, &p); err != nil {
		return nil, err
	}
	if p.From == "" {
		return nil, &transform.ConfigError{Rule: "NamespaceRename", Message: "missing required key \"from\""}
	}
	if p.To == "" {
		return nil, &transform.ConfigError{Rule: "NamespaceRename", Message: "missing required key \"to\""}
	}
	return &NamespaceRename{
		from:      p.From,
		to:        p.To,
		fromParts: strings.Count(p.From, "::") + 1,
	}, nil
}

// Name implements transform.Rule.
func (r *NamespaceRename) Name() string { return "NamespaceRename" }

// Run implements transform.Rule.
func (r *NamespaceRename) Run(u *unit.Unit) error {
	targets := r.collect(u)

	for _, node := range targets {
		if err := r.rename(u, node); err != nil {
			return err
		}
	}
	return nil
}

// collect gathers matching namespace nodes from the primary file. Namespace
// nodes are always pruned: a match is recorded but not descended into, and a
// non-match must not have its nested namespaces renamed either. Only the
// translation-unit node itself is descended.
func (r *NamespaceRename) collect(u *unit.Unit) []*cppast.Node {
	var targets []*cppast.Node
	cppast.WalkFile(u.Root, u.Path, func(n *cppast.Node) cppast.VisitResult {
		switch n.Kind {
		case cppast.NodeNamespace:
			if cppast.QualifiedName(n) == r.from {
				targets = append(targets, n)
			}
			return cppast.Prune
		case cppast.NodeTranslationUnit:
			return cppast.Descend
		default:
			return cppast.Prune
		}
	})
	return targets
}

// rename replaces the name-token span between `namespace` and `{`, then
// tries the trailing-comment fix.
func (r *NamespaceRename) rename(u *unit.Unit, node *cppast.Node) error {
	tokens := u.TokensIn(node.Range)
	if len(tokens) == 0 || !tokens[0].Is(cppast.TokKeyword, "namespace") {
		return &transform.ShapeError{
			Rule:    r.Name(),
			Path:    u.Path,
			Message: "namespace declaration does not start with the namespace keyword",
		}
	}

	// For a compound name of n parts the tokens run
	// `namespace p1 :: p2 ... pn {`, putting the brace at index 2n.
	braceIdx := cppast.FindToken(cppast.TokPunctuation, "{", tokens, 0)
	if braceIdx != 2*r.fromParts {
		return &transform.ShapeError{
			Rule: r.Name(),
			Path: u.Path,
			Message: fmt.Sprintf("namespace %s has unexpected token layout (brace at %d, want %d)",
				r.from, braceIdx, 2*r.fromParts),
		}
	}

	span := cppast.ByteRange{
		Start: tokens[1].Range.Start,
		End:   tokens[braceIdx-1].Range.End,
	}
	if err := u.AddReplacementIn(node.File, span, r.to); err != nil {
		return err
	}

	r.renameTrailingComment(u, node)
	return nil
}

// renameTrailingComment substring-replaces the old name in a comment that
// starts within two lines after the namespace's closing brace. Purely
// textual, not token-aware, and silently skipped when no such comment exists.
func (r *NamespaceRename) renameTrailingComment(u *unit.Unit, node *cppast.Node) {
	tok, ok := u.TokenAfter(node.Range.End)
	if !ok || tok.Kind != cppast.TokComment {
		return
	}

	closeLine := u.Lines.Line(node.Range.End - 1)
	if u.Lines.Line(tok.Range.Start) > closeLine+1 {
		return
	}
	if !strings.Contains(tok.Spelling, r.from) {
		return
	}

	renamed := strings.ReplaceAll(tok.Spelling, r.from, r.to)
	if renamed == tok.Spelling {
		return
	}
	// The comment lives in the primary file; offsets were checked above.
	_ = u.AddReplacement(tok.Range, renamed)
}
