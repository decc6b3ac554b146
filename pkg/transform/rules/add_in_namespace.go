package rules

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// AddInNamespace inserts literal text as a new first line of every namespace
// whose qualified name is in the configured set. Indentation follows the
// column of the first token after the opening brace.
type AddInNamespace struct {
	add        string
	namespaces map[string]bool
}

type addInNamespaceParams struct {
	Add string   `yaml:"add"`
	In  []string `yaml:"in"`
}

// NewAddInNamespace constructs the rule from its parameter node.
func NewAddInNamespace(params *yaml.Node) (transform.Rule, error) {
	var p addInNamespaceParams
	if err := transform.DecodeParams("AddInNamespace", params, &p); err != nil {
		return nil, err
	}
	if p.Add == "" {
		return nil, &transform.ConfigError{Rule: "AddInNamespace", Message: "missing required key \"add\""}
	}
	if len(p.In) == 0 {
		return nil, &transform.ConfigError{Rule: "AddInNamespace", Message: "missing required key \"in\""}
	}

	set := make(map[string]bool, len(p.In))
	for _, name := range p.In {
		set[name] = true
	}
	return &AddInNamespace{add: p.Add, namespaces: set}, nil
}

// Name implements transform.Rule.
func (r *AddInNamespace) Name() string { return "AddInNamespace" }

// Run implements transform.Rule.
func (r *AddInNamespace) Run(u *unit.Unit) error {
	var targets []*cppast.Node
	cppast.WalkFile(u.Root, u.Path, func(n *cppast.Node) cppast.VisitResult {
		switch n.Kind {
		case cppast.NodeNamespace:
			if r.namespaces[cppast.QualifiedName(n)] {
				targets = append(targets, n)
			}
			return cppast.Prune
		case cppast.NodeTranslationUnit:
			return cppast.Descend
		default:
			return cppast.Prune
		}
	})

	for _, node := range targets {
		if err := r.insert(u, node); err != nil {
			return err
		}
	}
	return nil
}

func (r *AddInNamespace) insert(u *unit.Unit, node *cppast.Node) error {
	tokens := u.TokensIn(node.Range)
	if len(tokens) == 0 || !tokens[0].Is(cppast.TokKeyword, "namespace") {
		return &transform.ShapeError{
			Rule:    r.Name(),
			Path:    u.Path,
			Message: "namespace declaration does not start with the namespace keyword",
		}
	}

	braceIdx := cppast.FindToken(cppast.TokPunctuation, "{", tokens, 0)
	if braceIdx == cppast.NotFound {
		return &transform.ShapeError{
			Rule:    r.Name(),
			Path:    u.Path,
			Message: "namespace declaration has no opening brace",
		}
	}

	indent := 0
	if braceIdx+1 < len(tokens) {
		indent = u.Lines.Column(tokens[braceIdx+1].Range.Start) - 1
	}

	text := "\n" + strings.Repeat(" ", indent) + r.add + "\n"
	return u.AddInsertion(tokens[braceIdx].Range.End, text)
}
