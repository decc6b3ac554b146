package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/cxform/pkg/transform"
	"github.com/yaklabco/cxform/pkg/unit"
)

// ApplyAndReparse is the declarative form of the unit's synchronization
// point: it materializes all pending replacements and reparses the result, so
// rules later in the pipeline match against the edited text. It takes no
// parameters.
type ApplyAndReparse struct{}

// NewApplyAndReparse constructs the rule. The parameter node is accepted and
// ignored so the config entry can be written as `- ApplyAndReparse: {}`.
func NewApplyAndReparse(*yaml.Node) (transform.Rule, error) {
	return &ApplyAndReparse{}, nil
}

// Name implements transform.Rule.
func (r *ApplyAndReparse) Name() string { return "ApplyAndReparse" }

// Run implements transform.Rule.
func (r *ApplyAndReparse) Run(u *unit.Unit) error {
	return u.ApplyAndReparse()
}
