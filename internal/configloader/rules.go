package configloader

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cxform/internal/logging"
	"github.com/yaklabco/cxform/pkg/config"
	"github.com/yaklabco/cxform/pkg/transform"
)

// BuildRules constructs rules from the loaded entries, in order. An unknown
// rule name is reported and its entry skipped; the remaining rules still
// build. A ConfigError from a factory aborts construction, before any file
// is opened for parsing.
func BuildRules(registry *transform.Registry, specs []config.RuleSpec, logger *log.Logger) ([]transform.Rule, error) {
	rules := make([]transform.Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := registry.Build(spec.Name, spec.Params)
		if err != nil {
			var unknown *transform.UnknownRuleError
			if errors.As(err, &unknown) {
				logger.Error("unknown rule, skipping entry",
					logging.FieldRule, spec.Name,
					logging.FieldLine, spec.Line,
				)
				continue
			}
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
