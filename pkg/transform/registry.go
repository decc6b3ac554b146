package transform

import (
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry maps declarative rule names to factories. Rule names are never
// evaluated as code; dispatch goes through this static table only.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given rule name. An existing entry with
// the same name is replaced.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Lookup returns the factory for a rule name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Build constructs a rule from its name and parameter node. An unrecognized
// name yields an UnknownRuleError; parameter problems yield the factory's
// ConfigError.
func (r *Registry) Build(name string, params *yaml.Node) (Rule, error) {
	factory, ok := r.Lookup(name)
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	return factory(params)
}

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry is the global registry for built-in rules. Rules register
// themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
