package rules

import "github.com/yaklabco/cxform/pkg/transform"

// init registers the built-in rules with the default registry. Importing this
// package (usually blank-imported from main) makes every declarative rule
// name resolvable.
//
//nolint:gochecknoinits // Registration at import time is the intended pattern.
func init() {
	transform.DefaultRegistry.Register("NamespaceRename", NewNamespaceRename)
	transform.DefaultRegistry.Register("IncludeToQuotes", NewIncludeToQuotes)
	transform.DefaultRegistry.Register("TokenIdReplace", NewTokenIdReplace)
	transform.DefaultRegistry.Register("ReplaceTokens", NewReplaceTokens)
	transform.DefaultRegistry.Register("AddInNamespace", NewAddInNamespace)
	transform.DefaultRegistry.Register("SurroundTokens", NewSurroundTokens)
	transform.DefaultRegistry.Register("ApplyAndReparse", NewApplyAndReparse)
}
