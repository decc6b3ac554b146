// Package cppast provides the token and AST representation the
// transformation engine operates on: byte-extent tokens, a shallow
// declaration tree, lexical token matching, and pre-order traversal with
// prune/halt control.
//
// The package does not parse anything itself. Parsing is delegated to a
// Provider, treated as a black box that turns source text into this
// representation and can be re-invoked on updated text.
package cppast

// ParseResult is the parser-supplied view of one translation unit.
// All three parts belong to a single parse generation: tokens and nodes are
// immutable until the unit is reparsed.
type ParseResult struct {
	// Tokens is the ordered token stream of the primary file.
	Tokens []Token

	// Root is the translation-unit node at the top of the AST.
	Root *Node

	// Includes lists the transitively included file paths. The first entry is
	// always the unit's own file.
	Includes []string
}

// Provider turns C++ source text into a token/AST view.
//
// Implementations must be re-invocable on updated text: the engine reparses a
// unit after materializing pending edits when a later rule needs to observe
// an earlier rule's output.
type Provider interface {
	// Parse lexes and parses content as the file at path, with the given
	// compiler arguments. A provider that cannot produce a token/AST view
	// returns an error; the engine propagates it without retrying.
	Parse(path string, content []byte, args []string) (*ParseResult, error)
}
