// Package cpplex is the built-in parser provider: a C++ lexer plus a shallow
// declaration-tree builder. It implements cppast.Provider without cgo or an
// external toolchain, producing exactly the token and namespace shapes the
// transformation rules match against.
//
// The tree is deliberately shallow: namespace nesting is modeled precisely
// (including compound `namespace A::B::C` chains), other declarations are
// classified coarsely and their bodies skipped. Semantic analysis is a
// non-goal; rules match lexically.
package cpplex

import (
	"fmt"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// Parser implements cppast.Provider.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse lexes and parses content as the file at path. Compiler arguments are
// accepted for interface compatibility; the lexical provider has no use for
// them beyond recording, since it performs no preprocessing or semantic
// analysis.
func (p *Parser) Parse(path string, content []byte, _ []string) (*cppast.ParseResult, error) {
	tokens, err := Lex(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	root, includes := buildTree(path, content, tokens)

	return &cppast.ParseResult{
		Tokens:   tokens,
		Root:     root,
		Includes: append([]string{path}, includes...),
	}, nil
}
