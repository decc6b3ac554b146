package cpplex

import (
	"github.com/yaklabco/cxform/pkg/cppast"
)

// builder assembles a shallow declaration tree from the token stream. It
// tracks namespace nesting precisely, including the nested single-child
// representation of `namespace A::B::C { }`, and classifies other top-level
// constructs coarsely. Bodies of classes and functions are skipped, not
// descended into.
type builder struct {
	path   string
	src    []byte
	tokens []cppast.Token

	// code holds indices into tokens with comments filtered out; the tree is
	// built over code tokens only.
	code []int
	pos  int

	// includes collects #include targets in source order.
	includes []string
}

func buildTree(path string, src []byte, tokens []cppast.Token) (*cppast.Node, []string) {
	b := &builder{path: path, src: src, tokens: tokens}
	for i, t := range tokens {
		if t.Kind != cppast.TokComment {
			b.code = append(b.code, i)
		}
	}

	root := &cppast.Node{
		Kind:  cppast.NodeTranslationUnit,
		File:  path,
		Range: cppast.ByteRange{Start: 0, End: len(src)},
	}
	root.Children = b.parseDecls(root, true)
	return root, b.includes
}

// tok returns the code token at builder position i, or a zero Token past the
// end.
func (b *builder) tok(i int) cppast.Token {
	if i < 0 || i >= len(b.code) {
		return cppast.Token{Kind: cppast.TokPunctuation}
	}
	return b.tokens[b.code[i]]
}

func (b *builder) done() bool {
	return b.pos >= len(b.code)
}

// parseDecls parses declarations until a closing brace (or end of input when
// topLevel). The closing brace is consumed by the caller.
func (b *builder) parseDecls(parent *cppast.Node, topLevel bool) []*cppast.Node {
	var nodes []*cppast.Node
	for !b.done() {
		t := b.tok(b.pos)
		if t.Is(cppast.TokPunctuation, "}") && !topLevel {
			return nodes
		}

		var node *cppast.Node
		switch {
		case t.Is(cppast.TokPunctuation, "#"):
			node = b.parseDirective()
		case t.Is(cppast.TokKeyword, "namespace"):
			node = b.parseNamespace()
		case t.Is(cppast.TokKeyword, "inline") && b.tok(b.pos+1).Is(cppast.TokKeyword, "namespace"):
			b.pos++
			node = b.parseNamespace()
			if node != nil {
				node.Range.Start = t.Range.Start
			}
		case t.Is(cppast.TokKeyword, "class") || t.Is(cppast.TokKeyword, "struct") ||
			t.Is(cppast.TokKeyword, "union") || t.Is(cppast.TokKeyword, "enum"):
			node = b.parseRecord()
		case t.Is(cppast.TokKeyword, "using") || t.Is(cppast.TokKeyword, "typedef"):
			node = b.parseSimple(cppast.NodeUsing)
		default:
			node = b.parseGeneric()
		}

		if node != nil {
			node.File = b.path
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// parseDirective consumes a preprocessor directive: every token on the same
// line as the '#'. Include targets are recorded.
func (b *builder) parseDirective() *cppast.Node {
	hash := b.tok(b.pos)
	line := lineOf(b.src, hash.Range.Start)
	node := &cppast.Node{Kind: cppast.NodeMacro, Range: hash.Range}

	b.pos++
	if !b.done() && b.tok(b.pos).Kind == cppast.TokIdentifier &&
		lineOf(b.src, b.tok(b.pos).Range.Start) == line {
		node.Spelling = b.tok(b.pos).Spelling
	}

	var lineTokens []cppast.Token
	for !b.done() && lineOf(b.src, b.tok(b.pos).Range.Start) == line {
		lineTokens = append(lineTokens, b.tok(b.pos))
		node.Range.End = b.tok(b.pos).Range.End
		b.pos++
	}

	if node.Spelling == "include" {
		if target := includeTarget(lineTokens); target != "" {
			b.includes = append(b.includes, target)
		}
	}
	return node
}

// includeTarget joins the spellings between <...> or strips the quotes of a
// "..." literal. lineTokens starts at the directive name.
func includeTarget(lineTokens []cppast.Token) string {
	for i, t := range lineTokens {
		if t.Is(cppast.TokPunctuation, "<") {
			target := ""
			for _, inner := range lineTokens[i+1:] {
				if inner.Is(cppast.TokPunctuation, ">") {
					return target
				}
				target += inner.Spelling
			}
			return ""
		}
		if t.Kind == cppast.TokLiteral && len(t.Spelling) >= 2 && t.Spelling[0] == '"' {
			return t.Spelling[1 : len(t.Spelling)-1]
		}
	}
	return ""
}

// parseNamespace consumes `namespace A::B::C { ... }` and returns the outer
// node of the nested chain. All nodes in the chain share the closing brace's
// end offset, which is what lets QualifiedName reassemble the compound name.
// Namespace aliases (`namespace X = Y;`) degrade to a generic declaration.
func (b *builder) parseNamespace() *cppast.Node {
	kw := b.tok(b.pos)
	b.pos++

	var parts []cppast.Token
	for !b.done() && b.tok(b.pos).Kind == cppast.TokIdentifier {
		parts = append(parts, b.tok(b.pos))
		b.pos++
		if b.tok(b.pos).Is(cppast.TokPunctuation, "::") {
			b.pos++
			continue
		}
		break
	}

	// Attributes and alias forms are out of scope for the shallow tree.
	if b.done() || !b.tok(b.pos).Is(cppast.TokPunctuation, "{") {
		b.skipToStatementEnd()
		return &cppast.Node{
			Kind:  cppast.NodeDecl,
			Range: cppast.ByteRange{Start: kw.Range.Start, End: b.lastEnd()},
		}
	}
	b.pos++ // '{'

	// Build the chain outer-first. An anonymous namespace has no parts and
	// yields a single node with an empty spelling.
	outer := &cppast.Node{
		Kind:  cppast.NodeNamespace,
		Range: cppast.ByteRange{Start: kw.Range.Start},
		File:  b.path,
	}
	if len(parts) > 0 {
		outer.Spelling = parts[0].Spelling
	}
	chain := []*cppast.Node{outer}
	for _, part := range parts[min(1, len(parts)):] {
		child := &cppast.Node{
			Kind:     cppast.NodeNamespace,
			Spelling: part.Spelling,
			Range:    cppast.ByteRange{Start: part.Range.Start},
			File:     b.path,
		}
		chain[len(chain)-1].Children = []*cppast.Node{child}
		chain = append(chain, child)
	}

	innermost := chain[len(chain)-1]
	innermost.Children = b.parseDecls(innermost, false)

	end := b.lastEnd()
	if !b.done() && b.tok(b.pos).Is(cppast.TokPunctuation, "}") {
		end = b.tok(b.pos).Range.End
		b.pos++
	}
	// Every node of the compound chain ends at the shared closing brace.
	for _, n := range chain {
		n.Range.End = end
	}
	return outer
}

// parseRecord consumes a class/struct/union/enum declaration or definition,
// skipping the body without descending.
func (b *builder) parseRecord() *cppast.Node {
	kw := b.tok(b.pos)
	kind := cppast.NodeClass
	switch kw.Spelling {
	case "struct":
		kind = cppast.NodeStruct
	case "union":
		kind = cppast.NodeUnion
	case "enum":
		kind = cppast.NodeEnum
	}
	node := &cppast.Node{Kind: kind, Range: cppast.ByteRange{Start: kw.Range.Start}}
	b.pos++

	// enum class / enum struct.
	if kind == cppast.NodeEnum &&
		(b.tok(b.pos).Is(cppast.TokKeyword, "class") || b.tok(b.pos).Is(cppast.TokKeyword, "struct")) {
		b.pos++
	}
	if !b.done() && b.tok(b.pos).Kind == cppast.TokIdentifier {
		node.Spelling = b.tok(b.pos).Spelling
	}

	b.skipToStatementEnd()
	node.Range.End = b.lastEnd()
	return node
}

// parseSimple consumes tokens through the terminating semicolon.
func (b *builder) parseSimple(kind cppast.NodeKind) *cppast.Node {
	start := b.tok(b.pos).Range.Start
	node := &cppast.Node{Kind: kind, Range: cppast.ByteRange{Start: start}}
	if b.tok(b.pos+1).Kind == cppast.TokIdentifier {
		node.Spelling = b.tok(b.pos + 1).Spelling
	}
	b.skipToStatementEnd()
	node.Range.End = b.lastEnd()
	return node
}

// parseGeneric consumes one top-level declaration it does not understand
// structurally: everything up to a depth-zero semicolon, or through a brace
// block (a function body or initializer). Declarations with a parameter list
// before their block classify as functions.
func (b *builder) parseGeneric() *cppast.Node {
	start := b.tok(b.pos).Range.Start
	sawParen := false
	var lastIdent string

	for !b.done() {
		t := b.tok(b.pos)
		switch {
		case t.Is(cppast.TokPunctuation, ";"):
			b.pos++
			kind := cppast.NodeDecl
			if sawParen {
				kind = cppast.NodeFunction
			}
			return &cppast.Node{
				Kind:     kind,
				Spelling: lastIdent,
				Range:    cppast.ByteRange{Start: start, End: b.lastEnd()},
			}
		case t.Is(cppast.TokPunctuation, "{"):
			b.skipBalanced("{", "}")
			// Trailing semicolon after an initializer block.
			if !b.done() && b.tok(b.pos).Is(cppast.TokPunctuation, ";") {
				b.pos++
			}
			kind := cppast.NodeDecl
			if sawParen {
				kind = cppast.NodeFunction
			}
			return &cppast.Node{
				Kind:     kind,
				Spelling: lastIdent,
				Range:    cppast.ByteRange{Start: start, End: b.lastEnd()},
			}
		case t.Is(cppast.TokPunctuation, "}"):
			// Unbalanced close: leave it for the caller.
			return &cppast.Node{
				Kind:  cppast.NodeDecl,
				Range: cppast.ByteRange{Start: start, End: b.lastEnd()},
			}
		case t.Is(cppast.TokPunctuation, "("):
			if !sawParen {
				sawParen = true
			}
			b.skipBalanced("(", ")")
		default:
			if t.Kind == cppast.TokIdentifier && !sawParen {
				lastIdent = t.Spelling
			}
			b.pos++
		}
	}
	return &cppast.Node{
		Kind:  cppast.NodeDecl,
		Range: cppast.ByteRange{Start: start, End: b.lastEnd()},
	}
}

// skipToStatementEnd advances past a depth-zero ';', consuming any brace
// blocks on the way.
func (b *builder) skipToStatementEnd() {
	for !b.done() {
		t := b.tok(b.pos)
		switch {
		case t.Is(cppast.TokPunctuation, ";"):
			b.pos++
			return
		case t.Is(cppast.TokPunctuation, "{"):
			b.skipBalanced("{", "}")
		case t.Is(cppast.TokPunctuation, "}"):
			return
		default:
			b.pos++
		}
	}
}

// skipBalanced consumes from an opening delimiter through its matching close.
func (b *builder) skipBalanced(open, close string) {
	depth := 0
	for !b.done() {
		t := b.tok(b.pos)
		b.pos++
		switch {
		case t.Is(cppast.TokPunctuation, open):
			depth++
		case t.Is(cppast.TokPunctuation, close):
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// lastEnd returns the end offset of the most recently consumed code token.
func (b *builder) lastEnd() int {
	if b.pos == 0 {
		return 0
	}
	return b.tok(b.pos - 1).Range.End
}

// lineOf computes the 1-based line of an offset by counting newlines. The
// builder only needs this for grouping directive tokens, where offsets are
// close together; precise position mapping lives in cppast.LineIndex.
func lineOf(src []byte, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
		}
	}
	return line
}
