package cppast

// TokenKind classifies a token in the C++ source.
type TokenKind uint8

// Token kinds mirror a C/C++ lexer's coarse classification. Unlike a
// formatter's token stream, these do not cover every byte: whitespace between
// tokens is not represented.
const (
	TokIdentifier TokenKind = iota
	TokKeyword
	TokPunctuation
	TokLiteral
	TokComment
)

// Token is a single lexed token with its source extent.
// Tokens are produced by a Provider and are immutable for the lifetime of one
// parse generation.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind

	// Spelling is the exact source text of the token.
	Spelling string

	// Range is the byte extent of the token in the primary file.
	Range ByteRange
}

// String returns a short, stable name for the kind, used in dumps and rule
// configuration ("punct", "kwd", "lit", "comment", "ident").
func (k TokenKind) String() string {
	switch k {
	case TokIdentifier:
		return "ident"
	case TokKeyword:
		return "kwd"
	case TokPunctuation:
		return "punct"
	case TokLiteral:
		return "lit"
	case TokComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Is reports whether the token has the given kind and spelling.
func (t Token) Is(kind TokenKind, spelling string) bool {
	return t.Kind == kind && t.Spelling == spelling
}

// NotFound is the sentinel index returned by FindToken and FindTokens when no
// match exists.
const NotFound = -1

// TokenMatch is one (kind, spelling) element of a token pattern.
type TokenMatch struct {
	Kind     TokenKind
	Spelling string
}

// TokenPattern is an ordered, gap-free sequence of token matches.
type TokenPattern []TokenMatch

// FindToken returns the first index >= start whose token equals
// (kind, spelling), or NotFound.
func FindToken(kind TokenKind, spelling string, tokens []Token, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(tokens); i++ {
		if tokens[i].Is(kind, spelling) {
			return i
		}
	}
	return NotFound
}

// FindTokens returns the first index >= start where the contiguous run of
// tokens equals pattern exactly, in order, with no gaps, or NotFound.
// Matching is purely lexical: no scope or type resolution, and whitespace
// between tokens is irrelevant.
func FindTokens(pattern TokenPattern, tokens []Token, start int) int {
	if len(pattern) == 0 {
		return NotFound
	}
	if start < 0 {
		start = 0
	}
	for i := start; i <= len(tokens)-len(pattern); i++ {
		matched := true
		for j, want := range pattern {
			if !tokens[i+j].Is(want.Kind, want.Spelling) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return NotFound
}
