package cpplex

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// LexError reports a malformed construct the lexer cannot tokenize past.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Message)
}

// lexer scans C++ source bytes into cppast tokens. Whitespace separates
// tokens and is not itself represented; comments are emitted as tokens so
// comment-aware rules can see them.
type lexer struct {
	src []byte
	pos int
}

// Lex tokenizes the whole buffer. Preprocessor directives are not treated
// specially: '#' lexes as punctuation and directive names as identifiers,
// which is exactly the shape the token-scanning rules expect.
func Lex(src []byte) ([]cppast.Token, error) {
	lx := &lexer{src: src}
	var tokens []cppast.Token
	for {
		tok, ok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next scans one token. ok is false at end of input.
func (lx *lexer) next() (tok cppast.Token, ok bool, err error) {
	lx.skipWhitespace()
	if lx.pos >= len(lx.src) {
		return cppast.Token{}, false, nil
	}

	start := lx.pos
	c := lx.src[lx.pos]

	switch {
	case c == '/' && lx.peek(1) == '/':
		lx.scanLineComment()
		return lx.emit(cppast.TokComment, start), true, nil

	case c == '/' && lx.peek(1) == '*':
		if err := lx.scanBlockComment(); err != nil {
			return cppast.Token{}, false, err
		}
		return lx.emit(cppast.TokComment, start), true, nil

	case isIdentStart(c):
		tok, err := lx.scanIdentifier(start)
		if err != nil {
			return cppast.Token{}, false, err
		}
		return tok, true, nil

	case c >= '0' && c <= '9':
		lx.scanNumber()
		return lx.emit(cppast.TokLiteral, start), true, nil

	case c == '"':
		if err := lx.scanString(); err != nil {
			return cppast.Token{}, false, err
		}
		return lx.emit(cppast.TokLiteral, start), true, nil

	case c == '\'':
		if err := lx.scanChar(); err != nil {
			return cppast.Token{}, false, err
		}
		return lx.emit(cppast.TokLiteral, start), true, nil

	case c == '.' && lx.peek(1) >= '0' && lx.peek(1) <= '9':
		lx.pos++
		lx.scanNumber()
		return lx.emit(cppast.TokLiteral, start), true, nil

	default:
		return lx.scanPunctuator(start)
	}
}

func (lx *lexer) emit(kind cppast.TokenKind, start int) cppast.Token {
	return cppast.Token{
		Kind:     kind,
		Spelling: string(lx.src[start:lx.pos]),
		Range:    cppast.ByteRange{Start: start, End: lx.pos},
	}
}

func (lx *lexer) peek(ahead int) byte {
	if lx.pos+ahead >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+ahead]
}

func (lx *lexer) skipWhitespace() {
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.pos++
		case '\\':
			// Line continuation.
			if lx.peek(1) == '\n' {
				lx.pos += 2
			} else if lx.peek(1) == '\r' && lx.peek(2) == '\n' {
				lx.pos += 3
			} else {
				return
			}
		default:
			return
		}
	}
}

func (lx *lexer) scanLineComment() {
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
		lx.pos++
	}
	// Keep a trailing carriage return out of the spelling; the whitespace
	// skipper picks it up on the next scan.
	if lx.pos > 0 && lx.src[lx.pos-1] == '\r' {
		lx.pos--
	}
}

func (lx *lexer) scanBlockComment() error {
	start := lx.pos
	lx.pos += 2
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.peek(1) == '/' {
			lx.pos += 2
			return nil
		}
		lx.pos++
	}
	return &LexError{Offset: start, Message: "unterminated block comment"}
}

func (lx *lexer) scanIdentifier(start int) (cppast.Token, error) {
	for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
		lx.pos++
	}
	spelling := string(lx.src[start:lx.pos])

	// String and character literal prefixes (L"...", u8'...', R"(...)").
	// A malformed literal after a prefix is still a lex error, not an
	// identifier followed by garbage.
	if lx.pos < len(lx.src) && isLiteralPrefix(spelling) {
		switch lx.src[lx.pos] {
		case '"':
			var err error
			if strings.HasSuffix(spelling, "R") {
				err = lx.scanRawString()
			} else {
				err = lx.scanString()
			}
			if err != nil {
				return cppast.Token{}, err
			}
			return lx.emit(cppast.TokLiteral, start), nil
		case '\'':
			if err := lx.scanChar(); err != nil {
				return cppast.Token{}, err
			}
			return lx.emit(cppast.TokLiteral, start), nil
		}
	}

	kind := cppast.TokIdentifier
	if cppKeywords[spelling] {
		kind = cppast.TokKeyword
	}
	return cppast.Token{
		Kind:     kind,
		Spelling: spelling,
		Range:    cppast.ByteRange{Start: start, End: lx.pos},
	}, nil
}

func isLiteralPrefix(s string) bool {
	switch s {
	case "L", "u", "U", "u8", "R", "LR", "uR", "UR", "u8R":
		return true
	}
	return false
}

// scanNumber consumes a preprocessing-number: digits, digit separators,
// radix/exponent letters and a sign after an exponent letter. This accepts a
// superset of valid C++ numeric literals, which is fine for lexical matching.
func (lx *lexer) scanNumber() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case isIdentPart(c) || c == '.' || c == '\'':
			lx.pos++
		case (c == '+' || c == '-') && isExponentChar(lx.src[lx.pos-1]):
			lx.pos++
		default:
			return
		}
	}
}

func isExponentChar(c byte) bool {
	return c == 'e' || c == 'E' || c == 'p' || c == 'P'
}

func (lx *lexer) scanString() error {
	start := lx.pos
	lx.pos++ // opening quote
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
		case '"':
			lx.pos++
			return nil
		case '\n':
			return &LexError{Offset: start, Message: "unterminated string literal"}
		default:
			lx.pos++
		}
	}
	return &LexError{Offset: start, Message: "unterminated string literal"}
}

// scanRawString consumes R"delim( ... )delim" with the cursor on the opening
// quote.
func (lx *lexer) scanRawString() error {
	start := lx.pos
	lx.pos++ // opening quote
	delimStart := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '(' {
		lx.pos++
	}
	if lx.pos >= len(lx.src) {
		return &LexError{Offset: start, Message: "unterminated raw string literal"}
	}
	closer := ")" + string(lx.src[delimStart:lx.pos]) + `"`
	lx.pos++
	idx := strings.Index(string(lx.src[lx.pos:]), closer)
	if idx < 0 {
		return &LexError{Offset: start, Message: "unterminated raw string literal"}
	}
	lx.pos += idx + len(closer)
	return nil
}

func (lx *lexer) scanChar() error {
	start := lx.pos
	lx.pos++ // opening quote
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
		case '\'':
			lx.pos++
			return nil
		case '\n':
			return &LexError{Offset: start, Message: "unterminated character literal"}
		default:
			lx.pos++
		}
	}
	return &LexError{Offset: start, Message: "unterminated character literal"}
}

// scanPunctuator applies maximal munch over the punctuator tables.
func (lx *lexer) scanPunctuator(start int) (cppast.Token, bool, error) {
	rest := lx.src[lx.pos:]
	for _, group := range punctuators {
		for _, p := range group {
			if len(rest) >= len(p) && string(rest[:len(p)]) == p {
				lx.pos += len(p)
				return lx.emit(cppast.TokPunctuation, start), true, nil
			}
		}
	}
	if singlePunct[rest[0]] {
		lx.pos++
		return lx.emit(cppast.TokPunctuation, start), true, nil
	}
	return cppast.Token{}, false, &LexError{
		Offset:  lx.pos,
		Message: fmt.Sprintf("unexpected character %q", rest[0]),
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
