// Package unit implements the translation unit: the original source buffer,
// the parser-supplied token/AST view for the current parse generation, and
// the set of pending replacements. Rules append replacements; the unit
// materializes them once at save time, or mid-pipeline when a reparse is
// requested.
package unit

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cxform/pkg/cppast"
	"github.com/yaklabco/cxform/pkg/edit"
	"github.com/yaklabco/cxform/pkg/fsutil"
)

// Unit is one C++ translation unit under transformation.
//
// Tokens, Root and Lines belong to the current parse generation and must be
// treated as read-only; Content is the buffer all pending replacements
// address. ApplyAndReparse starts a new generation.
type Unit struct {
	// Path is the primary file's path.
	Path string

	// Content is the original buffer of the current parse generation.
	Content []byte

	// Args are the compiler arguments handed to the provider.
	Args []string

	// Tokens is the ordered token stream of the primary file.
	Tokens []cppast.Token

	// Root is the translation-unit node.
	Root *cppast.Node

	// Includes lists included file paths; the first entry is Path itself.
	Includes []string

	// Lines maps byte offsets to line/column positions in Content.
	Lines cppast.LineIndex

	// Logger receives overlap warnings during materialization.
	Logger *log.Logger

	provider cppast.Provider
	pending  []edit.Replacement

	// generation counts reparses, for diagnostics.
	generation int
}

// New reads the file at path and parses it with the given provider and
// compiler arguments. Parse failures propagate; nothing is retried.
func New(provider cppast.Provider, path string, args []string) (*Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewFromContent(provider, path, content, args)
}

// NewFromContent builds a unit from in-memory content, parsing it as the file
// at path.
func NewFromContent(provider cppast.Provider, path string, content []byte, args []string) (*Unit, error) {
	u := &Unit{
		Path:     path,
		Content:  content,
		Args:     args,
		Logger:   log.Default(),
		provider: provider,
	}
	if err := u.parse(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Unit) parse() error {
	result, err := u.provider.Parse(u.Path, u.Content, u.Args)
	if err != nil {
		return err
	}
	u.Tokens = result.Tokens
	u.Root = result.Root
	u.Includes = result.Includes
	u.Lines = cppast.BuildLineIndex(u.Content)
	return nil
}

// Generation returns the number of completed reparses.
func (u *Unit) Generation() int {
	return u.generation
}

// Pending returns the number of replacements waiting to be materialized.
func (u *Unit) Pending() int {
	return len(u.pending)
}

// AddReplacement appends a pending replacement for the bytes covered by r.
// The range must be non-empty and lie within the unit's buffer; use
// AddInsertion for zero-width edits.
func (u *Unit) AddReplacement(r cppast.ByteRange, text string) error {
	if r.Start >= r.End {
		return &InvalidRangeError{Range: r}
	}
	if r.Start < 0 || r.End > len(u.Content) {
		return &ForeignRangeError{Range: r, Path: u.Path}
	}
	u.pending = append(u.pending, edit.Replace(r.Start, r.End, text))
	return nil
}

// AddReplacementIn is AddReplacement with an explicit source file: ranges
// taken from AST nodes of included headers are rejected rather than silently
// rewriting unrelated offsets of the primary file.
func (u *Unit) AddReplacementIn(file string, r cppast.ByteRange, text string) error {
	if file != u.Path {
		return &ForeignRangeError{Range: r, Path: u.Path, File: file}
	}
	return u.AddReplacement(r, text)
}

// AddInsertion appends a zero-width replacement at offset.
func (u *Unit) AddInsertion(offset int, text string) error {
	if offset < 0 || offset > len(u.Content) {
		return &ForeignRangeError{Range: cppast.ByteRange{Start: offset, End: offset}, Path: u.Path}
	}
	u.pending = append(u.pending, edit.Insert(offset, text))
	return nil
}

// TokensIn returns the sub-slice of the unit's tokens lying entirely within r.
func (u *Unit) TokensIn(r cppast.ByteRange) []cppast.Token {
	lo := 0
	for lo < len(u.Tokens) && u.Tokens[lo].Range.Start < r.Start {
		lo++
	}
	hi := lo
	for hi < len(u.Tokens) && u.Tokens[hi].Range.End <= r.End {
		hi++
	}
	return u.Tokens[lo:hi]
}

// TokenAfter returns the first token starting at or after offset, or a false
// second value when no such token exists.
func (u *Unit) TokenAfter(offset int) (cppast.Token, bool) {
	for _, t := range u.Tokens {
		if t.Range.Start >= offset {
			return t, true
		}
	}
	return cppast.Token{}, false
}

// Materialize applies the pending replacements to the original buffer and
// returns the rewritten content. Overlapping replacements are dropped with a
// warning: after a stable sort by start offset, the earliest-starting,
// earliest-declared replacement wins. The pending list is left untouched.
func (u *Unit) Materialize() []byte {
	if len(u.pending) == 0 {
		return u.Content
	}

	sorted := make([]edit.Replacement, len(u.pending))
	copy(sorted, u.pending)
	edit.SortStable(sorted)

	accepted, dropped := edit.FilterOverlaps(sorted)
	for _, r := range dropped {
		u.Logger.Warn("overlapping replacements, dropping later edit",
			"path", u.Path,
			"range", fmt.Sprintf("[%d:%d)", r.StartOffset, r.EndOffset),
			"text", r.NewText,
		)
	}

	return edit.Apply(u.Content, accepted)
}

// ApplyAndReparse materializes the pending replacements, makes the result the
// unit's new original buffer, and reparses it. This is the explicit
// synchronization point for pipelines in which a later rule must observe an
// earlier rule's edits.
func (u *Unit) ApplyAndReparse() error {
	u.Content = u.Materialize()
	u.pending = nil
	if err := u.parse(); err != nil {
		return fmt.Errorf("reparse %s: %w", u.Path, err)
	}
	u.generation++
	return nil
}

// Save materializes any pending replacements and writes the final text to
// destination atomically.
func (u *Unit) Save(ctx context.Context, destination string) error {
	content := u.Materialize()
	if err := fsutil.WriteAtomic(ctx, destination, content, 0); err != nil {
		return fmt.Errorf("save %s: %w", destination, err)
	}
	return nil
}
