// Package edit provides the deferred byte-range replacement model and the
// compositor that materializes a set of replacements into rewritten content.
// All edits address the original buffer of one parse generation; text outside
// the replaced spans is copied through byte-identical.
package edit

// Replacement is a single deferred edit instruction: replace the bytes in
// [StartOffset, EndOffset) with NewText. A zero-width range is an insertion.
type Replacement struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Len returns the number of original bytes the replacement covers.
func (r Replacement) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsInsertion returns true for zero-width replacements.
func (r Replacement) IsInsertion() bool {
	return r.StartOffset == r.EndOffset
}

// Replace constructs a replacement for the bytes [start, end).
func Replace(start, end int, newText string) Replacement {
	return Replacement{StartOffset: start, EndOffset: end, NewText: newText}
}

// Insert constructs a zero-width replacement at offset.
func Insert(offset int, text string) Replacement {
	return Replacement{StartOffset: offset, EndOffset: offset, NewText: text}
}
