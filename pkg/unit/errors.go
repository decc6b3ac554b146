package unit

import (
	"fmt"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// InvalidRangeError reports a replacement whose range is empty or inverted.
// Replacements proper must cover at least one byte; insertions go through
// AddInsertion.
type InvalidRangeError struct {
	Range cppast.ByteRange
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid replacement range %s: start must precede end", e.Range)
}

// ForeignRangeError reports a replacement that does not belong to the unit's
// primary file, either because its offsets fall outside the buffer or because
// it was derived from an included header.
type ForeignRangeError struct {
	Range cppast.ByteRange
	Path  string

	// File is the offending source file, when known.
	File string
}

func (e *ForeignRangeError) Error() string {
	if e.File != "" && e.File != e.Path {
		return fmt.Sprintf("replacement range %s belongs to %s, not primary file %s", e.Range, e.File, e.Path)
	}
	return fmt.Sprintf("replacement range %s falls outside primary file %s", e.Range, e.Path)
}
