package cppast

import "fmt"

// ByteRange is a half-open [Start, End) byte-offset span within one file's
// text buffer.
type ByteRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the range in bytes.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r ByteRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the offset falls within the range.
func (r ByteRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Within returns true if r lies entirely inside outer.
func (r ByteRange) Within(outer ByteRange) bool {
	return r.Start >= outer.Start && r.End <= outer.End
}

// Text returns the bytes covered by the range, or nil if the range does not
// fit the content.
func (r ByteRange) Text(content []byte) []byte {
	if r.Start < 0 || r.End > len(content) || r.Start > r.End {
		return nil
	}
	return content[r.Start:r.End]
}

// String renders the range as "[start:end)".
func (r ByteRange) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}
