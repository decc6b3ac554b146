package cppast

import "sort"

// LineIndex maps byte offsets to 1-based line and column positions.
// Columns count bytes, not runes, matching how indentation is measured when
// splicing text into a source file.
type LineIndex struct {
	// starts[i] is the byte offset where line i+1 begins.
	starts []int

	// contentLen is the length of the indexed content.
	contentLen int
}

// BuildLineIndex constructs a line index for content. Both LF and CRLF line
// endings are handled; the index only records line-start offsets.
func BuildLineIndex(content []byte) LineIndex {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return LineIndex{starts: starts, contentLen: len(content)}
}

// LineCount returns the number of lines, counting a trailing newline as
// starting one final empty line.
func (ix LineIndex) LineCount() int {
	return len(ix.starts)
}

// Position converts a byte offset to 1-based (line, column).
// Offsets at or past the end of content map to the final line.
// Returns (0, 0) for negative offsets.
func (ix LineIndex) Position(offset int) (line, column int) {
	if offset < 0 || len(ix.starts) == 0 {
		return 0, 0
	}
	// First line whose start is after the offset; the offset lives on the
	// line before it.
	idx := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	lineIdx := idx - 1
	return lineIdx + 1, offset - ix.starts[lineIdx] + 1
}

// Line returns the 1-based line number for a byte offset.
func (ix LineIndex) Line(offset int) int {
	line, _ := ix.Position(offset)
	return line
}

// Column returns the 1-based column for a byte offset.
func (ix LineIndex) Column(offset int) int {
	_, col := ix.Position(offset)
	return col
}
