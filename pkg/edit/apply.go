package edit

import "bytes"

// Apply splices a sorted, non-overlapping replacement set into content and
// returns the rewritten buffer. Unreplaced spans are copied through
// unchanged. Callers are expected to run Validate, SortStable and
// FilterOverlaps first.
func Apply(content []byte, replacements []Replacement) []byte {
	if len(replacements) == 0 {
		return content
	}

	delta := 0
	for _, r := range replacements {
		delta += len(r.NewText) - r.Len()
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, r := range replacements {
		out.Write(content[cursor:r.StartOffset])
		out.WriteString(r.NewText)
		cursor = r.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
