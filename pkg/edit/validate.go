package edit

import (
	"fmt"
	"sort"
)

// ValidationError describes a replacement whose range does not fit the
// content it targets.
type ValidationError struct {
	Replacement Replacement
	Message     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid replacement [%d:%d): %s",
		e.Replacement.StartOffset, e.Replacement.EndOffset, e.Message)
}

// Validate checks that every replacement has a well-formed range within
// content of the given length. Returns nil or the first error found.
func Validate(replacements []Replacement, contentLen int) error {
	for _, r := range replacements {
		if r.StartOffset < 0 {
			return &ValidationError{Replacement: r, Message: "start offset is negative"}
		}
		if r.EndOffset < r.StartOffset {
			return &ValidationError{Replacement: r, Message: "end offset is before start offset"}
		}
		if r.EndOffset > contentLen {
			return &ValidationError{
				Replacement: r,
				Message:     fmt.Sprintf("end offset %d exceeds content length %d", r.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortStable orders replacements by start offset. The sort is stable, so two
// replacements starting at the same offset keep their declaration order;
// combined with the greedy overlap filter this yields the earliest-starting,
// then earliest-declared replacement winning.
func SortStable(replacements []Replacement) {
	sort.SliceStable(replacements, func(i, j int) bool {
		return replacements[i].StartOffset < replacements[j].StartOffset
	})
}

// FilterOverlaps splits a sorted replacement slice into the accepted
// non-overlapping prefix-greedy set and the dropped remainder. A replacement
// is dropped when it starts before the previous accepted one ends. Zero-width
// insertions at the exact end of an accepted replacement are kept.
//
// Replacements must be sorted with SortStable first.
func FilterOverlaps(replacements []Replacement) (accepted, dropped []Replacement) {
	if len(replacements) == 0 {
		return nil, nil
	}

	accepted = make([]Replacement, 0, len(replacements))
	accepted = append(accepted, replacements[0])
	cursor := replacements[0].EndOffset

	for _, r := range replacements[1:] {
		if r.StartOffset < cursor {
			dropped = append(dropped, r)
			continue
		}
		accepted = append(accepted, r)
		cursor = r.EndOffset
	}
	return accepted, dropped
}
