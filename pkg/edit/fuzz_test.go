package edit_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/cxform/pkg/edit"
)

func FuzzApply(f *testing.F) {
	f.Add([]byte(""), 0, 0, "")
	f.Add([]byte("namespace a {}"), 10, 11, "b")
	f.Add([]byte("hello world"), 0, 5, "goodbye")
	f.Add([]byte("abc"), 1, 2, "")
	f.Add([]byte("abc"), 3, 3, "def")
	f.Add([]byte("line1\nline2\n"), 6, 11, "LINE2")

	f.Fuzz(func(t *testing.T, content []byte, start, end int, text string) {
		reps := []edit.Replacement{edit.Replace(start, end, text)}
		if err := edit.Validate(reps, len(content)); err != nil {
			return
		}

		got := edit.Apply(content, reps)

		// Length accounting: the result grows by the replacement text and
		// shrinks by the covered span.
		wantLen := len(content) - (end - start) + len(text)
		if len(got) != wantLen {
			t.Errorf("Apply() length = %d, want %d", len(got), wantLen)
		}

		// Bytes outside the replaced span survive unchanged.
		if !bytes.Equal(got[:start], content[:start]) {
			t.Error("prefix before the replacement was modified")
		}
		if !bytes.Equal(got[start+len(text):], content[end:]) {
			t.Error("suffix after the replacement was modified")
		}
		if string(got[start:start+len(text)]) != text {
			t.Error("replacement text missing from output")
		}
	})
}

func FuzzFilterOverlaps(f *testing.F) {
	f.Add(0, 2, 1, 3)
	f.Add(0, 1, 1, 2)
	f.Add(5, 5, 5, 5)
	f.Add(3, 7, 0, 2)

	f.Fuzz(func(t *testing.T, aStart, aEnd, bStart, bEnd int) {
		reps := []edit.Replacement{
			edit.Replace(aStart, aEnd, "x"),
			edit.Replace(bStart, bEnd, "y"),
		}
		for _, r := range reps {
			if r.StartOffset < 0 || r.EndOffset < r.StartOffset {
				return
			}
		}

		edit.SortStable(reps)
		accepted, dropped := edit.FilterOverlaps(reps)

		if len(accepted)+len(dropped) != len(reps) {
			t.Fatalf("accepted %d + dropped %d != %d replacements",
				len(accepted), len(dropped), len(reps))
		}

		// Accepted replacements never overlap: each must begin at or after
		// the previous one's end.
		for i := 1; i < len(accepted); i++ {
			if accepted[i].StartOffset < accepted[i-1].EndOffset {
				t.Errorf("accepted[%d] starts at %d, inside accepted[%d] ending at %d",
					i, accepted[i].StartOffset, i-1, accepted[i-1].EndOffset)
			}
		}
	})
}
