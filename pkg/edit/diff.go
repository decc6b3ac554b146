package edit

import (
	"fmt"
	"strings"
)

// DiffLineKind indicates the type of a diff line.
type DiffLineKind int

const (
	// DiffContext is an unchanged line shown around changes.
	DiffContext DiffLineKind = iota

	// DiffAdd is a line present only in the modified content.
	DiffAdd

	// DiffRemove is a line present only in the original content.
	DiffRemove
)

// DiffLine is a single line of a unified diff, without its prefix character.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// Diff is a unified diff between the original and materialized content of
// one file, used for verbose transform output.
type Diff struct {
	Path  string
	Lines []DiffLine

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// GenerateDiff computes a line-based unified diff between original and
// modified content. Returns nil when the contents are identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)

	d := &Diff{Path: path}
	for _, op := range ops {
		switch op.Kind {
		case DiffAdd:
			d.Additions++
		case DiffRemove:
			d.Deletions++
		}
	}
	if d.Additions == 0 && d.Deletions == 0 {
		return nil
	}
	d.Lines = ops
	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && (d.Additions > 0 || d.Deletions > 0)
}

// String renders the diff in unified format with file headers and trimmed
// context.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range groupHunks(d.Lines) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.origStart, hunk.origCount, hunk.modStart, hunk.modCount)
		for _, line := range hunk.lines {
			switch line.Kind {
			case DiffContext:
				fmt.Fprintf(&b, " %s\n", line.Content)
			case DiffAdd:
				fmt.Fprintf(&b, "+%s\n", line.Content)
			case DiffRemove:
				fmt.Fprintf(&b, "-%s\n", line.Content)
			}
		}
	}
	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the full op sequence (context, add, remove) from an LCS of
// the two line slices.
func diffOps(orig, mod []string) []DiffLine {
	// LCS table.
	n, m := len(orig), len(mod)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []DiffLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, DiffLine{Kind: DiffContext, Content: orig[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, DiffLine{Kind: DiffRemove, Content: orig[i]})
			i++
		default:
			ops = append(ops, DiffLine{Kind: DiffAdd, Content: mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, DiffLine{Kind: DiffRemove, Content: orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, DiffLine{Kind: DiffAdd, Content: mod[j]})
	}
	return ops
}

// hunk is a group of consecutive ops rendered under one @@ header.
type hunk struct {
	origStart, origCount int
	modStart, modCount   int
	lines                []DiffLine
}

// groupHunks trims long stretches of context down to contextLines around each
// change and assigns hunk headers.
func groupHunks(ops []DiffLine) []hunk {
	// Mark which ops to keep: every change plus surrounding context.
	keep := make([]bool, len(ops))
	for i, op := range ops {
		if op.Kind == DiffContext {
			continue
		}
		lo := max(0, i-contextLines)
		hi := min(len(ops), i+contextLines+1)
		for k := lo; k < hi; k++ {
			keep[k] = true
		}
	}

	var hunks []hunk
	origLine, modLine := 1, 1
	var cur *hunk

	for i, op := range ops {
		if keep[i] {
			if cur == nil {
				hunks = append(hunks, hunk{origStart: origLine, modStart: modLine})
				cur = &hunks[len(hunks)-1]
			}
			cur.lines = append(cur.lines, op)
			switch op.Kind {
			case DiffContext:
				cur.origCount++
				cur.modCount++
			case DiffRemove:
				cur.origCount++
			case DiffAdd:
				cur.modCount++
			}
		} else {
			cur = nil
		}

		switch op.Kind {
		case DiffContext:
			origLine++
			modLine++
		case DiffRemove:
			origLine++
		case DiffAdd:
			modLine++
		}
	}
	return hunks
}
