package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// RenderTree writes an indented dump of the AST: kind, spelling, and the
// line:column span resolved through the unit's line index.
func RenderTree(w io.Writer, root *cppast.Node, lines cppast.LineIndex, styles *Styles) {
	renderNode(w, root, lines, styles, 0)
}

func renderNode(w io.Writer, n *cppast.Node, lines cppast.LineIndex, styles *Styles, depth int) {
	startLine, startCol := lines.Position(n.Range.Start)
	endLine, endCol := lines.Position(n.Range.End)

	spelling := ""
	if n.Spelling != "" {
		spelling = " " + styles.NodeSpelling.Render(n.Spelling)
	}

	fmt.Fprintf(w, "%s%s%s %s\n",
		strings.Repeat("  ", depth),
		styles.NodeKind.Render(n.Kind.String()),
		spelling,
		styles.NodeLocation.Render(fmt.Sprintf("%d:%d-%d:%d", startLine, startCol, endLine, endCol)),
	)

	for _, child := range n.Children {
		renderNode(w, child, lines, styles, depth+1)
	}
}
