package pretty

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/yaklabco/cxform/pkg/cppast"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 100

// RenderTokens writes the token stream as an aligned table: index, kind,
// byte range, spelling. Long spellings (block comments, raw strings) are
// truncated to the terminal width.
func RenderTokens(w io.Writer, tokens []cppast.Token, styles *Styles) {
	width := terminalWidth(w)

	for i, tok := range tokens {
		spelling := strconv.Quote(tok.Spelling)
		// Leave room for the fixed-width prefix columns.
		if maxSpelling := width - 34; maxSpelling > 10 && len(spelling) > maxSpelling {
			spelling = spelling[:maxSpelling-3] + `..."`
		}

		kindStyle := styles.TokenKind
		switch tok.Kind {
		case cppast.TokComment:
			kindStyle = styles.TokenComment
		case cppast.TokKeyword:
			kindStyle = styles.TokenKeyword
		case cppast.TokLiteral:
			kindStyle = styles.TokenLiteral
		}

		fmt.Fprintf(w, "%s %s %s %s\n",
			styles.TokenIndex.Render(fmt.Sprintf("%5d", i)),
			kindStyle.Render(fmt.Sprintf("%-8s", tok.Kind)),
			styles.TokenRange.Render(fmt.Sprintf("%-13s", tok.Range)),
			spelling,
		)
	}
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
