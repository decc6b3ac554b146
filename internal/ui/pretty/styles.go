// Package pretty provides Lipgloss-based styled output for cxform's
// diagnostic dumps and transform summaries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token dump components.
	TokenIndex   lipgloss.Style
	TokenKind    lipgloss.Style
	TokenRange   lipgloss.Style
	TokenComment lipgloss.Style
	TokenKeyword lipgloss.Style
	TokenLiteral lipgloss.Style

	// AST dump components.
	NodeKind     lipgloss.Style
	NodeSpelling lipgloss.Style
	NodeLocation lipgloss.Style

	// Diff styles.
	DiffHeader  lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles.
	FilePath lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		TokenIndex:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TokenRange:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenComment: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TokenKeyword: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		TokenLiteral: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		NodeKind:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		NodeSpelling: lipgloss.NewStyle().Bold(true),
		NodeLocation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		DiffHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		FilePath: lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TokenIndex:   plain,
		TokenKind:    plain,
		TokenRange:   plain,
		TokenComment: plain,
		TokenKeyword: plain,
		TokenLiteral: plain,
		NodeKind:     plain,
		NodeSpelling: plain,
		NodeLocation: plain,
		DiffHeader:   plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		DiffContext:  plain,
		FilePath:     plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// ShouldColorize decides whether to emit color for the given mode
// ("auto", "always", "never") and writer.
func ShouldColorize(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
