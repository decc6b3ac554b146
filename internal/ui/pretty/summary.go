package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/cxform/pkg/edit"
	"github.com/yaklabco/cxform/pkg/runner"
)

// RenderDiff writes a unified diff with per-line styling.
func RenderDiff(w io.Writer, d *edit.Diff, styles *Styles) {
	if !d.HasChanges() {
		return
	}

	rendered := d.String()
	for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
		style := styles.DiffContext
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			style = styles.DiffHeader
		case strings.HasPrefix(line, "+"):
			style = styles.DiffAdd
		case strings.HasPrefix(line, "-"):
			style = styles.DiffRemove
		}
		fmt.Fprintln(w, style.Render(line))
	}
}

// RenderSummary writes per-file outcomes and the aggregate batch counters.
func RenderSummary(w io.Writer, result *runner.Result, styles *Styles) {
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			fmt.Fprintf(w, "%s %s: %v\n",
				styles.Failure.Render("✗"),
				styles.FilePath.Render(outcome.Input),
				outcome.Error,
			)
			continue
		}

		count := 0
		if outcome.Report != nil {
			count = outcome.Report.Replacements
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			styles.Success.Render("✓"),
			styles.FilePath.Render(outcome.Input),
			styles.Dim.Render("→"),
			styles.Dim.Render(fmt.Sprintf("%s (%d replacements)", outcome.Output, count)),
		)
	}

	stats := result.Stats
	line := fmt.Sprintf("%d file(s) processed, %d replacement(s) made",
		stats.FilesProcessed, stats.ReplacementsMade)
	if stats.FilesFailed > 0 {
		line += fmt.Sprintf(", %s", styles.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	fmt.Fprintln(w, styles.Bold.Render(line))
}
