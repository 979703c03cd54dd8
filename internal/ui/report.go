package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/corpeningc/cmerge/internal/resolve"
)

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	resolvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	unresolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	detailStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderSummary formats the outcome of a resolution run for the terminal.
func RenderSummary(summary resolve.Summary, dryRun bool) string {
	var b strings.Builder

	title := "Resolution summary"
	if dryRun {
		title += " (dry run)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, outcome := range summary.Resolved {
		verb := "resolved"
		if dryRun {
			verb = "would resolve"
		}
		b.WriteString(resolvedStyle.Render(fmt.Sprintf("  ✓ %s", outcome.Path)))
		b.WriteString(detailStyle.Render(fmt.Sprintf(" (%s, %s)", outcome.Strategy, verb)))
		b.WriteString("\n")
	}

	for _, outcome := range summary.Unresolved {
		b.WriteString(unresolvedStyle.Render(fmt.Sprintf("  ✗ %s", outcome.Path)))
		b.WriteString(detailStyle.Render(fmt.Sprintf(" (%s, markers remain)", outcome.Strategy)))
		b.WriteString("\n")
	}

	if summary.SchemaResolved {
		b.WriteString(detailStyle.Render("  schema changed - generated code needs a rebuild"))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderNextSteps prints the post-merge checklist shown after a fully
// successful run.
func RenderNextSteps() string {
	lines := []string{
		"Next steps:",
		"  1. Review the resolved files",
		"  2. Run tests to ensure everything works",
		"  3. Complete the merge: git commit",
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}
