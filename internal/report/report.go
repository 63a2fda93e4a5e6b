// Package report renders validation results for the terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"bennypowers.dev/dtx/internal/importer"
	"bennypowers.dev/dtx/internal/validator"
)

// Terminal styles for consistent output formatting. Lipgloss
// automatically degrades colors based on terminal capabilities.
var (
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleInfo    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Reporter writes human-readable validation reports.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter. Colors are applied only when
// enabled.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors reports whether color output is appropriate:
// an explicit flag, CI color variables, or a TTY.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

func (r *Reporter) render(style lipgloss.Style, text string) string {
	if !r.useColors {
		return text
	}
	return style.Render(text)
}

// PrintResult writes the full validation report: every issue grouped
// by severity, then a one-line summary.
func (r *Reporter) PrintResult(result *validator.Result) {
	r.printIssues(r.render(styleError, "Errors"), result.Errors)
	r.printIssues(r.render(styleWarning, "Warnings"), result.Warnings)
	r.printIssues(r.render(styleInfo, "Info"), result.Info)

	if result.Valid && result.IssueCount() == 0 {
		fmt.Fprintf(r.w, "%s %d token(s), no issues\n", r.render(styleSuccess, "✓"), result.TokenCount)
		return
	}
	fmt.Fprintf(r.w, "%d token(s): %d error(s), %d warning(s), %d info\n",
		result.TokenCount, len(result.Errors), len(result.Warnings), len(result.Info))
}

func (r *Reporter) printIssues(header string, issues []validator.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(r.w, "%s\n", header)
	for _, issue := range issues {
		fmt.Fprintf(r.w, "  [%s] %s\n", issue.Code, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(r.w, "  %s\n", r.render(styleHint, "hint: "+issue.Suggestion))
		}
	}
	fmt.Fprintln(r.w)
}

// PrintImportWarnings writes row-level import warnings, the lighter
// channel separate from validator issues.
func (r *Reporter) PrintImportWarnings(warnings []importer.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(r.w, "%s\n", r.render(styleWarning, "Import warnings"))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  line %d: %s\n", w.Line, w.Message)
	}
	fmt.Fprintln(r.w)
}
