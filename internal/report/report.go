// Package report formats CLI output for stylesheet resolution runs.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting. Lipgloss automatically
// degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file paths.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for failure messages.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleGreen is used for the success summary line.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for per-file detail.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render applies style to text when colors are enabled; otherwise the text
// passes through unmodified.
func Render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// UseColors decides whether styled output should be emitted.
func UseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if info, _ := os.Stdout.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// Reporter prints per-file results and a run summary.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// New returns a Reporter writing to w.
func New(w io.Writer, useColors, verbose bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, verbose: verbose}
}

// File reports one resolved stylesheet. Only shown in verbose mode.
func (r *Reporter) File(path string, constants int) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n",
		Render(StyleCyan, path, r.useColors),
		Render(StyleGray, fmt.Sprintf("(%d constants)", constants), r.useColors))
}

// Failure reports one stylesheet that could not be resolved.
func (r *Reporter) Failure(path string, err error) {
	fmt.Fprintf(r.w, "%s %s: %v\n",
		Render(StyleRed, "error", r.useColors), path, err)
}

// Summary reports the whole run.
func (r *Reporter) Summary(resolved, failed, skipped int) {
	line := fmt.Sprintf("Resolved %d stylesheets", resolved)
	if failed > 0 {
		line += fmt.Sprintf(", %d failed", failed)
	}
	if skipped > 0 {
		line += fmt.Sprintf(" (skipped %d ignored files)", skipped)
	}
	style := StyleGreen
	if failed > 0 {
		style = StyleRed
	}
	fmt.Fprintln(r.w, Render(style, line, r.useColors))
}
