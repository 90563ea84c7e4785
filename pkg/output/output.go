// Package output renders workflow results for the terminal.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/diststage/diststage/pkg/workflow"
)

// Styles used across the summaries.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Renderer writes styled run summaries. Styling is dropped when stdout is
// not a terminal.
type Renderer struct {
	color bool
}

// NewRenderer detects terminal capabilities for stdout.
func NewRenderer() *Renderer {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	hasColor := termenv.DefaultOutput().Profile != termenv.Ascii
	return &Renderer{color: isTTY && hasColor}
}

// StageSummary renders the result of the staging workflow.
func (r *Renderer) StageSummary(result *workflow.StageResult) string {
	if result.Skipped() {
		return r.style(mutedStyle, result.Skip)
	}

	var b strings.Builder
	if result.DryRun {
		b.WriteString(r.style(warningStyle, "dry run: no files were added or committed"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("would have committed to: %s\n", r.style(pathStyle, result.StagingURL)))
	} else {
		b.WriteString(r.style(successStyle, fmt.Sprintf("committed revision %s to %s", result.Revision, result.StagingURL)))
		b.WriteString("\n")
	}
	b.WriteString(r.style(titleStyle, result.Message))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d files staged:\n", len(result.FilesToCommit)))
	for _, file := range result.FilesToCommit {
		b.WriteString("  " + r.style(pathStyle, file) + "\n")
	}
	return b.String()
}

// PromoteSummary renders the result of the promotion workflow.
func (r *Renderer) PromoteSummary(result *workflow.PromoteResult) string {
	if result.Skipped() {
		return r.style(mutedStyle, result.Skip)
	}

	var b strings.Builder
	b.WriteString(r.style(titleStyle, "both distribution locations checked out") + "\n")
	b.WriteString(fmt.Sprintf("staging: %s\n", r.style(pathStyle, result.Staging.Dir)))
	b.WriteString(fmt.Sprintf("release: %s\n", r.style(pathStyle, result.Release.Dir)))
	b.WriteString(r.style(mutedStyle, "move the accepted artifacts and commit the release side") + "\n")
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
