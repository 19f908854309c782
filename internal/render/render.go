// Package render turns a scan report into terminal text or JSON. It is a
// presentation layer only: the finding contents and their order are fixed
// by the engine before they arrive here.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/gitscan/internal/aggregate"
	"github.com/fyrsmithlabs/gitscan/internal/rules"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// Renderer writes scan reports.
type Renderer struct {
	header   lipgloss.Style
	warn     lipgloss.Style
	block    lipgloss.Style
	ok       lipgloss.Style
	dim      lipgloss.Style
	suggest  lipgloss.Style
	override lipgloss.Style
}

// New returns a renderer with the default styles.
func New() *Renderer {
	return &Renderer{
		header:   lipgloss.NewStyle().Bold(true),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		block:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		suggest:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		override: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// Text writes the human-readable report.
func (r *Renderer) Text(w io.Writer, snap *snapshot.RepoSnapshot, report *aggregate.Report) {
	fmt.Fprintf(w, "%s %s\n", r.header.Render("Repository:"), snap.Root)
	if snap.Branch != "" {
		fmt.Fprintf(w, "%s %s%s\n", r.header.Render("Branch:"), snap.Branch, r.aheadBehind(snap))
	}
	fmt.Fprintln(w)

	if len(report.Findings) == 0 {
		fmt.Fprintln(w, r.ok.Render("No issues detected."))
		return
	}

	fmt.Fprintln(w, r.header.Render("Issues detected:"))
	for _, f := range report.Findings {
		fmt.Fprintf(w, " %s %s: %s\n", r.badge(f.Severity), f.RuleID, f.Message)
		if f.Suggestion != "" {
			fmt.Fprintf(w, "    %s\n", r.suggest.Render(f.Suggestion))
		}
		for _, e := range f.Evidence {
			fmt.Fprintf(w, "    %s\n", r.dim.Render("• "+e))
		}
	}

	if report.Overridden {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.override.Render("Block findings overridden (--i-know-what-im-doing); exit code downgraded, issues remain."))
	}
}

func (r *Renderer) badge(s rules.Severity) string {
	if s == rules.Block {
		return r.block.Render("[BLOCK]")
	}
	return r.warn.Render("[WARN]")
}

func (r *Renderer) aheadBehind(snap *snapshot.RepoSnapshot) string {
	var parts []string
	if snap.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("ahead %d", snap.Ahead))
	}
	if snap.Behind > 0 {
		parts = append(parts, fmt.Sprintf("behind %d", snap.Behind))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
