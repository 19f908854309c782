// Package aggregate merges rule findings into one deterministic report and
// owns the exit-code policy.
package aggregate

import (
	"github.com/fyrsmithlabs/gitscan/internal/rules"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitNotARepository = 1
	ExitBlocked        = 2
)

// Report is the merged outcome of one scan.
type Report struct {
	// Findings are ordered by rule declaration order, then by evidence
	// order within a rule.
	Findings []rules.Finding `json:"findings"`

	// ExitCode is the process exit code under the current override mode.
	ExitCode int `json:"exit_code"`

	// Overridden is true when a Block finding exists but override mode
	// suppressed its effect on the exit code. The finding itself is kept.
	Overridden bool `json:"overridden"`
}

// HasBlock reports whether any finding carries Block severity.
func (r *Report) HasBlock() bool {
	for _, f := range r.Findings {
		if f.Severity == rules.Block {
			return true
		}
	}
	return false
}

// Run evaluates every rule in declared order against the snapshot and
// merges the results. Rules never run against a non-repository snapshot.
func Run(snap *snapshot.RepoSnapshot, set []rules.Rule) *Report {
	if snap == nil || !snap.IsRepository {
		return &Report{ExitCode: ExitNotARepository}
	}

	var findings []rules.Finding
	for _, rule := range set {
		findings = append(findings, rule.Evaluate(snap)...)
	}
	return Merge(findings, snap.Context.Override)
}

// Merge computes the exit code for an already-ordered finding list. A Block
// finding forces exit 2 unless override mode is active; override changes
// the exit code only, never the findings.
func Merge(findings []rules.Finding, override bool) *Report {
	report := &Report{Findings: findings, ExitCode: ExitOK}
	if report.HasBlock() {
		if override {
			report.Overridden = true
		} else {
			report.ExitCode = ExitBlocked
		}
	}
	return report
}
