// Package rules holds the guardrail rule set: independent, pure evaluators
// over a RepoSnapshot that produce prioritized findings.
package rules

import (
	"encoding/json"

	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// Severity ranks a finding. Block findings force a non-zero exit unless
// override mode is active; Warning findings never affect the exit code.
type Severity int

const (
	Warning Severity = iota
	Block
)

// String returns the display tag for the severity.
func (s Severity) String() string {
	if s == Block {
		return "BLOCK"
	}
	return "WARN"
}

// MarshalJSON emits the display tag rather than the raw integer.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Finding is one flagged issue. Instances are immutable once produced.
type Finding struct {
	RuleID     string   `json:"rule_id"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
	// Evidence lists matched paths or masked excerpts, in match order.
	Evidence []string `json:"evidence,omitempty"`
}

// Rule is one guardrail. Evaluate must be a pure function of the snapshot:
// no I/O, no shared mutable state, deterministic output.
type Rule interface {
	ID() string
	Evaluate(snap *snapshot.RepoSnapshot) []Finding
}
