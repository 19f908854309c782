package render

import (
	"encoding/json"
	"io"

	"github.com/fyrsmithlabs/gitscan/internal/aggregate"
	"github.com/fyrsmithlabs/gitscan/internal/rules"
	"github.com/fyrsmithlabs/gitscan/internal/secrets"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// jsonReport is the machine-readable scan result.
type jsonReport struct {
	Repository   string          `json:"repository"`
	Branch       string          `json:"branch,omitempty"`
	Ahead        int             `json:"ahead"`
	Behind       int             `json:"behind"`
	RulesVersion string          `json:"rules_version"`
	Findings     []rules.Finding `json:"findings"`
	ExitCode     int             `json:"exit_code"`
	Overridden   bool            `json:"overridden"`
}

// JSON writes the report as a single indented JSON document.
func (r *Renderer) JSON(w io.Writer, snap *snapshot.RepoSnapshot, report *aggregate.Report) error {
	out := jsonReport{
		Repository:   snap.Root,
		Branch:       snap.Branch,
		Ahead:        snap.Ahead,
		Behind:       snap.Behind,
		RulesVersion: secrets.RulesVersion,
		Findings:     report.Findings,
		ExitCode:     report.ExitCode,
		Overridden:   report.Overridden,
	}
	if out.Findings == nil {
		out.Findings = []rules.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
