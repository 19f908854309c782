package rules

import (
	"github.com/fyrsmithlabs/gitscan/internal/secrets"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// SecretsStaged wraps the secret scanner as a guardrail. Staged contents
// are read once up front and handed in here, so evaluation itself stays
// free of I/O.
type SecretsStaged struct {
	scanner *secrets.Scanner
	staged  []secrets.StagedFile
	deep    bool
}

// NewSecretsStaged builds the rule over pre-read staged contents.
func NewSecretsStaged(scanner *secrets.Scanner, staged []secrets.StagedFile, deep bool) *SecretsStaged {
	return &SecretsStaged{scanner: scanner, staged: staged, deep: deep}
}

func (*SecretsStaged) ID() string { return "secrets-staged" }

func (s *SecretsStaged) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	if len(snap.Staged) == 0 || s.scanner == nil {
		return nil
	}

	matches := s.scanner.Scan(s.staged)
	if s.deep {
		// A deep-engine failure degrades to the built-in table only; it
		// must never suppress findings already in hand.
		if extra, err := s.scanner.DeepScan(s.staged); err == nil {
			matches = secrets.MergeMatches(matches, extra)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	evidence := make([]string, 0, len(matches))
	for _, m := range matches {
		evidence = append(evidence, m.Evidence())
	}

	return []Finding{{
		RuleID:     "secrets-staged",
		Severity:   Block,
		Message:    "Potential secrets detected in staged files.",
		Suggestion: "Unstage with git restore --staged <path>, rotate the credential if it ever left your machine, and add the file to .gitignore.",
		Evidence:   evidence,
	}}
}
