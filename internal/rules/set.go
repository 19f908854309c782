package rules

import (
	"github.com/fyrsmithlabs/gitscan/internal/secrets"
)

// Options configures the default rule set.
type Options struct {
	// Scanner and Staged feed the secrets-staged rule.
	Scanner *secrets.Scanner
	Staged  []secrets.StagedFile

	// Junk overrides the junk table; nil uses DefaultJunkTable.
	Junk []JunkPattern

	// Deep also runs the gitleaks engine over staged content.
	Deep bool
}

// DefaultSet returns every guardrail in its declared order. The order is
// fixed: it determines display order of findings, never correctness.
func DefaultSet(opts Options) []Rule {
	return []Rule{
		AddAll{},
		ForcePush{},
		Rebase{},
		Stash{},
		NewHygiene(opts.Junk),
		NewSecretsStaged(opts.Scanner, opts.Staged, opts.Deep),
	}
}
