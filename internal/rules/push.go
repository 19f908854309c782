package rules

import (
	"fmt"

	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// ForcePush warns on an announced force-push, and also when the branch has
// diverged from upstream, the state in which a force push actually
// destroys remote history.
type ForcePush struct{}

func (ForcePush) ID() string { return "no-force-push" }

func (ForcePush) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	diverged := snap.HasUpstream && snap.Ahead > 0 && snap.Behind > 0
	if !snap.Context.ForcePush && !diverged {
		return nil
	}

	msg := "Avoid 'git push -f': force pushing rewrites remote history."
	if diverged {
		msg = fmt.Sprintf("Branch diverged (ahead %d, behind %d). Never force push.", snap.Ahead, snap.Behind)
	}
	return []Finding{{
		RuleID:     "no-force-push",
		Severity:   Warning,
		Message:    msg,
		Suggestion: "Prefer: git pull to merge remote changes, then a regular git push.",
	}}
}

// Rebase warns while a rebase is underway.
type Rebase struct{}

func (Rebase) ID() string { return "no-rebase" }

func (Rebase) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	if !snap.RebaseInProgress {
		return nil
	}
	return []Finding{{
		RuleID:     "no-rebase",
		Severity:   Warning,
		Message:    "Rebase in progress detected. Prefer merges over rebase.",
		Suggestion: "Use: git rebase --abort, then git pull or git merge to integrate changes.",
	}}
}

// Stash discourages an announced stash in favor of a branch.
type Stash struct{}

func (Stash) ID() string { return "discourage-stash" }

func (Stash) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	if !snap.Context.Stash {
		return nil
	}
	return []Finding{{
		RuleID:     "discourage-stash",
		Severity:   Warning,
		Message:    "Stashing hides work and is easy to lose.",
		Suggestion: "Prefer saving work on a branch: git checkout -b <name>",
	}}
}
