package rules

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// addAllMinUntracked is the floor below which the spread heuristic never
// fires on its own.
const addAllMinUntracked = 5

// AddAll warns when a staging operation would sweep in everything: either
// the caller signalled `git add .` intent, or the untracked set is large
// relative to what is already staged and spans multiple top-level
// directories.
type AddAll struct{}

func (AddAll) ID() string { return "no-add-all" }

func (AddAll) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	if !snap.Context.StageAll && !spreadTooWide(snap) {
		return nil
	}
	return []Finding{{
		RuleID:     "no-add-all",
		Severity:   Warning,
		Message:    "Avoid 'git add .': it may stage junk or secrets.",
		Suggestion: addAlternatives(snap),
	}}
}

func spreadTooWide(snap *snapshot.RepoSnapshot) bool {
	threshold := addAllMinUntracked
	if t := 2 * len(snap.Staged); t > threshold {
		threshold = t
	}
	if len(snap.Untracked) <= threshold {
		return false
	}
	return len(topLevelDirs(snap.Untracked)) >= 2
}

// topLevelDirs collects the distinct first path components of the entries.
// Root-level files count as one component.
func topLevelDirs(entries []snapshot.FileEntry) map[string]bool {
	dirs := make(map[string]bool)
	for _, e := range entries {
		if first, _, ok := strings.Cut(e.Path, "/"); ok {
			dirs[first] = true
		} else {
			dirs["."] = true
		}
	}
	return dirs
}

// addAlternatives suggests scoped staging, naming src/ and tests/ when the
// snapshot shows them in use. Inferred from tracked paths so the rule stays
// a pure function of the snapshot.
func addAlternatives(snap *snapshot.RepoSnapshot) string {
	alternatives := []string{"git add -p"}
	for _, dir := range []string{"src", "tests"} {
		if hasTopLevelDir(snap.Tracked, dir) {
			alternatives = append(alternatives, "git add "+dir+"/")
		}
	}
	return fmt.Sprintf("Prefer: %s", strings.Join(alternatives, ", "))
}

func hasTopLevelDir(tracked []string, dir string) bool {
	prefix := dir + "/"
	for _, p := range tracked {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
