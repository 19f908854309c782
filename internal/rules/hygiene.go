package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// Hygiene flags tracked or staged files that match the junk table and are
// not yet covered by .gitignore.
type Hygiene struct {
	table []JunkPattern
}

// NewHygiene builds the rule. A nil table uses DefaultJunkTable.
func NewHygiene(table []JunkPattern) *Hygiene {
	if table == nil {
		table = DefaultJunkTable()
	}
	return &Hygiene{table: table}
}

func (*Hygiene) ID() string { return "gitignore-hygiene" }

func (h *Hygiene) Evaluate(snap *snapshot.RepoSnapshot) []Finding {
	matcher := ignoreMatcher(snap.IgnorePatterns)

	var evidence []string
	needed := make(map[string]bool)
	seen := make(map[string]bool)

	for _, filePath := range candidatePaths(snap) {
		if seen[filePath] {
			continue
		}
		seen[filePath] = true
		if matcher.Match(strings.Split(filePath, "/"), false) {
			continue
		}
		for _, pattern := range h.table {
			if pattern.Matches(filePath) {
				evidence = append(evidence, fmt.Sprintf("%s (add %q to .gitignore)", filePath, pattern.IgnoreLine()))
				needed[pattern.IgnoreLine()] = true
				break
			}
		}
	}

	if len(evidence) == 0 {
		return nil
	}

	lines := make([]string, 0, len(needed))
	for line := range needed {
		lines = append(lines, line)
	}
	sort.Strings(lines)

	return []Finding{{
		RuleID:     "gitignore-hygiene",
		Severity:   Warning,
		Message:    "Tracked junk detected that should be in .gitignore.",
		Suggestion: fmt.Sprintf("Add to .gitignore: %s, then untrack with git rm --cached <path>.", strings.Join(lines, ", ")),
		Evidence:   evidence,
	}}
}

// candidatePaths yields tracked paths first, then staged, preserving order.
func candidatePaths(snap *snapshot.RepoSnapshot) []string {
	paths := make([]string, 0, len(snap.Tracked)+len(snap.Staged))
	paths = append(paths, snap.Tracked...)
	paths = append(paths, snap.StagedPaths()...)
	return paths
}

// ignoreMatcher compiles the raw .gitignore lines into a go-git matcher.
// Unparseable lines are impossible here: ParsePattern accepts any string.
func ignoreMatcher(patterns []string) gitignore.Matcher {
	compiled := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, gitignore.ParsePattern(p, nil))
	}
	return gitignore.NewMatcher(compiled)
}
