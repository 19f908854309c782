package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/gitscan/internal/secrets"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

func untrackedEntries(paths ...string) []snapshot.FileEntry {
	entries := make([]snapshot.FileEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, snapshot.FileEntry{Path: p})
	}
	return entries
}

func TestAddAll(t *testing.T) {
	rule := AddAll{}

	t.Run("silent on a quiet tree", func(t *testing.T) {
		assert.Empty(t, rule.Evaluate(&snapshot.RepoSnapshot{IsRepository: true}))
	})

	t.Run("fires on announced stage-all", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Context:      snapshot.ActionContext{StageAll: true},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Equal(t, "no-add-all", findings[0].RuleID)
		assert.Equal(t, Warning, findings[0].Severity)
		assert.Contains(t, findings[0].Suggestion, "git add -p")
	})

	t.Run("fires when untracked spread is wide", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Untracked: untrackedEntries(
				"a/one.txt", "a/two.txt", "b/one.txt",
				"b/two.txt", "c/one.txt", "c/two.txt",
			),
		}
		assert.Len(t, rule.Evaluate(snap), 1)
	})

	t.Run("small untracked set stays below the floor", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Untracked:    untrackedEntries("a/1", "b/2", "c/3", "d/4", "e/5"),
		}
		assert.Empty(t, rule.Evaluate(snap))
	})

	t.Run("single directory never counts as spread", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Untracked:    untrackedEntries("a/1", "a/2", "a/3", "a/4", "a/5", "a/6", "a/7"),
		}
		assert.Empty(t, rule.Evaluate(snap))
	})

	t.Run("threshold scales with staged size", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Staged: []snapshot.FileEntry{
				{Path: "x.go"}, {Path: "y.go"}, {Path: "z.go"}, {Path: "w.go"},
			},
			Untracked: untrackedEntries("a/1", "a/2", "a/3", "b/1", "b/2", "b/3"),
		}
		// 6 untracked, threshold max(5, 8) = 8: not wide.
		assert.Empty(t, rule.Evaluate(snap))
	})

	t.Run("suggestion names directories the repo actually uses", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Tracked:      []string{"src/main.py", "tests/test_main.py", "README.md"},
			Context:      snapshot.ActionContext{StageAll: true},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Suggestion, "git add src/")
		assert.Contains(t, findings[0].Suggestion, "git add tests/")
	})
}

func TestForcePush(t *testing.T) {
	rule := ForcePush{}

	t.Run("silent without intent or divergence", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{IsRepository: true, HasUpstream: true, Ahead: 3}
		assert.Empty(t, rule.Evaluate(snap))
	})

	t.Run("fires on announced force push", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Context:      snapshot.ActionContext{ForcePush: true},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Equal(t, "no-force-push", findings[0].RuleID)
	})

	t.Run("fires on divergence and names the counts", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			HasUpstream:  true,
			Ahead:        2,
			Behind:       1,
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "ahead 2")
		assert.Contains(t, findings[0].Message, "behind 1")
	})

	t.Run("divergence requires an upstream", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{IsRepository: true, Ahead: 2, Behind: 1}
		assert.Empty(t, rule.Evaluate(snap))
	})
}

func TestRebaseAndStash(t *testing.T) {
	t.Run("rebase in progress", func(t *testing.T) {
		findings := Rebase{}.Evaluate(&snapshot.RepoSnapshot{IsRepository: true, RebaseInProgress: true})
		require.Len(t, findings, 1)
		assert.Equal(t, "no-rebase", findings[0].RuleID)
		assert.Contains(t, findings[0].Suggestion, "git rebase --abort")
	})

	t.Run("no rebase", func(t *testing.T) {
		assert.Empty(t, Rebase{}.Evaluate(&snapshot.RepoSnapshot{IsRepository: true}))
	})

	t.Run("announced stash", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Context:      snapshot.ActionContext{Stash: true},
		}
		findings := Stash{}.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Equal(t, "discourage-stash", findings[0].RuleID)
	})

	t.Run("no stash intent", func(t *testing.T) {
		assert.Empty(t, Stash{}.Evaluate(&snapshot.RepoSnapshot{IsRepository: true}))
	})
}

func TestJunkPattern(t *testing.T) {
	cases := []struct {
		name    string
		pattern JunkPattern
		path    string
		want    bool
	}{
		{"prefix at root", JunkPattern{Prefix: "node_modules/"}, "node_modules/lodash/index.js", true},
		{"prefix nested", JunkPattern{Prefix: "node_modules/"}, "web/node_modules/react/index.js", true},
		{"prefix miss", JunkPattern{Prefix: "node_modules/"}, "src/node_modules.go", false},
		{"suffix", JunkPattern{Suffix: ".log"}, "logs/app.log", true},
		{"suffix miss", JunkPattern{Suffix: ".log"}, "logging.go", false},
		{"exact basename", JunkPattern{Exact: ".DS_Store"}, "docs/.DS_Store", true},
		{"exact miss on substring", JunkPattern{Exact: ".DS_Store"}, "docs/.DS_Store.bak", false},
		{"empty pattern matches nothing", JunkPattern{}, "anything", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pattern.Matches(tc.path))
		})
	}

	t.Run("ignore lines", func(t *testing.T) {
		assert.Equal(t, "node_modules/", JunkPattern{Prefix: "node_modules/"}.IgnoreLine())
		assert.Equal(t, "*.log", JunkPattern{Suffix: ".log"}.IgnoreLine())
		assert.Equal(t, ".DS_Store", JunkPattern{Exact: ".DS_Store"}.IgnoreLine())
	})
}

func TestHygiene(t *testing.T) {
	rule := NewHygiene(nil)

	t.Run("tracked junk without cover", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Tracked:      []string{"src/main.go", ".DS_Store", "debug.log"},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Equal(t, "gitignore-hygiene", findings[0].RuleID)
		assert.Equal(t, Warning, findings[0].Severity)
		require.Len(t, findings[0].Evidence, 2)
		assert.Contains(t, findings[0].Evidence[0], ".DS_Store")
		assert.Contains(t, findings[0].Evidence[1], "debug.log")
		assert.Contains(t, findings[0].Suggestion, "*.log")
		assert.Contains(t, findings[0].Suggestion, "git rm --cached")
	})

	t.Run("gitignore coverage silences the match", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository:   true,
			Tracked:        []string{".DS_Store", "debug.log"},
			IgnorePatterns: []string{".DS_Store", "*.log"},
		}
		assert.Empty(t, rule.Evaluate(snap))
	})

	t.Run("staged junk also counts", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Staged:       []snapshot.FileEntry{{Path: "node_modules/left-pad/index.js", Status: snapshot.StatusAdded}},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Evidence[0], "node_modules/left-pad/index.js")
	})

	t.Run("duplicate path reported once", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Tracked:      []string{"out.log"},
			Staged:       []snapshot.FileEntry{{Path: "out.log", Status: snapshot.StatusModified}},
		}
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Len(t, findings[0].Evidence, 1)
	})

	t.Run("clean tree", func(t *testing.T) {
		snap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Tracked:      []string{"src/main.go", "go.mod"},
		}
		assert.Empty(t, rule.Evaluate(snap))
	})
}

func TestSecretsStaged(t *testing.T) {
	scanner := secrets.MustNew(nil)
	secret := "wJalrXUtnFEMIK7MDENGbPxRfiCYEXAMPLEKEY"
	staged := []secrets.StagedFile{
		{Path: "config/prod.env", Content: []byte("AWS_SECRET_ACCESS_KEY=" + secret + "\n")},
	}
	snap := &snapshot.RepoSnapshot{
		IsRepository: true,
		Staged:       []snapshot.FileEntry{{Path: "config/prod.env", Status: snapshot.StatusAdded}},
	}

	t.Run("blocks on a staged secret", func(t *testing.T) {
		rule := NewSecretsStaged(scanner, staged, false)
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		assert.Equal(t, "secrets-staged", findings[0].RuleID)
		assert.Equal(t, Block, findings[0].Severity)
		require.NotEmpty(t, findings[0].Evidence)
		assert.Contains(t, findings[0].Evidence[0], "config/prod.env")
	})

	t.Run("evidence never leaks the secret", func(t *testing.T) {
		rule := NewSecretsStaged(scanner, staged, false)
		findings := rule.Evaluate(snap)
		require.Len(t, findings, 1)
		for _, line := range findings[0].Evidence {
			assert.NotContains(t, line, secret)
		}
	})

	t.Run("silent when nothing is staged", func(t *testing.T) {
		rule := NewSecretsStaged(scanner, staged, false)
		assert.Empty(t, rule.Evaluate(&snapshot.RepoSnapshot{IsRepository: true}))
	})

	t.Run("silent on clean staged content", func(t *testing.T) {
		clean := []secrets.StagedFile{{Path: "main.go", Content: []byte("package main\n")}}
		rule := NewSecretsStaged(scanner, clean, false)
		cleanSnap := &snapshot.RepoSnapshot{
			IsRepository: true,
			Staged:       []snapshot.FileEntry{{Path: "main.go", Status: snapshot.StatusModified}},
		}
		assert.Empty(t, rule.Evaluate(cleanSnap))
	})

	t.Run("nil scanner disables the rule", func(t *testing.T) {
		rule := NewSecretsStaged(nil, staged, false)
		assert.Empty(t, rule.Evaluate(snap))
	})
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet(Options{Scanner: secrets.MustNew(nil)})

	ids := make([]string, 0, len(set))
	for _, r := range set {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{
		"no-add-all",
		"no-force-push",
		"no-rebase",
		"discourage-stash",
		"gitignore-hygiene",
		"secrets-staged",
	}, ids)
}
