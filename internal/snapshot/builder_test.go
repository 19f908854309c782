package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_BranchHeader(t *testing.T) {
	t.Run("upstream with ahead and behind", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## main...origin/main [ahead 2, behind 1]\n"})
		assert.Equal(t, "main", snap.Branch)
		assert.True(t, snap.HasUpstream)
		assert.Equal(t, 2, snap.Ahead)
		assert.Equal(t, 1, snap.Behind)
	})

	t.Run("upstream ahead only", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## main...origin/main [ahead 3]\n"})
		assert.Equal(t, 3, snap.Ahead)
		assert.Equal(t, 0, snap.Behind)
		assert.True(t, snap.HasUpstream)
	})

	t.Run("no upstream is not an error", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## feature\n"})
		assert.Equal(t, "feature", snap.Branch)
		assert.False(t, snap.HasUpstream)
		assert.Equal(t, 0, snap.Ahead)
		assert.Equal(t, 0, snap.Behind)
	})

	t.Run("initial repository", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## No commits yet on main\n"})
		assert.Equal(t, "main", snap.Branch)
		assert.False(t, snap.HasUpstream)
	})

	t.Run("detached head", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## HEAD (no branch)\n"})
		assert.Empty(t, snap.Branch)
	})

	t.Run("fallback branch kept when header missing", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "", Branch: "main"})
		assert.Equal(t, "main", snap.Branch)
	})
}

func TestBuild_Entries(t *testing.T) {
	status := "## main\n" +
		"M  staged.go\n" +
		"A  new.go\n" +
		"D  gone.go\n" +
		" M edited.go\n" +
		"MM both.go\n" +
		"?? notes.txt\n" +
		"R  old.go -> renamed.go\n"

	snap := Build(BuildInput{StatusText: status})

	t.Run("staged classification", func(t *testing.T) {
		require.Len(t, snap.Staged, 5)
		assert.Equal(t, FileEntry{Path: "staged.go", Status: StatusModified}, snap.Staged[0])
		assert.Equal(t, FileEntry{Path: "new.go", Status: StatusAdded}, snap.Staged[1])
		assert.Equal(t, FileEntry{Path: "gone.go", Status: StatusDeleted}, snap.Staged[2])
	})

	t.Run("rename records the new path", func(t *testing.T) {
		assert.Equal(t, "renamed.go", snap.Staged[4].Path)
	})

	t.Run("modified classification", func(t *testing.T) {
		require.Len(t, snap.Modified, 2)
		assert.Equal(t, "edited.go", snap.Modified[0].Path)
	})

	t.Run("dual membership is preserved", func(t *testing.T) {
		assert.Equal(t, "both.go", snap.Staged[3].Path)
		assert.Equal(t, "both.go", snap.Modified[1].Path)
	})

	t.Run("untracked", func(t *testing.T) {
		require.Len(t, snap.Untracked, 1)
		assert.Equal(t, "notes.txt", snap.Untracked[0].Path)
	})
}

func TestBuild_EdgeCases(t *testing.T) {
	t.Run("quoted path is unquoted", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## main\n?? \"with space.txt\"\n"})
		require.Len(t, snap.Untracked, 1)
		assert.Equal(t, "with space.txt", snap.Untracked[0].Path)
	})

	t.Run("ignored entries are dropped", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## main\n!! build/\n"})
		assert.Empty(t, snap.Untracked)
		assert.Empty(t, snap.Staged)
	})

	t.Run("empty and short lines are skipped", func(t *testing.T) {
		snap := Build(BuildInput{StatusText: "## main\n\nM\n"})
		assert.True(t, snap.IsClean())
	})

	t.Run("markers and context pass through", func(t *testing.T) {
		snap := Build(BuildInput{
			StatusText:       "## main\n",
			RebaseInProgress: true,
			Context:          ActionContext{Override: true},
		})
		assert.True(t, snap.RebaseInProgress)
		assert.True(t, snap.Context.Override)
	})
}

func TestRepoSnapshot_Helpers(t *testing.T) {
	snap := Build(BuildInput{StatusText: "## main\nA  a.go\nM  b.go\n"})
	assert.Equal(t, []string{"a.go", "b.go"}, snap.StagedPaths())
	assert.False(t, snap.IsClean())

	clean := Build(BuildInput{StatusText: "## main\n"})
	assert.True(t, clean.IsClean())
	assert.Empty(t, clean.StagedPaths())
}
