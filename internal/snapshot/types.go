package snapshot

// StageStatus describes how a file appears in the index or worktree.
type StageStatus int

const (
	StatusNone StageStatus = iota
	StatusAdded
	StatusModified
	StatusDeleted
)

// String returns a short human-readable tag for the status.
func (s StageStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	default:
		return "none"
	}
}

// FileEntry is a single path with its staging status.
type FileEntry struct {
	Path   string
	Status StageStatus
}

// ActionContext carries caller-signalled intent. It is part of the snapshot
// so rules stay pure functions over a single input.
type ActionContext struct {
	// StageAll means the caller is about to stage every path indiscriminately.
	StageAll bool

	// ForcePush means the caller intends to force-push.
	ForcePush bool

	// Stash means the caller intends to stash working changes.
	Stash bool

	// Override acknowledges risk and downgrades Block's effect on the exit
	// code. It never removes findings from the output.
	Override bool
}

// RepoSnapshot is an immutable view of the repository state, computed once
// per invocation. All rule evaluation reads from this value only.
type RepoSnapshot struct {
	// Root is the absolute path of the working tree.
	Root string

	// Branch is the current branch name, empty on detached HEAD.
	Branch string

	// IsRepository is false when no repository could be located.
	// False short-circuits all rules.
	IsRepository bool

	// Staged are files recorded in the index. A file that is staged and
	// further modified unstaged appears in both Staged and Modified.
	Staged []FileEntry

	// Modified are tracked files with unstaged changes.
	Modified []FileEntry

	// Untracked are files unknown to the index.
	Untracked []FileEntry

	// Tracked is the full list of paths known to the index.
	Tracked []string

	// Ahead and Behind are commit counts relative to the upstream branch.
	// Without an upstream both are zero and HasUpstream is false.
	Ahead       int
	Behind      int
	HasUpstream bool

	// RebaseInProgress and MergeInProgress come from git-dir marker probes,
	// not from status text.
	RebaseInProgress bool
	MergeInProgress  bool

	// IgnorePatterns are the raw pattern lines currently in .gitignore.
	IgnorePatterns []string

	// Context is the caller-signalled intent for this invocation.
	Context ActionContext
}

// StagedPaths returns the paths of all staged entries in order.
func (s *RepoSnapshot) StagedPaths() []string {
	paths := make([]string, 0, len(s.Staged))
	for _, e := range s.Staged {
		paths = append(paths, e.Path)
	}
	return paths
}

// IsClean reports whether there are no staged, modified or untracked files.
func (s *RepoSnapshot) IsClean() bool {
	return len(s.Staged) == 0 && len(s.Modified) == 0 && len(s.Untracked) == 0
}
