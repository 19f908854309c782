package gitio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
)

// Discover locates the repository containing path, walking parents the way
// git itself does. It returns the working-tree root and the current branch
// name (empty on detached HEAD), or ErrNotARepository.
func Discover(path string) (root, branch string, err error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", "", snapshot.ErrNotARepository
		}
		return "", "", fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: nothing to stage or commit, nothing to advise on.
		return "", "", fmt.Errorf("%w: bare repository", snapshot.ErrNotARepository)
	}
	root = wt.Filesystem.Root()

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		branch = head.Name().Short()
	}
	return root, branch, nil
}

// Markers probes the git directory for in-progress operation state. This
// is a filesystem check, not a status-text parse: git records rebases as
// the rebase-merge/rebase-apply directories and merges as MERGE_HEAD.
func Markers(gitDir string) (rebaseInProgress, mergeInProgress bool) {
	rebaseInProgress = isDir(filepath.Join(gitDir, "rebase-merge")) ||
		isDir(filepath.Join(gitDir, "rebase-apply"))

	if _, err := os.Stat(filepath.Join(gitDir, "MERGE_HEAD")); err == nil {
		mergeInProgress = true
	}
	return rebaseInProgress, mergeInProgress
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
