package gitio

import (
	"context"
	"strings"

	"github.com/fyrsmithlabs/gitscan/internal/secrets"
)

// Source reads repository state through a Runner. All commands are
// read-only.
type Source struct {
	runner Runner
}

// NewSource wraps a runner.
func NewSource(r Runner) *Source {
	return &Source{runner: r}
}

// StatusText returns porcelain v1 status with the branch header line.
func (s *Source) StatusText(ctx context.Context) (string, error) {
	return s.runner.Run(ctx, "status", "--porcelain", "-b")
}

// TrackedFiles returns every path known to the index.
func (s *Source) TrackedFiles(ctx context.Context) ([]string, error) {
	out, err := s.runner.Run(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// GitDir returns the repository's git directory, as reported relative to
// the working directory.
func (s *Source) GitDir(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// StagedContent returns the index content of one path (`git show :path`).
func (s *Source) StagedContent(ctx context.Context, path string) ([]byte, error) {
	out, err := s.runner.Run(ctx, "show", ":"+path)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// StagedContents reads the index content of every given path, preserving
// order. An unreadable file is skipped, never fatal: one bad blob must not
// suppress findings in the rest of the staged set.
func (s *Source) StagedContents(ctx context.Context, paths []string) []secrets.StagedFile {
	files := make([]secrets.StagedFile, 0, len(paths))
	for _, path := range paths {
		content, err := s.StagedContent(ctx, path)
		if err != nil {
			continue
		}
		files = append(files, secrets.StagedFile{Path: path, Content: content})
	}
	return files
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
