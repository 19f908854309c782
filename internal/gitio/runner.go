package gitio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git subcommand and returns its stdout. Implementations
// must be safe for sequential reuse; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner invokes the git binary.
type ExecRunner struct {
	// GitPath overrides the binary name; empty means "git" from PATH.
	GitPath string

	// Dir is the working directory for commands; empty means the process
	// working directory.
	Dir string
}

// NewExecRunner returns a runner rooted at dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes git with the given arguments and returns stdout. A non-zero
// exit wraps the first stderr line for context.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	gitPath := r.GitPath
	if gitPath == "" {
		gitPath = "git"
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail, _, _ := strings.Cut(strings.TrimSpace(stderr.String()), "\n")
		if detail != "" {
			return "", fmt.Errorf("git %s: %s: %w", args[0], detail, err)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return stdout.String(), nil
}
