// Package snapshot turns raw git status output into an immutable typed view
// of the repository, consumed by every guardrail rule.
package snapshot

import (
	"regexp"
	"strconv"
	"strings"
)

// BuildInput collects everything the builder needs. Status text and file
// lists are read once up front; the builder itself performs no I/O.
type BuildInput struct {
	// StatusText is the output of `git status --porcelain -b`.
	StatusText string

	// Tracked is the output of `git ls-files`, one path per line.
	Tracked []string

	// IgnorePatterns are the raw lines of .gitignore, comments stripped.
	IgnorePatterns []string

	// Root is the absolute working-tree path.
	Root string

	// Branch is a fallback branch name used when the status header carries
	// none (e.g. detached HEAD reported by an older git).
	Branch string

	// RebaseInProgress and MergeInProgress come from the git-dir probe.
	RebaseInProgress bool
	MergeInProgress  bool

	Context ActionContext
}

var (
	aheadRe  = regexp.MustCompile(`\[ahead (\d+)`)
	behindRe = regexp.MustCompile(`behind (\d+)\]`)
)

// Build parses porcelain status text into a RepoSnapshot. The input is
// assumed to come from a located repository; repository discovery failures
// surface earlier as ErrNotARepository.
func Build(in BuildInput) *RepoSnapshot {
	snap := &RepoSnapshot{
		Root:             in.Root,
		Branch:           in.Branch,
		IsRepository:     true,
		Tracked:          in.Tracked,
		IgnorePatterns:   in.IgnorePatterns,
		RebaseInProgress: in.RebaseInProgress,
		MergeInProgress:  in.MergeInProgress,
		Context:          in.Context,
	}

	for _, line := range strings.Split(in.StatusText, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			parseBranchHeader(snap, strings.TrimPrefix(line, "## "))
			continue
		}
		parseEntryLine(snap, line)
	}

	return snap
}

// parseBranchHeader handles the `## branch...upstream [ahead N, behind M]`
// line. A missing upstream is not an error: counts stay zero.
func parseBranchHeader(snap *RepoSnapshot, header string) {
	// Initial repository state: "No commits yet on <branch>".
	if rest, ok := strings.CutPrefix(header, "No commits yet on "); ok {
		snap.Branch = strings.Fields(rest)[0]
		return
	}
	if strings.HasPrefix(header, "HEAD (no branch)") {
		snap.Branch = ""
		return
	}

	fields := strings.Fields(header)
	if len(fields) == 0 {
		return
	}
	name, upstream, hasUpstream := strings.Cut(fields[0], "...")
	snap.Branch = name
	snap.HasUpstream = hasUpstream && upstream != ""

	if m := aheadRe.FindStringSubmatch(header); m != nil {
		snap.Ahead, _ = strconv.Atoi(m[1])
	}
	if m := behindRe.FindStringSubmatch(header); m != nil {
		snap.Behind, _ = strconv.Atoi(m[1])
	}
}

// parseEntryLine maps one porcelain XY line onto the staged, modified and
// untracked lists. Dual membership is intentional: a staged file with
// further unstaged edits lands in both Staged and Modified, and staged
// secret scanning only ever reads the staged list.
func parseEntryLine(snap *RepoSnapshot, line string) {
	if len(line) < 4 {
		return
	}
	x, y := line[0], line[1]
	path := unquotePath(line[3:])

	if x == '?' && y == '?' {
		snap.Untracked = append(snap.Untracked, FileEntry{Path: path, Status: StatusNone})
		return
	}
	if x == '!' && y == '!' {
		return
	}

	// Renames and copies report "old -> new"; the new path is the one that
	// exists in the index.
	if _, newPath, ok := strings.Cut(path, " -> "); ok {
		path = newPath
	}

	if st, ok := indexStatus(x); ok {
		snap.Staged = append(snap.Staged, FileEntry{Path: path, Status: st})
	}
	if st, ok := worktreeStatus(y); ok {
		snap.Modified = append(snap.Modified, FileEntry{Path: path, Status: st})
	}
}

func indexStatus(code byte) (StageStatus, bool) {
	switch code {
	case 'A', 'C':
		return StatusAdded, true
	case 'M', 'R', 'T', 'U':
		return StatusModified, true
	case 'D':
		return StatusDeleted, true
	default:
		return StatusNone, false
	}
}

func worktreeStatus(code byte) (StageStatus, bool) {
	switch code {
	case 'M', 'T', 'U':
		return StatusModified, true
	case 'D':
		return StatusDeleted, true
	default:
		return StatusNone, false
	}
}

// unquotePath undoes git's C-style quoting of paths with special characters.
func unquotePath(p string) string {
	if strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
		if unquoted, err := strconv.Unquote(p); err == nil {
			return unquoted
		}
	}
	return p
}
