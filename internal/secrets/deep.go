package secrets

import (
	"github.com/zricethezav/gitleaks/v8/detect"
)

// DeepScan runs the gitleaks default-config detector (several hundred
// provider patterns) over the staged set, in addition to the built-in
// table. Matches are normalized and masked exactly like built-in ones.
// Binary files and allowlisted paths are skipped.
func (s *Scanner) DeepScan(files []StagedFile) ([]Match, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, f := range files {
		if s.pathAllowed(f.Path) || isBinary(f.Content) {
			continue
		}
		for _, finding := range detector.DetectString(string(f.Content)) {
			if s.allowed(finding.Secret) {
				continue
			}
			matches = append(matches, Match{
				Path:        f.Path,
				RuleID:      finding.RuleID,
				Description: finding.Description,
				// gitleaks lines are 0-indexed; Match lines are 1-indexed.
				Line:        finding.StartLine + 1,
				Excerpt:     Mask(finding.Secret, s.config.RevealWindow),
			})
		}
	}
	return matches, nil
}

// MergeMatches combines built-in and deep matches, keeping the first match
// per (path, line) so a line never produces duplicate findings.
func MergeMatches(primary, extra []Match) []Match {
	type key struct {
		path string
		line int
	}
	seen := make(map[key]bool, len(primary))
	merged := make([]Match, 0, len(primary)+len(extra))
	for _, m := range primary {
		k := key{m.Path, m.Line}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, m)
	}
	for _, m := range extra {
		k := key{m.Path, m.Line}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, m)
	}
	return merged
}
