package secrets

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

// StagedFile is one staged path with its index content, read once up front.
type StagedFile struct {
	Path    string
	Content []byte
}

// Match is a single masked detection. Excerpt never contains the full
// secret value.
type Match struct {
	Path        string
	RuleID      string
	Description string
	// Line is 1-indexed; 0 means the match came from the filename alone.
	Line    int
	Excerpt string
}

// Evidence renders the match as a display line.
func (m Match) Evidence() string {
	if m.Line == 0 {
		return fmt.Sprintf("%s: %s", m.Path, m.Description)
	}
	return fmt.Sprintf("%s:%d: %s [%s] (%s)", m.Path, m.Line, m.Excerpt, m.RuleID, m.Description)
}

// Scanner applies the rule table to staged content.
type Scanner struct {
	config *Config
}

// New creates a Scanner from config. A nil config uses DefaultConfig.
func New(cfg *Config) (*Scanner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{config: cfg}, nil
}

// MustNew creates a Scanner, panicking on error.
func MustNew(cfg *Config) *Scanner {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Scan inspects every staged file in order and returns all matches. An
// empty staged set yields no matches; binary files are skipped.
func (s *Scanner) Scan(files []StagedFile) []Match {
	if !s.config.Enabled {
		return nil
	}
	var matches []Match
	for _, f := range files {
		matches = append(matches, s.ScanFile(f.Path, f.Content)...)
	}
	return matches
}

// ScanFile inspects one staged file. Filename cues fire without reading
// content; otherwise each line is tried against the rule table and the
// first matching rule per line wins.
func (s *Scanner) ScanFile(filePath string, content []byte) []Match {
	if !s.config.Enabled || s.pathAllowed(filePath) {
		return nil
	}

	if m, ok := s.matchFilename(filePath); ok {
		return []Match{m}
	}

	if isBinary(content) {
		return nil
	}

	var matches []Match
	for i, line := range strings.Split(string(content), "\n") {
		if m, ok := s.matchLine(filePath, i+1, line); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// matchFilename applies the filename cue table.
func (s *Scanner) matchFilename(filePath string) (Match, bool) {
	base := strings.ToLower(path.Base(filePath))
	for _, name := range s.config.CueBasenames {
		if base == name {
			return Match{Path: filePath, RuleID: "filename-cue", Description: "suspicious filename"}, true
		}
	}
	for _, prefix := range s.config.CuePrefixes {
		if strings.HasPrefix(base, prefix) {
			return Match{Path: filePath, RuleID: "filename-cue", Description: "suspicious filename"}, true
		}
	}
	for _, suffix := range s.config.CueSuffixes {
		if strings.HasSuffix(base, suffix) {
			return Match{Path: filePath, RuleID: "filename-cue", Description: fmt.Sprintf("file suffix suggests secret (%s)", suffix)}, true
		}
	}
	return Match{}, false
}

func (s *Scanner) matchLine(filePath string, lineNo int, line string) (Match, bool) {
	for _, rule := range s.config.compiledRules {
		if len(rule.keywords) > 0 && !anyKeyword(rule.keywords, line) {
			continue
		}
		loc := rule.pattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		secret := submatchOrWhole(line, loc)
		if s.allowed(secret) || s.allowed(line[loc[0]:loc[1]]) {
			continue
		}
		return Match{
			Path:        filePath,
			RuleID:      rule.ID,
			Description: rule.Description,
			Line:        lineNo,
			Excerpt:     Mask(secret, rule.reveal(s.config.RevealWindow)),
		}, true
	}
	return Match{}, false
}

// submatchOrWhole prefers capture group 1 (the secret value) over the whole
// match, so masking applies to the credential rather than the key name.
func submatchOrWhole(line string, loc []int) string {
	if len(loc) >= 4 && loc[2] >= 0 {
		return line[loc[2]:loc[3]]
	}
	return line[loc[0]:loc[1]]
}

func anyKeyword(keywords []*regexp.Regexp, line string) bool {
	for _, kw := range keywords {
		if kw.MatchString(line) {
			return true
		}
	}
	return false
}

func (s *Scanner) allowed(match string) bool {
	for _, pattern := range s.config.compiledAllowList {
		if pattern.MatchString(match) {
			return true
		}
	}
	return false
}

func (s *Scanner) pathAllowed(filePath string) bool {
	for _, pattern := range s.config.compiledPathAllow {
		if pattern.MatchString(filePath) {
			return true
		}
	}
	return false
}

// isBinary treats NUL bytes or invalid UTF-8 as binary content, which is
// skipped rather than flagged.
func isBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}
