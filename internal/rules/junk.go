package rules

import (
	"path"
	"strings"
)

// JunkPattern describes one conventionally-ignored artifact. Exactly one of
// Prefix, Suffix or Exact is set. The table is data so individual patterns
// are unit-testable and extension never touches rule control flow.
type JunkPattern struct {
	// Prefix matches paths under a directory, e.g. "node_modules/".
	Prefix string `koanf:"prefix"`

	// Suffix matches by file extension, e.g. ".log".
	Suffix string `koanf:"suffix"`

	// Exact matches a basename, e.g. ".DS_Store".
	Exact string `koanf:"exact"`
}

// Matches reports whether the repository-relative path hits this pattern.
func (p JunkPattern) Matches(filePath string) bool {
	switch {
	case p.Prefix != "":
		return strings.HasPrefix(filePath, p.Prefix) || strings.Contains(filePath, "/"+p.Prefix)
	case p.Suffix != "":
		return strings.HasSuffix(filePath, p.Suffix)
	case p.Exact != "":
		return path.Base(filePath) == p.Exact
	default:
		return false
	}
}

// IgnoreLine returns the .gitignore line that would cover this pattern.
func (p JunkPattern) IgnoreLine() string {
	switch {
	case p.Prefix != "":
		return p.Prefix
	case p.Suffix != "":
		return "*" + p.Suffix
	default:
		return p.Exact
	}
}

// DefaultJunkTable returns the built-in junk patterns: OS metadata,
// dependency and virtual-env directories, caches, logs, bytecode.
func DefaultJunkTable() []JunkPattern {
	return []JunkPattern{
		{Prefix: "node_modules/"},
		{Prefix: "venv/"},
		{Prefix: ".venv/"},
		{Prefix: "__pycache__/"},
		{Prefix: ".pytest_cache/"},
		{Suffix: ".log"},
		{Suffix: ".coverage"},
		{Suffix: ".pyc"},
		{Suffix: ".pyo"},
		{Suffix: ".pyd"},
		{Exact: ".DS_Store"},
		{Exact: "Thumbs.db"},
	}
}
