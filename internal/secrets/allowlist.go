package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// AllowlistFileName is the per-repository allowlist file.
const AllowlistFileName = ".gitscan-allowlist.toml"

// Allowlist contains path and content regex patterns excluded from
// detection.
type Allowlist struct {
	Paths   []string
	Regexes []string
}

// LoadAllowlists loads and merges the repository and user allowlists.
// Missing files are silently ignored; invalid TOML or regex patterns return
// errors so a typo never silently widens the allowlist.
//
// repoRoot: directory containing .gitscan-allowlist.toml (empty to skip)
// userPath: full path to a user allowlist file (empty to skip)
func LoadAllowlists(repoRoot, userPath string) (*Allowlist, error) {
	merged := &Allowlist{}

	if repoRoot != "" {
		if err := mergeFile(merged, filepath.Join(repoRoot, AllowlistFileName)); err != nil {
			return nil, err
		}
	}
	if userPath != "" {
		if err := mergeFile(merged, userPath); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// Apply folds the allowlist into a scanner config.
func (a *Allowlist) Apply(cfg *Config) {
	cfg.PathAllowList = append(cfg.PathAllowList, a.Paths...)
	cfg.AllowList = append(cfg.AllowList, a.Regexes...)
}

func mergeFile(dst *Allowlist, path string) error {
	loaded, err := loadTOML(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	dst.Paths = append(dst.Paths, loaded.Paths...)
	dst.Regexes = append(dst.Regexes, loaded.Regexes...)
	return nil
}

// loadTOML loads and validates a single allowlist file.
func loadTOML(path string) (*Allowlist, error) {
	var file struct {
		Allowlist struct {
			Paths   []string
			Regexes []string
		}
	}

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("invalid allowlist %s: %w", path, err)
	}

	for _, pattern := range file.Allowlist.Paths {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("invalid path pattern %q in %s: %w", pattern, path, err)
		}
	}
	for _, pattern := range file.Allowlist.Regexes {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("invalid content pattern %q in %s: %w", pattern, path, err)
		}
	}

	return &Allowlist{
		Paths:   file.Allowlist.Paths,
		Regexes: file.Allowlist.Regexes,
	}, nil
}
