package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// RepoConfigName is the per-repository config file looked up in the
// working-tree root.
const RepoConfigName = ".gitscan.yaml"

const envPrefix = "GITSCAN_"

// Load builds the configuration with the usual precedence: environment
// variables over the YAML file over defaults.
//
// configPath names an explicit YAML file; when empty, the repository's
// .gitscan.yaml is tried, then ~/.config/gitscan/config.yaml. A missing
// file is fine; an unparseable one is an error (a typo should not silently
// disable guardrails).
func Load(configPath, repoRoot string) (*Config, error) {
	k := koanf.New(".")

	path, err := resolvePath(configPath, repoRoot)
	if err != nil {
		return nil, err
	}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// GITSCAN_LOG_LEVEL -> log.level, GITSCAN_DEEP -> deep,
	// GITSCAN_SECRETS_USER_ALLOWLIST -> secrets.user_allowlist.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		section, field, found := strings.Cut(lower, "_")
		if !found {
			return lower
		}
		return section + "." + field
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// resolvePath picks the config file to read. Explicit paths must exist;
// discovered ones may be absent.
func resolvePath(configPath, repoRoot string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return configPath, nil
	}

	if repoRoot != "" {
		candidate := filepath.Join(repoRoot, RepoConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".config", "gitscan", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}
