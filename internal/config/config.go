// Package config provides configuration loading for gitscan.
package config

import (
	"github.com/fyrsmithlabs/gitscan/internal/logging"
	"github.com/fyrsmithlabs/gitscan/internal/rules"
	"github.com/fyrsmithlabs/gitscan/internal/secrets"
)

// Config is the full tool configuration.
type Config struct {
	// Log configures the stderr logger.
	Log logging.Config `koanf:"log"`

	// Secrets configures the staged-content scanner. Rules listed here are
	// appended to the built-in table.
	Secrets SecretsConfig `koanf:"secrets"`

	// Junk lists extra junk patterns appended to the built-in table.
	Junk JunkConfig `koanf:"junk"`

	// Deep enables the gitleaks engine by default (the --deep flag also
	// enables it per run).
	Deep bool `koanf:"deep"`
}

// SecretsConfig is the user-facing slice of the scanner configuration.
// Extra rules and allowlist entries extend the defaults rather than
// replacing them, so a sparse config file never turns detection off by
// accident.
type SecretsConfig struct {
	ExtraRules    []secrets.Rule `koanf:"extra_rules"`
	AllowList     []string       `koanf:"allow_list"`
	PathAllowList []string       `koanf:"path_allow_list"`
	RevealWindow  int            `koanf:"reveal_window"`

	// UserAllowlist is the path of a user-level allowlist TOML file.
	UserAllowlist string `koanf:"user_allowlist"`
}

// JunkConfig extends the junk-pattern table.
type JunkConfig struct {
	Extra []rules.JunkPattern `koanf:"extra"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: logging.NewDefaultConfig(),
	}
}

// ScannerConfig materializes the effective secrets.Config: built-in table
// plus configured extensions.
func (c *Config) ScannerConfig() *secrets.Config {
	cfg := secrets.DefaultConfig()
	cfg.Rules = append(cfg.Rules, c.Secrets.ExtraRules...)
	cfg.AllowList = append(cfg.AllowList, c.Secrets.AllowList...)
	cfg.PathAllowList = append(cfg.PathAllowList, c.Secrets.PathAllowList...)
	if c.Secrets.RevealWindow > 0 {
		cfg.RevealWindow = c.Secrets.RevealWindow
	}
	return cfg
}

// JunkTable materializes the effective junk table.
func (c *Config) JunkTable() []rules.JunkPattern {
	return append(rules.DefaultJunkTable(), c.Junk.Extra...)
}
