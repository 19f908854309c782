package secrets

import (
	"fmt"
	"regexp"
)

const (
	// RulesVersion identifies the built-in pattern table. Bump when rules
	// are added or changed so scan output stays attributable.
	RulesVersion = "2026.08"

	// DefaultRevealWindow is how many leading characters of a matched
	// secret may appear in evidence.
	DefaultRevealWindow = 4
)

// Config configures the scanner.
type Config struct {
	// Enabled controls whether scanning is active (default: true).
	Enabled bool `koanf:"enabled"`

	// Rules defines the content detection rules.
	Rules []Rule `koanf:"rules"`

	// RevealWindow is the default number of leading secret characters kept
	// visible in evidence. Rules may override it.
	RevealWindow int `koanf:"reveal_window"`

	// AllowList contains content regex patterns whose matches are skipped.
	AllowList []string `koanf:"allow_list"`

	// PathAllowList contains path regex patterns; matching files are not
	// scanned at all.
	PathAllowList []string `koanf:"path_allow_list"`

	// CueBasenames, CuePrefixes and CueSuffixes flag files by name alone,
	// without reading content.
	CueBasenames []string `koanf:"cue_basenames"`
	CuePrefixes  []string `koanf:"cue_prefixes"`
	CueSuffixes  []string `koanf:"cue_suffixes"`

	// compiled patterns (populated by Validate)
	compiledRules     []*compiledRule
	compiledAllowList []*regexp.Regexp
	compiledPathAllow []*regexp.Regexp
}

// Rule defines a single content detection rule.
type Rule struct {
	// ID is the unique identifier for this rule.
	ID string `koanf:"id"`

	// Description explains what this rule detects.
	Description string `koanf:"description"`

	// Pattern is the regex applied per line. If it contains a capture
	// group, group 1 is treated as the secret value for masking.
	Pattern string `koanf:"pattern"`

	// Keywords are optional case-insensitive gates; when present, at least
	// one must occur on the line before the pattern is tried.
	Keywords []string `koanf:"keywords"`

	// RevealWindow overrides the config default when > 0.
	RevealWindow int `koanf:"reveal_window"`
}

type compiledRule struct {
	Rule
	pattern  *regexp.Regexp
	keywords []*regexp.Regexp
}

// DefaultConfig returns a configuration with the built-in rule table and
// filename cues.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		RevealWindow: DefaultRevealWindow,
		Rules:        DefaultRules(),
		CueBasenames: []string{"id_rsa", "id_dsa", "id_ecdsa", "id_ed25519"},
		CuePrefixes:  []string{".env"},
		CueSuffixes:  []string{".pem", ".key", ".p12", ".pfx"},
	}
}

// Validate validates and compiles the configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.RevealWindow <= 0 {
		c.RevealWindow = DefaultRevealWindow
	}

	c.compiledRules = make([]*compiledRule, 0, len(c.Rules))
	for i, rule := range c.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rule %d: ID is required", i)
		}
		if rule.Pattern == "" {
			return fmt.Errorf("rule %s: pattern is required", rule.ID)
		}

		pattern, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("rule %s: invalid pattern: %w", rule.ID, err)
		}

		compiled := &compiledRule{
			Rule:     rule,
			pattern:  pattern,
			keywords: make([]*regexp.Regexp, 0, len(rule.Keywords)),
		}
		for _, kw := range rule.Keywords {
			kwPattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(kw))
			if err != nil {
				return fmt.Errorf("rule %s: invalid keyword %q: %w", rule.ID, kw, err)
			}
			compiled.keywords = append(compiled.keywords, kwPattern)
		}
		c.compiledRules = append(c.compiledRules, compiled)
	}

	c.compiledAllowList = make([]*regexp.Regexp, 0, len(c.AllowList))
	for i, pattern := range c.AllowList {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("allow_list %d: invalid pattern: %w", i, err)
		}
		c.compiledAllowList = append(c.compiledAllowList, compiled)
	}

	c.compiledPathAllow = make([]*regexp.Regexp, 0, len(c.PathAllowList))
	for i, pattern := range c.PathAllowList {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("path_allow_list %d: invalid pattern: %w", i, err)
		}
		c.compiledPathAllow = append(c.compiledPathAllow, compiled)
	}

	return nil
}

func (r *compiledRule) reveal(fallback int) int {
	if r.RevealWindow > 0 {
		return r.RevealWindow
	}
	return fallback
}
