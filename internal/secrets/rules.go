package secrets

// DefaultRules returns the built-in detection table, version RulesVersion.
// Rules are tried in order; the first match on a line wins, so the more
// specific provider patterns come before the generic assignment catch-alls.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:          "aws-access-key-id",
			Description: "AWS Access Key ID",
			Pattern:     `(?:A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|ASIA)[A-Z0-9]{16}`,
		},
		{
			ID:          "aws-secret-access-key",
			Description: "AWS Secret Access Key",
			Pattern:     `(?i)(?:aws_secret_access_key|aws_secret_key|secret_access_key)\s*[:=]\s*['"]?([A-Za-z0-9/+=]{20,})['"]?`,
			Keywords:    []string{"aws", "secret"},
		},
		{
			ID:          "github-token",
			Description: "GitHub Token",
			Pattern:     `gh[pousr]_[A-Za-z0-9]{36,}`,
		},
		{
			ID:          "github-fine-grained",
			Description: "GitHub Fine-grained Personal Access Token",
			Pattern:     `github_pat_[A-Za-z0-9_]{22,}`,
		},
		{
			ID:          "gitlab-token",
			Description: "GitLab Personal Access Token",
			Pattern:     `glpat-[A-Za-z0-9\-]{20,}`,
		},
		{
			ID:          "slack-token",
			Description: "Slack Token",
			Pattern:     `xox[abprs]-[A-Za-z0-9\-]{10,48}`,
		},
		{
			ID:          "stripe-key",
			Description: "Stripe API Key",
			Pattern:     `(?:sk|pk)_(?:live|test)_[A-Za-z0-9]{24,}`,
		},
		{
			ID:          "npm-token",
			Description: "npm Access Token",
			Pattern:     `npm_[A-Za-z0-9]{36}`,
		},
		{
			ID:          "private-key",
			Description: "Private Key Block",
			Pattern:     `-----BEGIN (?:RSA |DSA |EC |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`,
		},
		{
			ID:          "jwt",
			Description: "JSON Web Token",
			Pattern:     `eyJ[A-Za-z0-9_-]{8,}\.eyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]+`,
		},
		{
			ID:          "database-url",
			Description: "Database URL with embedded credentials",
			Pattern:     `(?i)(?:postgres|postgresql|mysql|mongodb|redis|amqp)://[^:\s]+:([^@\s]+)@[^\s]+`,
		},
		{
			ID:          "env-credential",
			Description: "Environment variable with credential value",
			Pattern:     `(?i)(?:^|[^A-Za-z0-9_])(?:DB_PASSWORD|DATABASE_PASSWORD|POSTGRES_PASSWORD|MYSQL_PASSWORD|REDIS_PASSWORD|API_SECRET|APP_SECRET|SECRET_KEY|ENCRYPTION_KEY|AUTH_TOKEN|ACCESS_TOKEN|REFRESH_TOKEN)\s*[:=]\s*['"]?([^\s'"]{8,})['"]?`,
		},
		{
			ID:          "generic-secret",
			Description: "Generic secret assignment",
			Pattern:     `(?i)(?:secret|password|token|api[_-]?key)\s*[:=]\s*['"]?([A-Za-z0-9_\-/.+=]{20,})['"]?`,
			Keywords:    []string{"secret", "password", "token", "key"},
		},
	}
}
