package secrets

import "strings"

// maskLen caps the number of asterisks in an excerpt so masked output does
// not betray the secret's exact length.
const maskLen = 8

// Mask renders a secret safe for display: at most reveal leading characters
// stay visible, the rest collapses to a fixed-width mask. The full literal
// never appears in the result.
func Mask(secret string, reveal int) string {
	if reveal < 0 {
		reveal = 0
	}
	if len(secret) <= reveal {
		return strings.Repeat("*", len(secret))
	}
	return secret[:reveal] + strings.Repeat("*", maskLen)
}
