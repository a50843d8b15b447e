package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeUsername trims and case-folds a username for lookup and uniqueness checks
func NormalizeUsername(username string) string {
	// Casers are stateful and not shared
	return cases.Fold().String(strings.TrimSpace(username))
}

// NormalizeEmail trims and case-folds an email address
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
