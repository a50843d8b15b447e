package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present even when they match a default
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"JWT_SECRET",
}

// ValidateEnv checks the .env schema version and that every required variable is set.
// Call it after Load so values from .env are visible.
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Warnings reports settings that load fine but are unsafe or likely mistakes
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD uses the example value")
	}
	if c.APIKey == ExampleSecret {
		warnings = append(warnings, "API_KEY uses the example value; generate one with: openssl rand -hex 32")
	}
	if c.JWTSecret == ExampleSecret {
		warnings = append(warnings, "JWT_SECRET uses the example value; generate one with: openssl rand -hex 32")
	}
	if c.AccessTokenTTL >= c.RefreshTokenTTL {
		warnings = append(warnings, fmt.Sprintf("ACCESS_TOKEN_TTL (%s) is not shorter than REFRESH_TOKEN_TTL (%s)", c.AccessTokenTTL, c.RefreshTokenTTL))
	}

	if !c.IsProduction() {
		return warnings
	}
	if len(c.TrustedProxies) == 0 {
		warnings = append(warnings, "TRUSTED_PROXIES is empty; client IPs behind a load balancer will be the proxy address")
	}
	if u, err := url.Parse(c.PasswordResetURL); err != nil || u.Hostname() == "localhost" || u.Scheme != "https" {
		warnings = append(warnings, "PASSWORD_RESET_URL should be a public https URL in production")
	}
	if strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, "LOG_LEVEL is debug in production")
	}
	return warnings
}
