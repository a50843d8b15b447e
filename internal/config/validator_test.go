package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	for _, envVar := range RequiredEnvVars {
		t.Setenv(envVar, "test_value")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestValidateEnv(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		clearEnvVars(t)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})

	t.Run("missing required", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required environment variables")
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("all set", func(t *testing.T) {
		clearEnvVars(t)
		setRequired(t)

		assert.NoError(t, ValidateEnv())
	})
}

func safeConfig() *Config {
	return &Config{
		Environment:      EnvDev,
		LogLevel:         "info",
		DBPassword:       "s3cret",
		APIKey:           "admin-key",
		JWTSecret:        testJWTSecret,
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		PasswordResetURL: "http://localhost:3000/reset-password",
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		contains []string
	}{
		{
			name:   "safe dev config",
			modify: func(c *Config) {},
		},
		{
			name: "example values",
			modify: func(c *Config) {
				c.DBPassword = ExampleDBPassword
				c.APIKey = ExampleSecret
				c.JWTSecret = ExampleSecret
			},
			contains: []string{"DB_PASSWORD", "API_KEY", "JWT_SECRET"},
		},
		{
			name: "access token outlives refresh token",
			modify: func(c *Config) {
				c.AccessTokenTTL = 8 * 24 * time.Hour
			},
			contains: []string{"ACCESS_TOKEN_TTL"},
		},
		{
			name: "production defaults",
			modify: func(c *Config) {
				c.Environment = EnvProduction
				c.LogLevel = "DEBUG"
			},
			contains: []string{"TRUSTED_PROXIES", "PASSWORD_RESET_URL", "LOG_LEVEL"},
		},
		{
			name: "hardened production",
			modify: func(c *Config) {
				c.Environment = EnvProduction
				c.TrustedProxies = []string{"10.0.0.1"}
				c.PasswordResetURL = "https://chorequest.example.com/reset-password"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := safeConfig()
			tt.modify(cfg)

			warnings := cfg.Warnings()
			require.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}
