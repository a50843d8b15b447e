package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"chorequest"`
	Version     string `env:"VERSION" envDefault:"dev"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"chorequest"`
	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	APIKey           string        `env:"API_KEY"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"chorequest"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	ResetTokenTTL    time.Duration `env:"RESET_TOKEN_TTL" envDefault:"30m"`
	PasswordResetURL string        `env:"PASSWORD_RESET_URL" envDefault:"http://localhost:3000/reset-password"`
	TrustedProxies   []string      `env:"TRUSTED_PROXIES" envSeparator:","`

	ItemsConfigPath      string        `env:"ITEMS_CONFIG_PATH" envDefault:"configs/items.json"`
	LootTablesConfigPath string        `env:"LOOT_TABLES_CONFIG_PATH" envDefault:"configs/loot_tables.json"`
	ItemCacheSize        int           `env:"ITEM_CACHE_SIZE" envDefault:"256"`
	ItemCacheTTL         time.Duration `env:"ITEM_CACHE_TTL" envDefault:"10m"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d", cfg.Port)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}
	if cfg.ItemCacheSize <= 0 {
		return nil, fmt.Errorf("invalid ITEM_CACHE_SIZE value: %d", cfg.ItemCacheSize)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
