package config

const (
	// Configuration file paths
	ConfigPathItems      = "configs/items.json"
	ConfigPathLootTables = "configs/loot_tables.json"
)

// Environment names
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// MinJWTSecretLength is the shortest HS256 signing secret accepted, in bytes
const MinJWTSecretLength = 32

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleSecret     = "generate_with_openssl_rand_hex_32"
)
