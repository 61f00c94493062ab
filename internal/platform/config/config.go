package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	EnableDBCheck bool

	// Exchange rate gateway settings.
	RateCacheTTL       time.Duration
	RateGatewayTimeout time.Duration
	RateGatewayBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_CACHE_TTL", "6h")
	viper.SetDefault("RATE_GATEWAY_TIMEOUT", "5s")
	viper.SetDefault("RATE_GATEWAY_BASE_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		RateCacheTTL:       viper.GetDuration("RATE_CACHE_TTL"),
		RateGatewayTimeout: viper.GetDuration("RATE_GATEWAY_TIMEOUT"),
		RateGatewayBaseURL: viper.GetString("RATE_GATEWAY_BASE_URL"),
	}

	return cfg, nil
}
