package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string

	// CORSAllowOrigins is the comma-separated list of allowed origins.
	CORSAllowOrigins []string

	// DefaultTaxYear is the fiscal year assumed when a request does not
	// carry one. It must have a registered tax parameter set.
	DefaultTaxYear int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DEFAULT_TAX_YEAR", 2024)

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	origins := viper.GetString("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, origin := range strings.Split(origins, ",") {
		cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, strings.TrimSpace(origin))
	}

	cfg.DefaultTaxYear = viper.GetInt("DEFAULT_TAX_YEAR")
	if cfg.DefaultTaxYear == 0 {
		cfg.DefaultTaxYear = 2024
		log.Printf("Warning: DEFAULT_TAX_YEAR not set. Defaulting to %d.\n", cfg.DefaultTaxYear)
	}

	return cfg, nil
}
