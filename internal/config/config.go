package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	RedisURL   string
	LogLevel   string
	LogFormat  string
	XAPIKey    string
	XAPISecret string
}

func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "3001"),
		RedisURL:   getEnv("REDIS_URL", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		XAPIKey:    getEnv("X_API_KEY", ""),
		XAPISecret: getEnv("X_API_SECRET", ""),
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	// X credentials: both must be set together
	if (cfg.XAPIKey == "") != (cfg.XAPISecret == "") {
		return nil, fmt.Errorf("X_API_KEY and X_API_SECRET must be set together")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
