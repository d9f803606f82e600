package config

import (
	"os"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "hotel.db"
	defaultLanguage    = "ru"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	// DefaultLanguage is the fallback label language for report exports.
	DefaultLanguage string
}

func Load() *Config {
	cfg := &Config{
		AppEnv:          strings.ToLower(envOrDefault("APP_ENV", "dev")),
		Port:            envOrDefault("PORT", defaultPort),
		DatabaseURL:     envOrDefault("DATABASE_URL", defaultDatabaseURL),
		DefaultLanguage: strings.ToLower(envOrDefault("REPORT_LANGUAGE", defaultLanguage)),
	}
	return cfg
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}
