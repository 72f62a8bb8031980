package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration
	// DeleteCascade selects the folder delete policy: "shallow" (the
	// compatible default, direct children only) or "recursive".
	DeleteCascade string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:   getEnv("TABLE_PREFIX", ""),
		SessionTTL:    getDurationEnv("SESSION_TTL", 720*time.Hour),
		DeleteCascade: getEnv("DELETE_CASCADE", "shallow"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
