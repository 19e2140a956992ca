// Package config resolves process-wide configuration once at startup.
// Components receive the resulting Config by injection; nothing reads
// environment variables at request time.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the immutable runtime configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs access tokens. May be empty: the server still
	// boots, but token issuance fails until it is set.
	JWTSecret string

	// AllowedOrigins is the CORS allow list, from the comma-separated
	// ORIGIN variable.
	AllowedOrigins []string
}

// Load builds the configuration from the environment, reading a .env file
// first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5051"))
	if err != nil {
		port = 5051
	}

	return &Config{
		Port:           port,
		DBPath:         getEnv("DB_PATH", "./data/tiffins.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitOrigins(getEnv("ORIGIN", "http://localhost:5173")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
