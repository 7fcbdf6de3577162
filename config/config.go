package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-dashboard/platform"
)

// Config holds everything the dashboard reads from the environment.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// TokenSecret verifies operator session tokens locally before any
	// platform call is made.
	TokenSecret string

	CORSOrigins []string

	Platform platform.Config
}

// Load reads the configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		TokenSecret: os.Getenv("TOKEN_SECRET"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		Platform: platform.Config{
			BaseURL: getEnv("PLATFORM_API_URL", "http://localhost:9000"),
			Timeout: time.Duration(getEnvInt("PLATFORM_TIMEOUT_SEC", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
