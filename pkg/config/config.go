package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

type Config struct {
	BaseURL            string
	HTTPTimeoutSeconds int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:            getEnv("CHEFNEXT_BASE_URL", transport.DefaultBaseURL),
		HTTPTimeoutSeconds: getEnvInt("CHEFNEXT_HTTP_TIMEOUT_SECONDS", 30),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
