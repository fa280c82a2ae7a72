package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings, read from the environment
// with a .env file as a convenience for local runs.
type ServerConfig struct {
	Addr            string
	RedisAddr       string // empty disables the Redis scenario store
	RateLimitPerMin int
	ShutdownTimeout time.Duration
}

// LoadServerConfig reads server settings from the environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over it.
func LoadServerConfig() ServerConfig {
	_ = godotenv.Load()

	cfg := ServerConfig{
		Addr:            getenv("MORTCALC_ADDR", ":8080"),
		RedisAddr:       os.Getenv("MORTCALC_REDIS_ADDR"),
		RateLimitPerMin: 120,
		ShutdownTimeout: 10 * time.Second,
	}
	if v := os.Getenv("MORTCALC_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitPerMin = n
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
