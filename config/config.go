// Package config loads pathviz settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Addr        string        // listen address for the HTTP API
	LogLevel    string        // debug, info, warn or error
	LogFormat   string        // text or json
	RedisAddr   string        // Redis address; empty selects the in-memory cache
	CacheTTL    time.Duration // expiry of Redis cache entries
	CacheSize   int           // capacity of the in-memory cache
	MaxCells    int           // largest grid the API accepts
	StreamDelay time.Duration // default per-step delay of the SSE endpoint
	GinMode     string        // release, debug or test
}

// Load reads .env from the working directory if present, then builds a
// Config from the environment. Unset variables fall back to their defaults.
func Load() (Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env files. Missing files are skipped.
// Variables already set in the process environment take precedence.
func LoadFiles(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	var err error
	cfg := Config{
		Addr:      getEnvWithDefault("PATHVIZ_ADDR", ":8080"),
		LogLevel:  getEnvWithDefault("PATHVIZ_LOG_LEVEL", "info"),
		LogFormat: getEnvWithDefault("PATHVIZ_LOG_FORMAT", "text"),
		RedisAddr: getEnvWithDefault("PATHVIZ_REDIS_ADDR", ""),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("%w: GIN_MODE=%q must be %s, %s or %s",
			ErrInvalidValue, cfg.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	if cfg.CacheTTL, err = getEnvAsDuration("PATHVIZ_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize, err = getEnvAsInt("PATHVIZ_CACHE_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsInt("PATHVIZ_MAX_CELLS", 10000); err != nil {
		return Config{}, err
	}
	if cfg.StreamDelay, err = getEnvAsDuration("PATHVIZ_STREAM_DELAY", 0); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses a non-negative integer variable.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidValue, key, raw)
	}
	return v, nil
}

// getEnvAsDuration parses a non-negative Go duration variable.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative duration", ErrInvalidValue, key, raw)
	}
	return v, nil
}
