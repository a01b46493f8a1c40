// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// DatabaseURL selects the postgres-backed record store when set; the
	// in-memory seeded store is used otherwise (dev mode).
	DatabaseURL string

	// RedisURL enables the country reference-data cache when set.
	RedisURL string

	// StaticCategoryFile optionally overrides the built-in placeholder
	// completion data for scoring categories (YAML, see
	// score.NewStaticDataProviderFromFile).
	StaticCategoryFile string
}

// CountryCacheTTL bounds staleness of cached country reference data. The
// upstream table changes rarely; an hour keeps risk flags fresh enough.
var CountryCacheTTL = time.Hour

// RedisConfig carries connection tuning for the reference-data cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("VERITAS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:               addr,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		StaticCategoryFile: os.Getenv("STATIC_CATEGORY_FILE"),
	}
}

// Redis returns redis connection settings with sane pool defaults.
func (s Server) Redis() RedisConfig {
	return RedisConfig{
		URL:          s.RedisURL,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}
