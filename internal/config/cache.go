package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CacheConfig controls the Redis-backed response cache on the venue
// listing.  With Enabled false, or no Redis client at runtime, the
// cache middleware is a pass-through.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool // HTTP methods worth caching, normally GET only
	TTL          time.Duration
	Prefix       string // key namespace
	MaxBodyBytes int    // responses larger than this are not stored
}

// LoadCacheConfig builds the cache settings from the environment with
// defaults tuned for venue browsing: a 30 second TTL and bodies up to
// 1 MiB.
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		Methods:      make(map[string]bool),
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "wedspace:cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
	for _, m := range strings.Split(getenv("CACHE_METHODS", "GET"), ",") {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
			cfg.Methods[m] = true
		}
	}
	return cfg
}

// Env helpers shared by the cache, rate-limit and Redis loaders.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
