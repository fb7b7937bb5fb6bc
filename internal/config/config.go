package config

import (
	"log"
	"os"
	"strconv"
)

// Config carries the core runtime settings: where to listen, how to
// reach MySQL and how expensive password hashing should be.  Redis,
// cache and rate-limit settings have their own loaders in this
// package.
type Config struct {
	Env        string // dev, test or prod
	Port       string
	DBUser     string
	DBPass     string
	DBHost     string
	DBPort     string
	DBName     string
	BcryptCost int
}

// Load reads the required environment variables and exits the process
// when one is missing.  Failing at startup beats serving requests with
// a half-formed configuration.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		DBUser:     must("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"), // empty password allowed for local MySQL
		DBHost:     must("DB_HOST"),
		DBPort:     must("DB_PORT"),
		DBName:     must("DB_NAME"),
		BcryptCost: mustInt("BCRYPT_COST"),
	}
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required env %s", key)
	}
	return v
}

func mustInt(key string) int {
	n, err := strconv.Atoi(must(key))
	if err != nil {
		log.Fatalf("env %s must be an integer: %v", key, err)
	}
	return n
}
