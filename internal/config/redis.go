package config

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from the environment and probes
// it once.  Redis backs the API rate limiter and the venue-listing
// cache; both degrade to pass-through when this returns nil, so a
// missing Redis never blocks bookings.
//
// REDIS_URL takes precedence when set (redis:// or rediss:// form);
// otherwise REDIS_HOST, REDIS_PORT, REDIS_PASSWORD, REDIS_DB and
// REDIS_TLS are read individually.
func NewRedisClient() *redis.Client {
	opts := redisOptions()
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping %s failed: %v", opts.Addr, err)
		client.Close()
		return nil
	}
	return client
}

func redisOptions() *redis.Options {
	if raw := os.Getenv("REDIS_URL"); raw != "" {
		if opts, err := redis.ParseURL(raw); err == nil {
			return opts
		}
		log.Printf("invalid REDIS_URL, falling back to host/port variables")
	}
	opts := &redis.Options{
		Addr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       atoi(getenv("REDIS_DB", "0")),
	}
	if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}
