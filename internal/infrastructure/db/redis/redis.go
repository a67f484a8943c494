// Package redis connects the API to its Redis instance and hosts the
// fixed-window rate limiter that protects the public routes.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second

	// Throttle defaults applied when the configuration leaves them unset,
	// matching the API-wide limit of 100 requests per 15 minutes.
	defaultLimit  = 100
	defaultWindow = 15 * time.Minute

	// keyPrefix namespaces limiter counters so they can coexist with any
	// other keys in the same database.
	keyPrefix = "ratelimit"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr        string
	DB          int
	DialTimeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default dial timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
