// Package redis holds the gateway's Redis plumbing: the shared connection
// plus the resend-cooldown keeper and the area-taxonomy cache built on it.
// The gateway runs without Redis; callers treat a failed Connect as a
// degraded mode, not a fatal one.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config mirrors the REDIS_* settings of the gateway configuration.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens the shared client and verifies it with a ping so a bad
// address is reported at startup instead of on the first cooldown check.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
