package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownKeeper rate-limits confirmation-code and password-reset resends.
// Key format: cooldown:<kind>:<email>
type CooldownKeeper struct {
	client *redis.Client
}

// NewCooldownKeeper creates a CooldownKeeper wrapping the given Redis client.
func NewCooldownKeeper(client *redis.Client) *CooldownKeeper {
	return &CooldownKeeper{client: client}
}

// Acquire attempts to start a cooldown window. It returns false when a
// previous acquisition for the same kind and email is still within ttl.
func (k *CooldownKeeper) Acquire(ctx context.Context, kind, email string, ttl time.Duration) (bool, error) {
	ok, err := k.client.SetNX(ctx, k.key(kind, email), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown acquire: %w", err)
	}
	return ok, nil
}

// Remaining reports how long the active cooldown still has to run; zero when
// none is active.
func (k *CooldownKeeper) Remaining(ctx context.Context, kind, email string) (time.Duration, error) {
	ttl, err := k.client.TTL(ctx, k.key(kind, email)).Result()
	if err != nil {
		return 0, fmt.Errorf("cooldown remaining: %w", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func (k *CooldownKeeper) key(kind, email string) string {
	return fmt.Sprintf("cooldown:%s:%s", kind, email)
}
