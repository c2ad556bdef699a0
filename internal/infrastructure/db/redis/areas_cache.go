package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

const (
	areasKey = "catalog:professional-areas"
	areasTTL = 10 * time.Minute
)

// AreaCache stores the professional-area taxonomy. The taxonomy is a fixed
// list, so a short TTL is plenty; callers fall back to the backend on any
// miss or failure.
type AreaCache struct {
	client *redis.Client
}

// NewAreaCache creates an AreaCache wrapping the given Redis client.
func NewAreaCache(client *redis.Client) *AreaCache {
	return &AreaCache{client: client}
}

// Get returns the cached taxonomy, or nil on a miss.
func (a *AreaCache) Get(ctx context.Context) ([]domain.ProfessionalArea, error) {
	raw, err := a.client.Get(ctx, areasKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("area cache get: %w", err)
	}

	var areas []domain.ProfessionalArea
	if err := json.Unmarshal(raw, &areas); err != nil {
		return nil, fmt.Errorf("area cache decode: %w", err)
	}
	return areas, nil
}

// Set stores the taxonomy for areasTTL.
func (a *AreaCache) Set(ctx context.Context, areas []domain.ProfessionalArea) error {
	raw, err := json.Marshal(areas)
	if err != nil {
		return fmt.Errorf("area cache encode: %w", err)
	}
	if err := a.client.Set(ctx, areasKey, raw, areasTTL).Err(); err != nil {
		return fmt.Errorf("area cache set: %w", err)
	}
	return nil
}
