package ports

import (
	"context"
	"time"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// AreaCache holds the fixed area taxonomy for a short TTL so registration
// and feed screens do not hammer the backend. A miss or a cache failure just
// means a direct call.
type AreaCache interface {
	Get(ctx context.Context) ([]domain.ProfessionalArea, error)
	Set(ctx context.Context, areas []domain.ProfessionalArea) error
}

// CooldownKeeper rate-limits code resends per email. Acquire returns false
// while a previous acquisition is still within ttl.
type CooldownKeeper interface {
	Acquire(ctx context.Context, kind, email string, ttl time.Duration) (bool, error)
	Remaining(ctx context.Context, kind, email string) (time.Duration, error)
}
