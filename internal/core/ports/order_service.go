package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// OrderService covers the client side: posting service requests and managing
// the posted list.
type OrderService interface {
	Orders(ctx context.Context, token string) ([]domain.Service, error)
	Create(ctx context.Context, token string, input CreateServiceInput) (*domain.Service, error)
	// Cancel deletes the order upstream and returns the given list with the
	// cancelled order removed, so callers update their view without a
	// re-fetch.
	Cancel(ctx context.Context, token, serviceID string, current []domain.Service) ([]domain.Service, error)
}
