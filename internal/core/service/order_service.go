package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type OrderService struct {
	backend ports.BackendClient
	logger  zerolog.Logger
}

func NewOrderService(backend ports.BackendClient, logger zerolog.Logger) *OrderService {
	return &OrderService{backend: backend, logger: logger}
}

// Orders lists the client's posted service requests.
func (s *OrderService) Orders(ctx context.Context, token string) ([]domain.Service, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.ClientServices == nil {
		return []domain.Service{}, nil
	}
	return user.ClientServices, nil
}

// Create posts a new service request.
func (s *OrderService) Create(ctx context.Context, token string, input ports.CreateServiceInput) (*domain.Service, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" ||
		input.Urgency == "" || input.Address == "" {
		return nil, domain.Invalid("Preencha todos os campos do pedido.")
	}

	svc, err := s.backend.CreateService(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", svc.ID).Str("category", svc.Category).Msg("service created")
	return svc, nil
}

// Cancel deletes the order upstream and returns the caller's list with the
// cancelled entry removed; no re-fetch, the delete response is trusted.
func (s *OrderService) Cancel(ctx context.Context, token, serviceID string, current []domain.Service) ([]domain.Service, error) {
	if err := s.backend.DeleteService(ctx, token, serviceID); err != nil {
		return current, err
	}

	remaining := make([]domain.Service, 0, len(current))
	for _, svc := range current {
		if svc.ID != serviceID {
			remaining = append(remaining, svc)
		}
	}
	s.logger.Info().Str("service_id", serviceID).Msg("order cancelled")
	return remaining, nil
}
