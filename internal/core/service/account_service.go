package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type AccountService struct {
	backend ports.BackendClient
	logger  zerolog.Logger
}

func NewAccountService(backend ports.BackendClient, logger zerolog.Logger) *AccountService {
	return &AccountService{backend: backend, logger: logger}
}

// ClientHome is the client dashboard landing view: the profile plus the
// posted services, one Me round trip.
func (s *AccountService) ClientHome(ctx context.Context, token string) (*ports.ClientHome, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	services := user.ClientServices
	if services == nil {
		services = []domain.Service{}
	}
	return &ports.ClientHome{User: user, Services: services}, nil
}

// Profile returns the current user record for the account screens.
func (s *AccountService) Profile(ctx context.Context, token string) (*domain.User, error) {
	return s.backend.Me(ctx, token)
}

// UnlockedOrders lists the client's posted services that professionals have
// unlocked, each with the contact details of the interested professionals.
// Services nobody unlocked yet are filtered out.
func (s *AccountService) UnlockedOrders(ctx context.Context, token string) ([]ports.UnlockedOrder, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	orders := []ports.UnlockedOrder{}
	for _, svc := range user.ClientServices {
		if len(svc.ProfessionalService) == 0 {
			continue
		}
		pros := make([]ports.InterestedProfessional, 0, len(svc.ProfessionalService))
		for _, sp := range svc.ProfessionalService {
			p := ports.InterestedProfessional{ID: sp.ProfessionalID}
			if sp.Professional != nil {
				p.Name = sp.Professional.UserName
				p.Phone = sp.Professional.Phone
				if digits := nonDigits.ReplaceAllString(sp.Professional.Phone, ""); digits != "" {
					p.WhatsAppURL = "https://wa.me/" + digits
				}
			}
			pros = append(pros, p)
		}
		orders = append(orders, ports.UnlockedOrder{Order: svc, Professionals: pros})
	}
	return orders, nil
}

// UnlockedJobs lists the services this professional has already unlocked.
func (s *AccountService) UnlockedJobs(ctx context.Context, token string) ([]domain.Service, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.Service, 0, len(user.ProfessionalService))
	for _, ps := range user.ProfessionalService {
		jobs = append(jobs, ps.Service)
	}
	return jobs, nil
}
