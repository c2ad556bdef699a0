package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// ClientHome is the client dashboard landing view.
type ClientHome struct {
	User     *domain.User     `json:"user"`
	Services []domain.Service `json:"services"`
}

// InterestedProfessional is one professional on the client's unlocked-orders
// screen, with a ready-to-open contact link.
type InterestedProfessional struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	WhatsAppURL string `json:"whatsAppUrl,omitempty"`
}

// UnlockedOrder groups one posted order with the professionals who unlocked
// it.
type UnlockedOrder struct {
	Order         domain.Service           `json:"order"`
	Professionals []InterestedProfessional `json:"professionals"`
}

// AccountService projects the current profile into the per-screen views the
// dashboards render. Everything is a fresh Me round trip; nothing is cached.
type AccountService interface {
	ClientHome(ctx context.Context, token string) (*ClientHome, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
	UnlockedJobs(ctx context.Context, token string) ([]domain.Service, error)
	UnlockedOrders(ctx context.Context, token string) ([]UnlockedOrder, error)
}
