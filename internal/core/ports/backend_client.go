package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// RegisterInput is the full payload accumulated by the registration wizard.
type RegisterInput struct {
	UserName             string   `json:"userName"`
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	UserType             int      `json:"userType"`
	ProfileImageURL      string   `json:"profileImageUrl,omitempty"`
	Street               string   `json:"street"`
	Number               string   `json:"number"`
	Complement           string   `json:"complement,omitempty"`
	ZipCode              string   `json:"zipCode"`
	City                 string   `json:"city"`
	State                string   `json:"state"`
	Phone                string   `json:"phone"`
	UserProfessionalArea []string `json:"userProfessionalArea"`
}

// LoginResult is the normalised login response. The backend has shipped the
// token and role under several field names over time; the client flattens
// them into one shape at the boundary.
type LoginResult struct {
	Token  string
	Role   string
	UserID string
}

// CreateServiceInput carries a new service request posted by a client.
type CreateServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
	Address     string `json:"address"`
}

// SearchQuery selects a page of the professional opportunity feed.
type SearchQuery struct {
	Categories []string
	Page       int
	PageSize   int
}

// SearchResult mirrors the backend's paginated collection verbatim; the
// server is the source of truth for pagination state.
type SearchResult struct {
	Items      []domain.Service `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// UnlockResult is the contact revealed after a successful unlock.
type UnlockResult struct {
	ContactPhone     string `json:"contactPhone"`
	ContactEmail     string `json:"contactEmail"`
	RemainingCredits int    `json:"remainingCredits"`
}

// PixChargeInput requests a PIX QR code for a credit pack purchase.
type PixChargeInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Product    string `json:"product"`
	Quantity   int    `json:"quantity"`
	UnitAmount int    `json:"unitAmount"`
	Price      int    `json:"price"`
}

// BackendClient is the typed outbound client for the Freelaverse backend
// REST API. Every call is one request/response round trip; auth-requiring
// operations take the session's bearer token explicitly.
type BackendClient interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ConfirmEmail(ctx context.Context, email, code string) (string, error)
	ResendConfirmationCode(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error

	Me(ctx context.Context, token string) (*domain.User, error)
	GetUser(ctx context.Context, token, userID string) (*domain.User, error)

	CreateService(ctx context.Context, token string, input CreateServiceInput) (*domain.Service, error)
	GetService(ctx context.Context, token, serviceID string) (*domain.Service, error)
	SearchServices(ctx context.Context, token string, query SearchQuery) (*SearchResult, error)
	DeleteService(ctx context.Context, token, serviceID string) error
	UnlockService(ctx context.Context, token, serviceID string) (*UnlockResult, error)

	ListProfessionalAreas(ctx context.Context) ([]domain.ProfessionalArea, error)

	CreatePixCharge(ctx context.Context, token string, input PixChargeInput) (*domain.PixCharge, error)
	CreateSubscriptionCheckout(ctx context.Context, token string) (*domain.SubscriptionCheckout, error)
}
