package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// FeedPage is the professional opportunity feed view: the jobs page plus the
// pagination mirrors taken verbatim from the backend response.
type FeedPage struct {
	Areas      []string         `json:"areas"`
	Jobs       []domain.Service `json:"jobs"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// JobDetail is a single service request together with its creator's public
// profile. Contact fields are populated only when already unlocked.
type JobDetail struct {
	Job         domain.Service `json:"job"`
	Client      *domain.User   `json:"client,omitempty"`
	WhatsAppURL string         `json:"whatsAppUrl,omitempty"`
}

// FeedService serves the professional-facing listing and detail screens.
// knownTotalPages is the caller's mirror of the last response's totalPages,
// used only to clamp out-of-range page requests before they are sent; zero
// means no previous response.
type FeedService interface {
	Opportunities(ctx context.Context, token string, page, knownTotalPages int) (*FeedPage, error)
	JobDetail(ctx context.Context, token, serviceID string) (*JobDetail, error)
	Unlock(ctx context.Context, token, serviceID string) (*UnlockResult, error)
}
