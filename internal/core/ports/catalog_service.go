package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// CatalogService serves the fixed professional-area taxonomy used by the
// registration wizard and feed filtering.
type CatalogService interface {
	Areas(ctx context.Context) ([]domain.ProfessionalArea, error)
}
