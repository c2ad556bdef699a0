package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type CatalogService struct {
	backend ports.BackendClient
	cache   ports.AreaCache
	logger  zerolog.Logger
}

func NewCatalogService(backend ports.BackendClient, cache ports.AreaCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{backend: backend, cache: cache, logger: logger}
}

// Areas returns the professional-area taxonomy, serving from the cache when
// possible. Cache failures degrade to a direct backend call.
func (s *CatalogService) Areas(ctx context.Context) ([]domain.ProfessionalArea, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("area cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	areas, err := s.backend.ListProfessionalAreas(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, areas); err != nil {
			s.logger.Error().Err(err).Msg("area cache write failed")
		}
	}
	return areas, nil
}
