package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

type stubAreaCache struct {
	stored []domain.ProfessionalArea
	getErr error
	setErr error
	sets   int
}

func (s *stubAreaCache) Get(_ context.Context) ([]domain.ProfessionalArea, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *stubAreaCache) Set(_ context.Context, areas []domain.ProfessionalArea) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.stored = areas
	s.sets++
	return nil
}

func taxonomy() []domain.ProfessionalArea {
	return []domain.ProfessionalArea{{ID: "1", Name: "Eletricista"}, {ID: "2", Name: "Encanador"}}
}

func TestCatalogService_Areas_CacheHitSkipsBackend(t *testing.T) {
	called := false
	backend := &stubBackend{
		listAreasFn: func() ([]domain.ProfessionalArea, error) { called = true; return nil, nil },
	}
	cache := &stubAreaCache{stored: taxonomy()}
	svc := NewCatalogService(backend, cache, zerolog.Nop())

	areas, err := svc.Areas(context.Background())
	if err != nil {
		t.Fatalf("Areas returned error: %v", err)
	}
	if called {
		t.Fatalf("cache hit must not reach the backend")
	}
	if len(areas) != 2 {
		t.Fatalf("unexpected areas: %v", areas)
	}
}

func TestCatalogService_Areas_CacheMissFillsCache(t *testing.T) {
	backend := &stubBackend{
		listAreasFn: func() ([]domain.ProfessionalArea, error) { return taxonomy(), nil },
	}
	cache := &stubAreaCache{}
	svc := NewCatalogService(backend, cache, zerolog.Nop())

	areas, err := svc.Areas(context.Background())
	if err != nil {
		t.Fatalf("Areas returned error: %v", err)
	}
	if len(areas) != 2 {
		t.Fatalf("unexpected areas: %v", areas)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}
}

func TestCatalogService_Areas_CacheFailureDegrades(t *testing.T) {
	backend := &stubBackend{
		listAreasFn: func() ([]domain.ProfessionalArea, error) { return taxonomy(), nil },
	}
	cache := &stubAreaCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewCatalogService(backend, cache, zerolog.Nop())

	areas, err := svc.Areas(context.Background())
	if err != nil {
		t.Fatalf("cache failure must degrade to the backend: %v", err)
	}
	if len(areas) != 2 {
		t.Fatalf("unexpected areas: %v", areas)
	}
}

func TestCatalogService_Areas_NilCache(t *testing.T) {
	backend := &stubBackend{
		listAreasFn: func() ([]domain.ProfessionalArea, error) { return taxonomy(), nil },
	}
	svc := NewCatalogService(backend, nil, zerolog.Nop())

	if _, err := svc.Areas(context.Background()); err != nil {
		t.Fatalf("nil cache must be tolerated: %v", err)
	}
}
