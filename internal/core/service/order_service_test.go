package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

func TestOrderService_Orders_EmptyWithoutServices(t *testing.T) {
	backend := &stubBackend{
		meFn: func(token string) (*domain.User, error) { return &domain.User{ID: "u1", UserType: 1}, nil },
	}
	svc := NewOrderService(backend, zerolog.Nop())

	orders, err := svc.Orders(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Orders returned error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", orders)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(&stubBackend{}, zerolog.Nop())

	input := ports.CreateServiceInput{
		Title:       "Trocar chuveiro",
		Description: "Chuveiro queimou",
		Category:    "Eletricista",
		Urgency:     domain.UrgencyHigh,
		Address:     "Rua das Flores, 120",
	}

	fields := []func(*ports.CreateServiceInput){
		func(i *ports.CreateServiceInput) { i.Title = "" },
		func(i *ports.CreateServiceInput) { i.Description = "" },
		func(i *ports.CreateServiceInput) { i.Category = "" },
		func(i *ports.CreateServiceInput) { i.Urgency = "" },
		func(i *ports.CreateServiceInput) { i.Address = "" },
	}
	for i, clear := range fields {
		broken := input
		clear(&broken)
		var ve *domain.ValidationError
		if _, err := svc.Create(context.Background(), "tok", broken); !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	backend := &stubBackend{
		createSvcFn: func(input ports.CreateServiceInput) (*domain.Service, error) {
			return &domain.Service{ID: "s9", Title: input.Title, Category: input.Category}, nil
		},
	}
	svc := NewOrderService(backend, zerolog.Nop())

	created, err := svc.Create(context.Background(), "tok", ports.CreateServiceInput{
		Title:       "Trocar chuveiro",
		Description: "Chuveiro queimou",
		Category:    "Eletricista",
		Urgency:     domain.UrgencyImmediate,
		Address:     "Rua das Flores, 120",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "s9" {
		t.Fatalf("unexpected service: %+v", created)
	}
}

func TestOrderService_Cancel_RemovesWithoutRefetch(t *testing.T) {
	backend := &stubBackend{
		deleteSvcFn: func(serviceID string) error { return nil },
	}
	svc := NewOrderService(backend, zerolog.Nop())

	current := []domain.Service{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
	remaining, err := svc.Cancel(context.Background(), "tok", "s2", current)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if len(remaining) != 2 || remaining[0].ID != "s1" || remaining[1].ID != "s3" {
		t.Fatalf("unexpected remaining list: %+v", remaining)
	}
}

func TestOrderService_Cancel_KeepsListOnFailure(t *testing.T) {
	backend := &stubBackend{
		deleteSvcFn: func(serviceID string) error { return domain.ErrServiceNotFound },
	}
	svc := NewOrderService(backend, zerolog.Nop())

	current := []domain.Service{{ID: "s1"}}
	remaining, err := svc.Cancel(context.Background(), "tok", "s1", current)
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("failed cancel must not drop entries: %+v", remaining)
	}
}
