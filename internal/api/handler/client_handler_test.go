package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type stubOrderService struct {
	ordersFn func(token string) ([]domain.Service, error)
	createFn func(token string, input ports.CreateServiceInput) (*domain.Service, error)
	cancelFn func(token, serviceID string, current []domain.Service) ([]domain.Service, error)
}

func (s *stubOrderService) Orders(_ context.Context, token string) ([]domain.Service, error) {
	return s.ordersFn(token)
}

func (s *stubOrderService) Create(_ context.Context, token string, input ports.CreateServiceInput) (*domain.Service, error) {
	return s.createFn(token, input)
}

func (s *stubOrderService) Cancel(_ context.Context, token, serviceID string, current []domain.Service) ([]domain.Service, error) {
	return s.cancelFn(token, serviceID, current)
}

type stubAccountService struct {
	homeFn           func(token string) (*ports.ClientHome, error)
	profileFn        func(token string) (*domain.User, error)
	unlockedFn       func(token string) ([]domain.Service, error)
	unlockedOrdersFn func(token string) ([]ports.UnlockedOrder, error)
}

func (s *stubAccountService) ClientHome(_ context.Context, token string) (*ports.ClientHome, error) {
	return s.homeFn(token)
}

func (s *stubAccountService) Profile(_ context.Context, token string) (*domain.User, error) {
	return s.profileFn(token)
}

func (s *stubAccountService) UnlockedJobs(_ context.Context, token string) ([]domain.Service, error) {
	return s.unlockedFn(token)
}

func (s *stubAccountService) UnlockedOrders(_ context.Context, token string) ([]ports.UnlockedOrder, error) {
	return s.unlockedOrdersFn(token)
}

// authedContext builds a context carrying a session cookie, the way
// requests arrive after passing the route guard.
func authedContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	c.Request().AddCookie(&http.Cookie{Name: session.CookieToken, Value: "tok"})
	c.Request().AddCookie(&http.Cookie{Name: session.CookieRole, Value: "1"})
	return c, rec
}

func TestClientHandler_CancelOrder_RemovesEntry(t *testing.T) {
	orders := &stubOrderService{
		cancelFn: func(token, serviceID string, current []domain.Service) ([]domain.Service, error) {
			if serviceID != "s2" {
				t.Fatalf("unexpected service id %q", serviceID)
			}
			var remaining []domain.Service
			for _, svc := range current {
				if svc.ID != serviceID {
					remaining = append(remaining, svc)
				}
			}
			return remaining, nil
		},
	}
	handler := NewClientHandler(&stubAccountService{}, orders)

	c, rec := authedContext(t, http.MethodPost, "/client/pedidos/s2/cancelar",
		`{"orders":[{"id":"s1"},{"id":"s2"},{"id":"s3"}]}`)
	c.SetParamNames("id")
	c.SetParamValues("s2")

	if err := handler.CancelOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp cancelOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.RemovedID != "s2" || len(resp.Orders) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClientHandler_CreateOrder_MissingField(t *testing.T) {
	handler := NewClientHandler(&stubAccountService{}, &stubOrderService{})

	c, _ := authedContext(t, http.MethodPost, "/client/pedidos",
		`{"title":"Trocar chuveiro","description":"","category":"Eletricista","urgency":"Alta","address":"Rua X"}`)

	err := handler.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClientHandler_CreateOrder_Success(t *testing.T) {
	orders := &stubOrderService{
		createFn: func(token string, input ports.CreateServiceInput) (*domain.Service, error) {
			return &domain.Service{ID: "s9", Title: input.Title}, nil
		},
	}
	handler := NewClientHandler(&stubAccountService{}, orders)

	c, rec := authedContext(t, http.MethodPost, "/client/pedidos",
		`{"title":"Trocar chuveiro","description":"Queimou","category":"Eletricista","urgency":"Alta","address":"Rua X, 1"}`)

	if err := handler.CreateOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"s9"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestClientHandler_UnlockedOrders(t *testing.T) {
	accounts := &stubAccountService{
		unlockedOrdersFn: func(token string) ([]ports.UnlockedOrder, error) {
			if token != "tok" {
				t.Fatalf("unexpected token %q", token)
			}
			return []ports.UnlockedOrder{{
				Order: domain.Service{ID: "s2", Title: "Elétrica"},
				Professionals: []ports.InterestedProfessional{
					{ID: "p1", Name: "Marina", WhatsAppURL: "https://wa.me/11988887777"},
				},
			}}, nil
		},
	}
	handler := NewClientHandler(accounts, &stubOrderService{})

	c, rec := authedContext(t, http.MethodGet, "/client/desbloqueados", "")
	if err := handler.UnlockedOrders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"whatsAppUrl":"https://wa.me/11988887777"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestClientHandler_Home_RequiresSession(t *testing.T) {
	handler := NewClientHandler(&stubAccountService{}, &stubOrderService{})

	c, _ := newTestContext(t, http.MethodGet, "/client", "")
	err := handler.Home(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
