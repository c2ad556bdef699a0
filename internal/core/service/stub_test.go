package service

import (
	"context"
	"errors"
	"time"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

var errStub = errors.New("stub failure")

// stubBackend implements ports.BackendClient with per-call hooks. Unset
// hooks fail the call so tests only exercise the paths they declare.
type stubBackend struct {
	loginFn       func(email, password string) (*ports.LoginResult, error)
	registerFn    func(input ports.RegisterInput) error
	confirmFn     func(email, code string) (string, error)
	resendFn      func(email string) error
	requestPwdFn  func(email string) error
	resetPwdFn    func(email, code, newPassword string) error
	meFn          func(token string) (*domain.User, error)
	getUserFn     func(userID string) (*domain.User, error)
	createSvcFn   func(input ports.CreateServiceInput) (*domain.Service, error)
	getSvcFn      func(serviceID string) (*domain.Service, error)
	searchFn      func(query ports.SearchQuery) (*ports.SearchResult, error)
	deleteSvcFn   func(serviceID string) error
	unlockFn      func(serviceID string) (*ports.UnlockResult, error)
	listAreasFn   func() ([]domain.ProfessionalArea, error)
	pixFn         func(input ports.PixChargeInput) (*domain.PixCharge, error)
	checkoutFn    func(token string) (*domain.SubscriptionCheckout, error)
}

func (s *stubBackend) Register(_ context.Context, input ports.RegisterInput) error {
	if s.registerFn == nil {
		return errStub
	}
	return s.registerFn(input)
}

func (s *stubBackend) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	if s.loginFn == nil {
		return nil, errStub
	}
	return s.loginFn(email, password)
}

func (s *stubBackend) ConfirmEmail(_ context.Context, email, code string) (string, error) {
	if s.confirmFn == nil {
		return "", errStub
	}
	return s.confirmFn(email, code)
}

func (s *stubBackend) ResendConfirmationCode(_ context.Context, email string) error {
	if s.resendFn == nil {
		return errStub
	}
	return s.resendFn(email)
}

func (s *stubBackend) RequestPasswordReset(_ context.Context, email string) error {
	if s.requestPwdFn == nil {
		return errStub
	}
	return s.requestPwdFn(email)
}

func (s *stubBackend) ResetPassword(_ context.Context, email, code, newPassword string) error {
	if s.resetPwdFn == nil {
		return errStub
	}
	return s.resetPwdFn(email, code, newPassword)
}

func (s *stubBackend) Me(_ context.Context, token string) (*domain.User, error) {
	if s.meFn == nil {
		return nil, errStub
	}
	return s.meFn(token)
}

func (s *stubBackend) GetUser(_ context.Context, _, userID string) (*domain.User, error) {
	if s.getUserFn == nil {
		return nil, errStub
	}
	return s.getUserFn(userID)
}

func (s *stubBackend) CreateService(_ context.Context, _ string, input ports.CreateServiceInput) (*domain.Service, error) {
	if s.createSvcFn == nil {
		return nil, errStub
	}
	return s.createSvcFn(input)
}

func (s *stubBackend) GetService(_ context.Context, _, serviceID string) (*domain.Service, error) {
	if s.getSvcFn == nil {
		return nil, errStub
	}
	return s.getSvcFn(serviceID)
}

func (s *stubBackend) SearchServices(_ context.Context, _ string, query ports.SearchQuery) (*ports.SearchResult, error) {
	if s.searchFn == nil {
		return nil, errStub
	}
	return s.searchFn(query)
}

func (s *stubBackend) DeleteService(_ context.Context, _, serviceID string) error {
	if s.deleteSvcFn == nil {
		return errStub
	}
	return s.deleteSvcFn(serviceID)
}

func (s *stubBackend) UnlockService(_ context.Context, _, serviceID string) (*ports.UnlockResult, error) {
	if s.unlockFn == nil {
		return nil, errStub
	}
	return s.unlockFn(serviceID)
}

func (s *stubBackend) ListProfessionalAreas(_ context.Context) ([]domain.ProfessionalArea, error) {
	if s.listAreasFn == nil {
		return nil, errStub
	}
	return s.listAreasFn()
}

func (s *stubBackend) CreatePixCharge(_ context.Context, _ string, input ports.PixChargeInput) (*domain.PixCharge, error) {
	if s.pixFn == nil {
		return nil, errStub
	}
	return s.pixFn(input)
}

func (s *stubBackend) CreateSubscriptionCheckout(_ context.Context, token string) (*domain.SubscriptionCheckout, error) {
	if s.checkoutFn == nil {
		return nil, errStub
	}
	return s.checkoutFn(token)
}

// stubCooldowns is an in-memory ports.CooldownKeeper.
type stubCooldowns struct {
	held      map[string]time.Duration
	acquireErr error
	acquired  []string
}

func newStubCooldowns() *stubCooldowns {
	return &stubCooldowns{held: make(map[string]time.Duration)}
}

func (s *stubCooldowns) Acquire(_ context.Context, kind, email string, _ time.Duration) (bool, error) {
	if s.acquireErr != nil {
		return false, s.acquireErr
	}
	key := kind + ":" + email
	if _, ok := s.held[key]; ok {
		return false, nil
	}
	s.acquired = append(s.acquired, key)
	return true, nil
}

func (s *stubCooldowns) Remaining(_ context.Context, kind, email string) (time.Duration, error) {
	return s.held[kind+":"+email], nil
}

// stubNotifier records Watch/Unwatch calls.
type stubNotifier struct {
	watched   []string
	unwatched []string
	watchErr  error
}

func (s *stubNotifier) Watch(_ context.Context, email string) error {
	if s.watchErr != nil {
		return s.watchErr
	}
	s.watched = append(s.watched, email)
	return nil
}

func (s *stubNotifier) Unwatch(email string) {
	s.unwatched = append(s.unwatched, email)
}

func (s *stubNotifier) Close() error { return nil }

func professionalWithAreas(names ...string) *domain.User {
	u := &domain.User{ID: "u1", UserName: "Marina", Email: "marina@example.com", UserType: 2}
	for _, n := range names {
		u.UserProfessionalArea = append(u.UserProfessionalArea, domain.UserProfessionalArea{
			ProfessionalArea: domain.ProfessionalArea{ID: n, Name: n},
		})
	}
	return u
}
