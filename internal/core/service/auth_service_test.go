package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

func TestAuthService_Login_ClientGrant(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Token: "tok", Role: domain.RoleClient, UserID: "u1"}, nil
		},
	}
	svc := NewAuthService(backend, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	grant, err := svc.Login(context.Background(), "a@b.com", "secret12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if grant.RedirectTo != "/client" {
		t.Fatalf("expected redirect to /client, got %q", grant.RedirectTo)
	}
	if grant.Token != "tok" || grant.Role != domain.RoleClient || grant.UserID != "u1" {
		t.Fatalf("unexpected grant: %+v", grant)
	}
}

func TestAuthService_Login_ProfessionalGrant(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Token: "tok", Role: domain.RoleProfessional, UserID: "u2"}, nil
		},
	}
	svc := NewAuthService(backend, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	grant, err := svc.Login(context.Background(), "a@b.com", "secret12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if grant.RedirectTo != "/professional" {
		t.Fatalf("expected redirect to /professional, got %q", grant.RedirectTo)
	}
}

func TestAuthService_Login_UnknownRole(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Token: "tok", Role: "9"}, nil
		},
	}
	svc := NewAuthService(backend, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.com", "secret12"); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(&stubBackend{}, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.Login(context.Background(), "", ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_ConfirmEmail_CodeFormat(t *testing.T) {
	backend := &stubBackend{
		confirmFn: func(email, code string) (string, error) { return "Email confirmado com sucesso!", nil },
	}
	svc := NewAuthService(backend, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		if _, err := svc.ConfirmEmail(context.Background(), "a@b.com", code); err == nil {
			t.Fatalf("expected rejection for code %q", code)
		}
	}

	msg, err := svc.ConfirmEmail(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("ConfirmEmail returned error: %v", err)
	}
	if msg != "Email confirmado com sucesso!" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAuthService_ResendCode_Cooldown(t *testing.T) {
	sent := 0
	backend := &stubBackend{
		resendFn: func(email string) error { sent++; return nil },
	}
	cooldowns := newStubCooldowns()
	svc := NewAuthService(backend, cooldowns, 300*time.Second, zerolog.Nop())

	secs, err := svc.ResendConfirmationCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("first resend failed: %v", err)
	}
	if secs != 300 {
		t.Fatalf("expected 300s cooldown, got %d", secs)
	}
	if sent != 1 {
		t.Fatalf("expected one send, got %d", sent)
	}

	// Second request inside the window is rejected with the remaining time.
	cooldowns.held["confirm-email:a@b.com"] = 120 * time.Second
	secs, err = svc.ResendConfirmationCode(context.Background(), "a@b.com")
	if !errors.Is(err, domain.ErrCooldownActive) {
		t.Fatalf("expected ErrCooldownActive, got %v", err)
	}
	if secs != 120 {
		t.Fatalf("expected 120s remaining, got %d", secs)
	}
	if sent != 1 {
		t.Fatalf("cooldown must not trigger a send, got %d", sent)
	}
}

func TestAuthService_ResendCode_CooldownFailureDegrades(t *testing.T) {
	sent := 0
	backend := &stubBackend{
		resendFn: func(email string) error { sent++; return nil },
	}
	cooldowns := newStubCooldowns()
	cooldowns.acquireErr = errors.New("redis down")
	svc := NewAuthService(backend, cooldowns, 300*time.Second, zerolog.Nop())

	if _, err := svc.ResendConfirmationCode(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("cooldown failure must not block sending: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected one send, got %d", sent)
	}
}

func TestAuthService_ResendCode_NoKeeper(t *testing.T) {
	sent := 0
	backend := &stubBackend{
		resendFn: func(email string) error { sent++; return nil },
	}
	svc := NewAuthService(backend, nil, 300*time.Second, zerolog.Nop())

	secs, err := svc.ResendConfirmationCode(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("resend without keeper failed: %v", err)
	}
	if secs != 300 || sent != 1 {
		t.Fatalf("expected 300s and one send, got %d / %d", secs, sent)
	}
}

func TestAuthService_ResetPassword_Validation(t *testing.T) {
	svc := NewAuthService(&stubBackend{}, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), "a@b.com", "123456", "short", "short"); err == nil {
		t.Fatalf("expected rejection for short password")
	}
	if err := svc.ResetPassword(context.Background(), "a@b.com", "123456", "longenough", "different1"); err == nil {
		t.Fatalf("expected rejection for mismatched confirmation")
	}
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	var got [3]string
	backend := &stubBackend{
		resetPwdFn: func(email, code, newPassword string) error {
			got = [3]string{email, code, newPassword}
			return nil
		},
	}
	svc := NewAuthService(backend, newStubCooldowns(), 5*time.Minute, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), "a@b.com", "654321", "novasenha", "novasenha"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if got != [3]string{"a@b.com", "654321", "novasenha"} {
		t.Fatalf("unexpected backend call: %v", got)
	}
}
