package service

import (
	"context"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/metrics"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

const (
	cooldownConfirmEmail  = "confirm-email"
	cooldownPasswordReset = "password-reset"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

type AuthService struct {
	backend   ports.BackendClient
	cooldowns ports.CooldownKeeper
	resendTTL time.Duration
	logger    zerolog.Logger
}

func NewAuthService(backend ports.BackendClient, cooldowns ports.CooldownKeeper, resendTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, cooldowns: cooldowns, resendTTL: resendTTL, logger: logger}
}

// Login exchanges credentials for a session grant. A token without a
// recognisable role never grants a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.SessionGrant, error) {
	if email == "" || password == "" {
		return nil, domain.Invalid("Informe e-mail e senha.")
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	grant := &ports.SessionGrant{Token: res.Token, Role: res.Role, UserID: res.UserID}
	switch res.Role {
	case domain.RoleClient:
		grant.RedirectTo = "/client"
	case domain.RoleProfessional:
		grant.RedirectTo = "/professional"
	default:
		s.logger.Warn().Str("role", res.Role).Msg("login response carried an unknown role")
		return nil, domain.ErrUnknownRole
	}

	metrics.SessionsIssuedTotal.WithLabelValues(grant.Role).Inc()
	s.logger.Info().Str("role", grant.Role).Msg("session granted")
	return grant, nil
}

// ConfirmEmail validates the 6-digit code with the backend and returns the
// backend's confirmation message.
func (s *AuthService) ConfirmEmail(ctx context.Context, email, code string) (string, error) {
	if email == "" || !sixDigits.MatchString(code) {
		return "", domain.Invalid("Informe o email e o código de 6 dígitos.")
	}
	return s.backend.ConfirmEmail(ctx, email, code)
}

// ResendConfirmationCode asks the backend for a fresh code, subject to the
// per-email cooldown. It returns the cooldown length in seconds so the
// screen can run its countdown.
func (s *AuthService) ResendConfirmationCode(ctx context.Context, email string) (int, error) {
	return s.resendWithCooldown(ctx, cooldownConfirmEmail, email, func() error {
		return s.backend.ResendConfirmationCode(ctx, email)
	})
}

// RequestPasswordReset starts the recovery flow, subject to the same
// cooldown discipline as code resends.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (int, error) {
	return s.resendWithCooldown(ctx, cooldownPasswordReset, email, func() error {
		return s.backend.RequestPasswordReset(ctx, email)
	})
}

// ResetPassword completes recovery with the emailed code and a new password.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, password, confirm string) error {
	if email == "" || !sixDigits.MatchString(code) {
		return domain.Invalid("Informe o email e o código de 6 dígitos.")
	}
	if len(password) < 8 {
		return domain.Invalid("A senha deve ter pelo menos 8 caracteres.")
	}
	if password != confirm {
		return domain.Invalid("As senhas não coincidem.")
	}
	return s.backend.ResetPassword(ctx, email, code, password)
}

func (s *AuthService) resendWithCooldown(ctx context.Context, kind, email string, send func() error) (int, error) {
	if email == "" {
		return 0, domain.Invalid("Informe o email.")
	}

	if s.cooldowns == nil {
		if err := send(); err != nil {
			return 0, err
		}
		return int(s.resendTTL.Seconds()), nil
	}

	ok, err := s.cooldowns.Acquire(ctx, kind, email, s.resendTTL)
	if err != nil {
		// Cooldown bookkeeping must not block the flow; degrade to sending.
		s.logger.Error().Err(err).Str("kind", kind).Msg("cooldown check failed")
		ok = true
	}
	if !ok {
		remaining, err := s.cooldowns.Remaining(ctx, kind, email)
		if err != nil {
			remaining = s.resendTTL
		}
		return int(remaining.Seconds()), domain.ErrCooldownActive
	}

	if err := send(); err != nil {
		return 0, err
	}
	return int(s.resendTTL.Seconds()), nil
}
