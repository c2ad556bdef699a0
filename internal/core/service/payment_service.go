package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/metrics"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type PaymentService struct {
	backend  ports.BackendClient
	notifier ports.PaymentNotifier
	tracker  *PaymentTracker
	logger   zerolog.Logger
}

func NewPaymentService(backend ports.BackendClient, notifier ports.PaymentNotifier, tracker *PaymentTracker, logger zerolog.Logger) *PaymentService {
	return &PaymentService{backend: backend, notifier: notifier, tracker: tracker, logger: logger}
}

// Packs returns the fixed credit pack catalogue.
func (s *PaymentService) Packs() []domain.CreditPack {
	return domain.CreditPacks
}

// StartPixCharge requests a PIX QR code for the selected pack. This is a
// one-shot request/response; it works whether or not the live hub watch is
// connected.
func (s *PaymentService) StartPixCharge(ctx context.Context, token, packID, method string) (*domain.PixCharge, error) {
	pack, ok := domain.FindCreditPack(packID)
	if !ok || method != "pix" {
		return nil, domain.Invalid("Selecione um pacote e a forma de pagamento Pix.")
	}

	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	charge, err := s.backend.CreatePixCharge(ctx, token, ports.PixChargeInput{
		Name:       user.UserName,
		Email:      user.Email,
		Product:    pack.Label,
		Quantity:   1,
		UnitAmount: pack.PriceCents,
		Price:      pack.PriceCents,
	})
	if err != nil {
		metrics.PixChargesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PixChargesTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("pack", pack.ID).Msg("pix charge created")
	return charge, nil
}

// SubscriptionCheckout relays the provider-hosted checkout URL.
func (s *PaymentService) SubscriptionCheckout(ctx context.Context, token string) (*domain.SubscriptionCheckout, error) {
	return s.backend.CreateSubscriptionCheckout(ctx, token)
}

// Watch resolves the session's email and opens the hub watch for it. Watch
// failures are logged and swallowed: the charge flow must keep working
// without the live channel.
func (s *PaymentService) Watch(ctx context.Context, token string) (string, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return "", err
	}
	if user.Email == "" {
		return "", domain.Invalid("Não foi possível identificar o email do usuário.")
	}

	if err := s.notifier.Watch(ctx, user.Email); err != nil {
		s.logger.Error().Err(err).Msg("payment hub watch failed")
	}
	return user.Email, nil
}

// Unwatch releases the hub watch and clears the stored update.
func (s *PaymentService) Unwatch(email string) {
	s.notifier.Unwatch(email)
	s.tracker.Forget(email)
}

// Status reads the latest payment update for email.
func (s *PaymentService) Status(email string) (*ports.PaymentStatus, bool) {
	update, ok := s.tracker.Latest(email)
	if !ok {
		return nil, false
	}

	status := update.Status
	if status == "" {
		status = "paid"
	}
	out := &ports.PaymentStatus{Status: status, TotalCredits: update.TotalCredits}
	credits := update.CreditsAdded
	out.CreditsAdded = &credits
	return out, true
}
