package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// PaymentStatus is the last payment update seen for a user. Pointer fields
// distinguish "not reported" from zero.
type PaymentStatus struct {
	Status       string `json:"status"`
	CreditsAdded *int   `json:"creditsAdded,omitempty"`
	TotalCredits *int   `json:"totalCredits,omitempty"`
}

// PaymentService owns the credits-purchase flow: the pack catalogue, the
// one-shot PIX charge, the subscription checkout, and the live
// payment-update watch scoped to the credits screen's lifetime.
type PaymentService interface {
	Packs() []domain.CreditPack
	StartPixCharge(ctx context.Context, token, packID, method string) (*domain.PixCharge, error)
	SubscriptionCheckout(ctx context.Context, token string) (*domain.SubscriptionCheckout, error)

	// Watch opens (or reuses) the hub subscription for the session's user and
	// returns the watched email. Unwatch releases it; Status reads the latest
	// update, reporting false while none arrived.
	Watch(ctx context.Context, token string) (string, error)
	Unwatch(email string)
	Status(email string) (*PaymentStatus, bool)
}
