package ports

import (
	"context"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// PaymentSink receives payment updates pushed by the hub. Implementations
// must tolerate duplicate and out-of-order delivery; only the latest values
// matter.
type PaymentSink interface {
	Apply(update domain.PaymentUpdate)
}

// PaymentNotifier maintains the live connection to the backend payment hub.
// Watch joins the group keyed by email; Unwatch leaves it and, when it was
// the last watch, closes the connection. Reconnection is the transport's
// concern, not the caller's.
type PaymentNotifier interface {
	Watch(ctx context.Context, email string) error
	Unwatch(email string)
	Close() error
}
