package service

import (
	"strings"
	"sync"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// PaymentTracker keeps the latest payment update per user email. The hub
// provides no ordering guarantee and none is needed: last write wins.
type PaymentTracker struct {
	mu     sync.RWMutex
	latest map[string]domain.PaymentUpdate
}

func NewPaymentTracker() *PaymentTracker {
	return &PaymentTracker{latest: make(map[string]domain.PaymentUpdate)}
}

// Apply records an update, replacing whatever was stored for that email.
// Updates without an email are dropped; they cannot be attributed.
func (t *PaymentTracker) Apply(update domain.PaymentUpdate) {
	if update.Email == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[strings.ToLower(update.Email)] = update
}

// Latest returns the most recent update for email, matching
// case-insensitively.
func (t *PaymentTracker) Latest(email string) (domain.PaymentUpdate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	update, ok := t.latest[strings.ToLower(email)]
	return update, ok
}

// Forget drops the stored update, used when a watch is released so a later
// visit starts clean.
func (t *PaymentTracker) Forget(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.latest, strings.ToLower(email))
}
