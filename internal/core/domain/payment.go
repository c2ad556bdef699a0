package domain

import "strings"

// CreditPack is one of the fixed purchasable credit bundles. Prices are in
// cents, as the payment provider expects.
type CreditPack struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Credits     int    `json:"credits"`
	PriceCents  int    `json:"priceCents"`
	Description string `json:"description"`
}

// CreditPacks is the catalogue offered on the credits screen.
var CreditPacks = []CreditPack{
	{ID: "pack1", Label: "1.000 créditos", Credits: 1000, PriceCents: 4990, Description: "Para começar a desbloquear pedidos."},
	{ID: "pack2", Label: "2.000 créditos", Credits: 2000, PriceCents: 8990, Description: "Mais volume com melhor custo."},
	{ID: "pack3", Label: "3.000 créditos", Credits: 3000, PriceCents: 11990, Description: "Pacote maior para alta demanda."},
}

// FindCreditPack looks a pack up by id.
func FindCreditPack(id string) (CreditPack, bool) {
	for _, p := range CreditPacks {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPack{}, false
}

// PixCharge is the one-shot response to a PIX charge request: a copy-paste
// key and a QR image link.
type PixCharge struct {
	QRText string `json:"qrText"`
	QRLink string `json:"qrLink"`
}

// SubscriptionCheckout carries the provider-hosted checkout URL.
type SubscriptionCheckout struct {
	URL string `json:"url"`
}

// PaymentUpdate is a payment-hub event pushed when a charge settles. Only the
// latest update per user matters (last write wins).
type PaymentUpdate struct {
	Email        string `json:"email"`
	Status       string `json:"status"`
	CreditsAdded int    `json:"creditsAdded"`
	TotalCredits *int   `json:"totalCredits,omitempty"`
}

// Matches reports whether the update belongs to the given user email. The
// hub broadcasts per group but the email on the event is authoritative.
func (p *PaymentUpdate) Matches(email string) bool {
	return p.Email != "" && strings.EqualFold(p.Email, email)
}
