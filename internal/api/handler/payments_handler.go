package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// PaymentsHandler serves the credits-purchase screen: the pack catalogue,
// the one-shot PIX charge, the hub watch lifecycle, and the subscription
// checkout.
type PaymentsHandler struct {
	payments ports.PaymentService
	accounts ports.AccountService
}

func NewPaymentsHandler(payments ports.PaymentService, accounts ports.AccountService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, accounts: accounts}
}

type creditsView struct {
	User  *domain.User        `json:"user"`
	Packs []domain.CreditPack `json:"packs"`
}

type pixChargeRequest struct {
	PackID string `json:"packId" validate:"required"`
	Method string `json:"method" validate:"required"`
}

type watchResponse struct {
	Email string `json:"email"`
}

// Credits renders the credits screen view: the current profile (for the
// balance) plus the fixed pack catalogue.
//
// @Summary      Credits purchase screen
// @Tags         payments
// @Produce      json
// @Success      200  {object}  creditsView
// @Router       /professional/creditos [get]
func (h *PaymentsHandler) Credits(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creditsView{User: user, Packs: h.payments.Packs()})
}

// StartPixCharge requests a PIX QR code for the selected pack.
//
// @Summary      Start a PIX charge
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      pixChargeRequest  true  "Pack and payment method"
// @Success      200   {object}  domain.PixCharge
// @Failure      400   {object}  map[string]string
// @Router       /professional/creditos/pix [post]
func (h *PaymentsHandler) StartPixCharge(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req pixChargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	charge, err := h.payments.StartPixCharge(c.Request().Context(), sess.Token, req.PackID, req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charge)
}

// Watch opens the live payment watch for the session's user. Called when
// the credits screen mounts; the matching Unwatch runs on unmount.
//
// @Summary      Start watching payment updates
// @Tags         payments
// @Produce      json
// @Success      200  {object}  watchResponse
// @Router       /professional/creditos/watch [post]
func (h *PaymentsHandler) Watch(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	email, err := h.payments.Watch(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, watchResponse{Email: email})
}

// Unwatch releases the live payment watch.
//
// @Summary      Stop watching payment updates
// @Tags         payments
// @Success      204
// @Router       /professional/creditos/watch [delete]
func (h *PaymentsHandler) Unwatch(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if email := h.watchEmail(c, sess); email != "" {
		h.payments.Unwatch(email)
	}
	return c.NoContent(http.StatusNoContent)
}

// PaymentStatus reads the latest pushed payment update; 204 while none has
// arrived.
//
// @Summary      Latest payment status
// @Tags         payments
// @Produce      json
// @Success      200  {object}  ports.PaymentStatus
// @Success      204
// @Router       /professional/creditos/status [get]
func (h *PaymentsHandler) PaymentStatus(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	email := h.watchEmail(c, sess)
	if email == "" {
		return c.NoContent(http.StatusNoContent)
	}

	status, ok := h.payments.Status(email)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, status)
}

// SubscriptionCheckout relays the provider-hosted checkout URL.
//
// @Summary      Subscription checkout URL
// @Tags         payments
// @Produce      json
// @Success      200  {object}  domain.SubscriptionCheckout
// @Router       /professional/assinatura/checkout [post]
func (h *PaymentsHandler) SubscriptionCheckout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	checkout, err := h.payments.SubscriptionCheckout(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkout)
}

// watchEmail resolves the watched email from the token's claims without a
// backend round trip; status polling is frequent and must stay cheap.
func (h *PaymentsHandler) watchEmail(c echo.Context, sess session.Session) string {
	if email := session.ParseClaims(sess.Token).Email; email != "" {
		return email
	}
	user, err := h.accounts.Profile(c.Request().Context(), sess.Token)
	if err != nil {
		return ""
	}
	return user.Email
}
