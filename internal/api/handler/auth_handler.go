package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// AuthHandler owns login/logout and the email-confirmation and
// password-recovery flows. It is the only handler that writes session
// cookies.
type AuthHandler struct {
	auth  ports.AuthService
	store *session.Store
}

func NewAuthHandler(auth ports.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, store: store}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	RedirectTo string `json:"redirectTo"`
	UserType   string `json:"userType"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type resetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Code            string `json:"code" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type cooldownResponse struct {
	CooldownSeconds int    `json:"cooldownSeconds"`
	Message         string `json:"message,omitempty"`
}

// Login authenticates against the backend and sets the three session
// cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grant, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.store.Issue(c.Response(), session.Session{
		Token:  grant.Token,
		Role:   grant.Role,
		UserID: grant.UserID,
	})
	return c.JSON(http.StatusOK, loginResponse{RedirectTo: grant.RedirectTo, UserType: grant.Role})
}

// Logout clears the session cookies by expiring them.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Clear(c.Response())
	return c.JSON(http.StatusOK, loginResponse{RedirectTo: "/login"})
}

// ConfirmEmail validates the 6-digit confirmation code.
//
// @Summary      Confirm email address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      confirmEmailRequest  true  "Email and code"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/confirm-email [post]
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	var req confirmEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	msg, err := h.auth.ConfirmEmail(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Email confirmado com sucesso. Agora você pode fazer login."
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// ResendCode resends the confirmation code, subject to the cooldown.
//
// @Summary      Resend confirmation code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Email"
// @Success      200   {object}  cooldownResponse
// @Failure      429   {object}  cooldownResponse
// @Router       /auth/resend-code [post]
func (h *AuthHandler) ResendCode(c echo.Context) error {
	return h.sendWithCooldown(c, h.auth.ResendConfirmationCode)
}

// RequestPasswordReset emails a recovery code, subject to the cooldown.
//
// @Summary      Request a password reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Email"
// @Success      200   {object}  cooldownResponse
// @Failure      429   {object}  cooldownResponse
// @Router       /auth/request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	return h.sendWithCooldown(c, h.auth.RequestPasswordReset)
}

// ResetPassword completes recovery with the emailed code.
//
// @Summary      Reset the password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Email, code and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	err := h.auth.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Senha redefinida com sucesso."})
}

func (h *AuthHandler) sendWithCooldown(c echo.Context, send func(ctx context.Context, email string) (int, error)) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	seconds, err := send(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrCooldownActive) {
			return c.JSON(http.StatusTooManyRequests, cooldownResponse{
				CooldownSeconds: seconds,
				Message:         "Aguarde antes de solicitar um novo código.",
			})
		}
		return err
	}
	return c.JSON(http.StatusOK, cooldownResponse{CooldownSeconds: seconds})
}
