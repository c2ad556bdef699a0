package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Relays upstream backend errors with their original status and message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Screen-level validation failures carry a user-facing message.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	// Backend 4xx responses pass through with their status and message so the
	// pages can surface the backend's own wording.
	if ue, ok := domain.AsUpstream(err); ok {
		msg := ue.Message
		if msg == "" {
			msg = "A solicitação não pôde ser concluída."
		}
		return ue.StatusCode, msg
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "sessão não autenticada"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email ou senha inválidos."
	case errors.Is(err, domain.ErrUnknownRole):
		return http.StatusUnauthorized, "Não foi possível identificar o tipo de usuário. Tente novamente."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado."
	case errors.Is(err, domain.ErrServiceNotFound):
		return http.StatusNotFound, "Serviço não encontrado."
	case errors.Is(err, domain.ErrContactLocked):
		return http.StatusPaymentRequired, "Desbloqueie o contato para visualizar."
	case errors.Is(err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests, "Aguarde antes de solicitar um novo código."
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, "Serviço temporariamente indisponível. Tente novamente em instantes."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno. Tente novamente mais tarde."
}
