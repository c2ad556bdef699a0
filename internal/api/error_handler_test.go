package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
)

func resolve(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return resolveError(err, zerolog.Nop(), c)
}

func TestResolveError_DomainMappings(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnknownRole, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrServiceNotFound, http.StatusNotFound},
		{domain.ErrContactLocked, http.StatusPaymentRequired},
		{domain.ErrCooldownActive, http.StatusTooManyRequests},
		{domain.ErrBackendUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if code, _ := resolve(t, tc.err); code != tc.code {
			t.Fatalf("%v mapped to %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestResolveError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrBackendUnavailable)
	if code, _ := resolve(t, wrapped); code != http.StatusBadGateway {
		t.Fatalf("wrapped sentinel lost: got %d", code)
	}
}

func TestResolveError_ValidationMessagePassesThrough(t *testing.T) {
	code, msg := resolve(t, domain.Invalid("As senhas não coincidem."))
	if code != http.StatusBadRequest || msg != "As senhas não coincidem." {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestResolveError_UpstreamRelayed(t *testing.T) {
	code, msg := resolve(t, &domain.UpstreamError{StatusCode: http.StatusConflict, Message: "Email já cadastrado."})
	if code != http.StatusConflict || msg != "Email já cadastrado." {
		t.Fatalf("got %d %q", code, msg)
	}

	// An upstream error without a message gets a generic user-facing one.
	code, msg = resolve(t, &domain.UpstreamError{StatusCode: http.StatusForbidden})
	if code != http.StatusForbidden || msg == "" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestResolveError_EchoErrorPassesThrough(t *testing.T) {
	code, msg := resolve(t, echo.NewHTTPError(http.StatusNotFound, "rota não encontrada"))
	if code != http.StatusNotFound || msg != "rota não encontrada" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestResolveError_UnexpectedIsOpaque(t *testing.T) {
	code, msg := resolve(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("got %d", code)
	}
	if msg == "pq: connection reset" {
		t.Fatalf("internal error detail leaked to the client")
	}
}
