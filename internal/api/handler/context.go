package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/api/session"
)

// ctxSession returns the session the route guard stored on the context,
// falling back to a fresh cookie read for routes mounted outside the guard.
// A missing token fails fast with 401 before any backend call.
func ctxSession(c echo.Context) (session.Session, error) {
	sess, ok := c.Get("session").(session.Session)
	if !ok {
		sess = session.Read(c.Request())
	}
	if sess.Token == "" {
		return session.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "sessão não autenticada")
	}
	return sess, nil
}
