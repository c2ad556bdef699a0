package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/metrics"
	"github.com/freelaverse/web-gateway/internal/api/session"
	"github.com/freelaverse/web-gateway/internal/core/domain"
)

const loginPath = "/login"

// publicPaths can be reached without a session. Sub-paths of each entry are
// public too.
var publicPaths = []string{
	"/",
	"/login",
	"/cadastro",
	"/confirmar-email",
	"/recuperar",
	"/auth",
	"/areas",
	"/health",
	"/metrics",
}

// dataPrefix matches the versioned internal data-fetch prefix; those
// requests target a page's data and must be gated like the page itself.
var dataPrefix = regexp.MustCompile(`^/_data/[^/]+`)

// NormalizePath strips the versioned data prefix and its trailing .json
// suffix so the request is matched against the route it fetches for.
func NormalizePath(path string) string {
	if dataPrefix.MatchString(path) {
		path = dataPrefix.ReplaceAllString(path, "")
		path = strings.TrimSuffix(path, ".json")
		if path == "" {
			return "/"
		}
	}
	return path
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func inArea(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Guard is the route guard: it inspects the session cookies on every
// navigation and redirects unauthenticated or wrong-role users to the login
// screen. The decision is never cached; cookies are read fresh per request.
//
// The root path is special-cased: an authenticated session is dispatched
// straight to its role dashboard. A token whose embedded expiry has passed
// counts as no token at all. A missing role on a gated path always redirects
// to login.
func Guard(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := NormalizePath(c.Request().URL.Path)
			sess := session.Read(c.Request())

			if sess.Token != "" && session.ParseClaims(sess.Token).Expired {
				sess.Token = ""
			}

			if path == "/" && sess.Authenticated() {
				switch sess.Role {
				case domain.RoleClient:
					metrics.GuardRedirectsTotal.WithLabelValues("root_dispatch").Inc()
					return c.Redirect(http.StatusFound, "/client")
				case domain.RoleProfessional:
					metrics.GuardRedirectsTotal.WithLabelValues("root_dispatch").Inc()
					return c.Redirect(http.StatusFound, "/professional")
				}
			}

			if isPublic(path) {
				return next(c)
			}

			requiredRole := ""
			switch {
			case inArea(path, "/client"):
				requiredRole = domain.RoleClient
			case inArea(path, "/professional"):
				requiredRole = domain.RoleProfessional
			}
			if requiredRole == "" {
				return next(c)
			}

			if sess.Token == "" || sess.Role == "" {
				metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}
			if sess.Role != requiredRole {
				metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
				log.Debug().Str("path", path).Str("role", sess.Role).Msg("role mismatch, redirecting to login")
				return c.Redirect(http.StatusFound, loginPath)
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}
