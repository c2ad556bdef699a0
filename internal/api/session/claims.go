package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the backend JWT the gateway reads. The
// signature is never verified here (validation is the backend's job), so
// these values are only used for routing decisions and hub group naming,
// never for authorization.
type TokenClaims struct {
	Email   string
	Expired bool
}

// ParseClaims best-effort decodes the token. A malformed token yields zero
// claims, which callers treat the same as an absent token.
func ParseClaims(token string) TokenClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenClaims{}
	}

	out := TokenClaims{}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.Expired = exp.Before(time.Now())
	}
	return out
}
