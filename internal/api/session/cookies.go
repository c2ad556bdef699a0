// Package session owns the three browser cookies that carry the session:
// the backend-issued auth token, the role tag, and the user id. Cookies are
// read fresh on every request; nothing is cached gateway-side.
package session

import (
	"net/http"
	"time"
)

const (
	CookieToken  = "authToken"
	CookieRole   = "userType"
	CookieUserID = "userId"
)

// Session is the client-held session state as read from the request cookies.
type Session struct {
	Token  string
	Role   string
	UserID string
}

// Authenticated reports whether both the token and role cookies are present.
// Token validity is the backend's concern; the guard additionally rejects
// tokens whose embedded expiry has passed.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Role != ""
}

// Store writes and clears the session cookies with a fixed lifetime.
type Store struct {
	maxAge time.Duration
}

// NewStore builds a Store. maxAge <= 0 falls back to one week, the lifetime
// the original cookies always carried.
func NewStore(maxAge time.Duration) *Store {
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Store{maxAge: maxAge}
}

// Read extracts the session from the request. Missing cookies yield empty
// fields, never an error.
func Read(r *http.Request) Session {
	return Session{
		Token:  cookieValue(r, CookieToken),
		Role:   cookieValue(r, CookieRole),
		UserID: cookieValue(r, CookieUserID),
	}
}

// Issue sets all three cookies in one response. There is no atomicity across
// cookies beyond this being a single Set-Cookie burst.
func (st *Store) Issue(w http.ResponseWriter, s Session) {
	http.SetCookie(w, st.cookie(CookieToken, s.Token))
	http.SetCookie(w, st.cookie(CookieRole, s.Role))
	http.SetCookie(w, st.cookie(CookieUserID, s.UserID))
}

// Clear expires all three cookies by setting an already-passed expiry date.
func (st *Store) Clear(w http.ResponseWriter) {
	for _, name := range []string{CookieToken, CookieRole, CookieUserID} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (st *Store) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(st.maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
