// Package session is the single authority over the credential cookie. The
// gate, the web handlers and logout all go through it so the cookie name and
// lifetime are defined in exactly one place.
package session

import (
	"net/http"
	"time"

	"turnosweb/internal/domain"
)

// CookieName is the credential cookie read by the gate on every navigation.
const CookieName = "auth_token"

// TTL is the credential cookie lifetime.
const TTL = 7 * 24 * time.Hour

// Store reads, issues and clears the session credential. Clearing also
// evicts the cached profile for that credential.
type Store struct {
	cache domain.ProfileCache
}

// New creates a Store backed by the given profile cache.
func New(cache domain.ProfileCache) *Store {
	return &Store{cache: cache}
}

// Token returns the credential carried by the request, or "" when absent.
// The value is not validated here; the backend rejects stale tokens on the
// first real call.
func (s *Store) Token(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Issue writes the credential cookie on a successful login exchange.
func (s *Store) Issue(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TTL.Seconds()),
	})
}

// Clear removes the credential cookie and the cached profile behind it.
// Called on logout and on any authentication-failure response.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) {
	if token := s.Token(r); token != "" && s.cache != nil {
		s.cache.Clear(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
