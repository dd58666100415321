// Package gate decides, per incoming navigation, whether to serve the page
// or redirect. It is a pure function of the path and cookie presence: no
// token validation and no network calls happen here, since it runs on every
// request. Real validation is delegated to the backend on the first API call.
package gate

import (
	"net/http"
	"strings"
)

// Action is the gate's verdict for a request.
type Action int

const (
	// Allow serves the requested page unchanged.
	Allow Action = iota
	// RedirectLogin sends an unauthenticated user to the login page.
	RedirectLogin
	// RedirectDashboard sends an authenticated user away from public-only
	// pages such as login.
	RedirectDashboard
)

// Route prefixes. Anything matching neither set passes through unguarded.
var (
	protectedPrefixes  = []string{"/dashboard", "/turnos"}
	publicOnlyPrefixes = []string{"/login"}
)

// LoginPath and DashboardPath are the redirect targets.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decide classifies the path and applies the decision table.
func Decide(path string, hasToken bool) Action {
	if matchesAny(path, protectedPrefixes) && !hasToken {
		return RedirectLogin
	}
	if matchesAny(path, publicOnlyPrefixes) && hasToken {
		return RedirectDashboard
	}
	return Allow
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// TokenFunc extracts the credential from a request; "" means absent.
type TokenFunc func(r *http.Request) string

// Middleware wraps a handler with the gate.
func Middleware(token TokenFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Decide(r.URL.Path, token(r) != "") {
			case RedirectLogin:
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			case RedirectDashboard:
				http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
