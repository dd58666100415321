// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"turnosweb/internal/app"
	"turnosweb/internal/gate"
	"turnosweb/internal/session"
)

//go:embed templates/*.html
var tmplFS embed.FS

var pages = template.Must(template.ParseFS(tmplFS, "templates/*.html"))

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth           *app.AuthService
	shifts         *app.ShiftService
	sessions       *session.Store
	botUsername    string
	allowedOrigins []string
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, shifts *app.ShiftService, sessions *session.Store, botUsername string, allowedOrigins []string) *Server {
	return &Server{
		auth:           auth,
		shifts:         shifts,
		sessions:       sessions,
		botUsername:    botUsername,
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the root http.Handler for the application. The
// cross-cutting wrappers sit outside the router, not on Router.Use: mux only
// runs Use middleware on a clean route match, which would skip preflight
// OPTIONS requests (method mismatch) and leave unmatched requests unlogged.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/login", s.handleLoginPage).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	r.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/turnos", s.handleCreateShift).Methods(http.MethodPost)
	r.HandleFunc("/turnos/{id:[0-9]+}/excluir", s.handleDeleteShift).Methods(http.MethodPost)

	h := gate.Middleware(s.sessions.Token)(withNoCache(r))
	if len(s.allowedOrigins) > 0 {
		// Outside the gate: preflights carry no cookie and must not be
		// redirected to login.
		h = corsMiddleware(s.allowedOrigins)(h)
	}
	return s.loggingMiddleware(h)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// expireSession clears every local copy of the credential and sends the
// user to login. Skips the redirect when already on the login page to
// prevent a loop.
func (s *Server) expireSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w, r)
	if r.URL.Path == gate.LoginPath {
		return
	}
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
}
