package adapthttp

import (
	"errors"
	"net/http"

	"turnosweb/internal/domain"
	"turnosweb/internal/gate"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", struct {
		BotUsername string
	}{BotUsername: s.botUsername})
}

// handleLogin receives the Telegram widget payload from the login page
// script, exchanges it with the backend and issues the credential cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var auth domain.TelegramLogin
	if err := parseJSON(r, &auth); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	token, err := s.auth.Login(r.Context(), auth)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			writeError(w, apiErr.Status, apiErr)
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}

	s.sessions.Issue(w, token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := s.sessions.Token(r); token != "" {
		// Best effort; the local credential goes away regardless.
		_ = s.auth.Logout(r.Context(), token)
	}

	s.sessions.Clear(w, r)
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
}
