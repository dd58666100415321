package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"turnosweb/internal/domain"
	"turnosweb/internal/gate"
)

func (s *Server) handleCreateShift(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := domain.NovoTurnoInput{
		Inicio: r.PostFormValue("data_inicio"),
		Fim:    r.PostFormValue("data_fim"),
		Local:  r.PostFormValue("local"),
	}

	token := s.sessions.Token(r)
	_, err := s.shifts.Create(r.Context(), token, in)
	switch {
	case err == nil:
		// No optimistic insert: the redirect refetches the list so the
		// table shows backend-confirmed state.
		http.Redirect(w, r, gate.DashboardPath, http.StatusSeeOther)
	case errors.Is(err, domain.ErrUnauthorized):
		s.expireSession(w, r)
	case domain.IsValidationError(err):
		s.renderDashboardWith(w, r, in, err.Error())
	case errors.Is(err, domain.ErrPlanLimit):
		s.renderDashboardWith(w, r, in, "Limite de turnos do plano grátis atingido.")
	default:
		s.renderDashboardWith(w, r, in, "Erro ao criar turno. Tente novamente.")
	}
}

func (s *Server) handleDeleteShift(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	token := s.sessions.Token(r)
	if err := s.shifts.Delete(r.Context(), token, id); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.expireSession(w, r)
			return
		}
		// A shift that is already gone still ends with a fresh list.
	}

	http.Redirect(w, r, gate.DashboardPath, http.StatusSeeOther)
}
