package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"turnosweb/internal/domain"
)

type dashboardView struct {
	User   *domain.Usuario
	Plan   domain.PlanSummary
	Turnos []domain.Turno
	// Notice is a page-level message for transient failures.
	Notice string
	// Form holds the entered values when a submission is re-rendered.
	Form      domain.NovoTurnoInput
	FormError string
	FormOpen  bool
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	token := s.sessions.Token(r)

	data, err := s.shifts.LoadDashboard(r.Context(), token)
	if err != nil {
		if sessionDead(err) {
			s.expireSession(w, r)
			return
		}
		s.render(w, "dashboard.html", dashboardView{
			Notice: "Não foi possível carregar seus dados. Tente novamente.",
		})
		return
	}

	view := dashboardView{
		User:   data.User,
		Plan:   data.User.Plan(time.Now()),
		Turnos: data.Turnos,
	}
	if data.TurnosErr != nil {
		view.Notice = "Não foi possível carregar os turnos recentes."
	}
	s.render(w, "dashboard.html", view)
}

// renderDashboardWith re-renders the dashboard around a failed submission,
// keeping the entered values and the form open.
func (s *Server) renderDashboardWith(w http.ResponseWriter, r *http.Request, in domain.NovoTurnoInput, formErr string) {
	token := s.sessions.Token(r)

	view := dashboardView{Form: in, FormError: formErr, FormOpen: true}
	data, err := s.shifts.LoadDashboard(r.Context(), token)
	if err != nil {
		if sessionDead(err) {
			s.expireSession(w, r)
			return
		}
		view.Notice = "Não foi possível carregar seus dados. Tente novamente."
		s.render(w, "dashboard.html", view)
		return
	}

	view.User = data.User
	view.Plan = data.User.Plan(time.Now())
	view.Turnos = data.Turnos
	s.render(w, "dashboard.html", view)
}

// sessionDead reports whether the error means the stored credential is
// useless: rejected outright, or pointing at an account that no longer
// exists.
func sessionDead(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrProfileGone)
}
