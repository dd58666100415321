package app

import (
	"context"
	"errors"
	"net/http"

	"turnosweb/internal/domain"
)

// ShiftService drives the dashboard reads and the shift mutations.
type ShiftService struct {
	gateway domain.Gateway
	cache   domain.ProfileCache
}

// NewShiftService creates a ShiftService over the backend gateway and the
// profile cache.
func NewShiftService(gateway domain.Gateway, cache domain.ProfileCache) *ShiftService {
	return &ShiftService{gateway: gateway, cache: cache}
}

// Dashboard is what a dashboard render needs. TurnosErr carries a shift-list
// failure that leaves the profile usable.
type Dashboard struct {
	User      *domain.Usuario
	Turnos    []domain.Turno
	TurnosErr error
}

// Profile returns the current user, from the cache when fresh. A 404 or 403
// on the read means the account behind the credential is gone ("zombie
// session") and maps to domain.ErrProfileGone.
func (s *ShiftService) Profile(ctx context.Context, token string) (*domain.Usuario, error) {
	if u, ok := s.cache.Get(token); ok {
		return u, nil
	}

	u, err := s.gateway.Me(ctx, token)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusForbidden) {
			return nil, domain.ErrProfileGone
		}
		return nil, err
	}

	s.cache.Put(token, u)
	return u, nil
}

// LoadDashboard fetches the profile and then the recent shifts. The shift
// read never fires before the profile is known: shift visibility depends on
// plan state on the backend. A failed shift read other than a session
// failure is reported alongside the profile, not instead of it.
func (s *ShiftService) LoadDashboard(ctx context.Context, token string) (*Dashboard, error) {
	user, err := s.Profile(ctx, token)
	if err != nil {
		return nil, err
	}

	turnos, err := s.gateway.RecentShifts(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		return &Dashboard{User: user, TurnosErr: err}, nil
	}

	return &Dashboard{User: user, Turnos: turnos}, nil
}

// Create validates the form input locally and submits the shift. Validation
// failures never reach the network.
func (s *ShiftService) Create(ctx context.Context, token string, in domain.NovoTurnoInput) (*domain.Turno, error) {
	payload, err := in.Payload()
	if err != nil {
		return nil, err
	}
	return s.gateway.CreateShift(ctx, token, payload)
}

// Delete removes a shift by id.
func (s *ShiftService) Delete(ctx context.Context, token string, id int64) error {
	return s.gateway.DeleteShift(ctx, token, id)
}
