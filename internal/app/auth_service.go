// Package app holds the application services and business logic.
package app

import (
	"context"

	"turnosweb/internal/domain"
)

// AuthService handles the login exchange and logout against the backend.
type AuthService struct {
	gateway domain.Gateway
}

// NewAuthService creates a new authentication service.
func NewAuthService(gateway domain.Gateway) *AuthService {
	return &AuthService{gateway: gateway}
}

// Login relays the Telegram widget payload to the backend and returns the
// session credential. Hash verification happens on the backend; this side
// never inspects the payload.
func (s *AuthService) Login(ctx context.Context, auth domain.TelegramLogin) (string, error) {
	return s.gateway.Login(ctx, auth)
}

// Logout invalidates the server-side session. Best effort: the local
// credential is cleared by the caller regardless of the outcome here.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.gateway.Logout(ctx, token)
}
