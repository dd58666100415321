package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the backend rejected the credential (401).
	// The caller must clear the stored credential and send the user to login.
	ErrUnauthorized = errors.New("sessão inválida ou expirada")
	// ErrProfileGone indicates the account behind the stored credential no
	// longer exists (404 on the profile read). Remediation is the same as
	// ErrUnauthorized.
	ErrProfileGone = errors.New("conta não encontrada")
	// ErrPlanLimit indicates the backend refused a shift creation because
	// the plan's monthly limit was reached (403). The session stays valid.
	ErrPlanLimit = errors.New("limite de turnos do plano atual atingido")
)

// APIError carries the status code and backend-provided message of any
// failure the gateway does not map to a sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend respondeu %d", e.Status)
	}
	return fmt.Sprintf("backend respondeu %d: %s", e.Status, e.Message)
}
