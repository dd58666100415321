// Package backend is the driven adapter for the shift-tracking backend REST
// API. It is the single outbound chokepoint: every call attaches the session
// credential as a bearer header when one exists, and authentication failures
// are mapped to domain errors for the callers to act on.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"turnosweb/internal/domain"
)

// Client implements domain.Gateway over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ domain.Gateway = (*Client)(nil)

// New creates a Client for the given absolute base address.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Login relays the Telegram widget payload to the backend. The session token
// comes back either as an access_token field or as an auth_token cookie on
// the backend response; both shapes exist in the wild, so both are accepted.
func (c *Client) Login(ctx context.Context, auth domain.TelegramLogin) (string, error) {
	body, err := json.Marshal(auth)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return "", errorFromResponse(resp)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return "", fmt.Errorf("login response: %w", err)
	}
	if out.AccessToken != "" {
		return out.AccessToken, nil
	}

	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return ck.Value, nil
		}
	}

	// A success status with no credential in either shape is a backend
	// contract break, not a success to relay upstream.
	return "", &domain.APIError{Status: http.StatusBadGateway, Message: "login não retornou credencial"}
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// Me fetches the current user's profile. Transient failures (network, 5xx)
// are retried once.
func (c *Client) Me(ctx context.Context, token string) (*domain.Usuario, error) {
	var u domain.Usuario
	err := c.do(ctx, http.MethodGet, "/usuarios/me", token, nil, &u)
	if transient(err) {
		err = c.do(ctx, http.MethodGet, "/usuarios/me", token, nil, &u)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RecentShifts lists the user's most recent shifts.
func (c *Client) RecentShifts(ctx context.Context, token string) ([]domain.Turno, error) {
	var turnos []domain.Turno
	if err := c.do(ctx, http.MethodGet, "/turnos/recentes", token, nil, &turnos); err != nil {
		return nil, err
	}
	return turnos, nil
}

// CreateShift creates a shift. A 403 means the plan's monthly limit was
// reached and maps to domain.ErrPlanLimit.
func (c *Client) CreateShift(ctx context.Context, token string, in domain.TurnoCreate) (*domain.Turno, error) {
	var t domain.Turno
	err := c.do(ctx, http.MethodPost, "/turnos/", token, in, &t)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
			return nil, domain.ErrPlanLimit
		}
		return nil, err
	}
	return &t, nil
}

// DeleteShift deletes a shift by id.
func (c *Client) DeleteShift(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/turnos/%d", id), token, nil, nil)
}

// do performs one JSON round trip. A 401 on any call becomes
// domain.ErrUnauthorized; other failures become *domain.APIError with the
// backend's detail message.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return domain.ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// errorFromResponse extracts the backend's {"detail": ...} message.
func errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail string `json:"detail"`
	}
	msg := ""
	if json.Unmarshal(raw, &payload) == nil {
		msg = payload.Detail
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return &domain.APIError{Status: resp.StatusCode, Message: msg}
}

func transient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	// Network-level failure: anything that never produced a status code,
	// except context cancellation, which means the caller is gone.
	return !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) &&
		!errors.Is(err, domain.ErrUnauthorized)
}
