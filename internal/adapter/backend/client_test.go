package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnosweb/internal/adapter/backend"
	"turnosweb/internal/domain"
)

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Turno{})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.RecentShifts(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	hadHeader := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]domain.Turno{})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.RecentShifts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.RecentShifts(context.Background(), "stale")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestErrorCarriesStatusAndDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Usuário não encontrado"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.Me(context.Background(), "tok")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Usuário não encontrado", apiErr.Message)
}

func TestMeRetriesOnceOnServerError(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Usuario{ID: 1, Nome: "Ana"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	u, err := c.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "Ana", u.Nome)
}

func TestMeDoesNotRetryUnauthorized(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.Me(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

func TestCreateShiftSendsCanonicalPayload(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/turnos/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(domain.Turno{ID: 99})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	created, err := c.CreateShift(context.Background(), "tok", domain.TurnoCreate{
		DataReferencia: "2024-01-01",
		HoraInicio:     "08:00:00",
		HoraFim:        "16:00:00",
		Tipo:           "Hospital A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)

	assert.Equal(t, "2024-01-01", got["data_referencia"])
	assert.Equal(t, "08:00:00", got["hora_inicio"])
	assert.Equal(t, "16:00:00", got["hora_fim"])
	assert.Equal(t, "Hospital A", got["tipo"])
	_, hasDescricao := got["descricao_opcional"]
	assert.False(t, hasDescricao, "empty optional description is omitted")
}

func TestCreateShiftPlanLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Limite de turnos excedido"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.CreateShift(context.Background(), "tok", domain.TurnoCreate{})
	assert.ErrorIs(t, err, domain.ErrPlanLimit)
}

func TestLoginJSONToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var auth domain.TelegramLogin
		require.NoError(t, json.NewDecoder(r.Body).Decode(&auth))
		assert.Equal(t, int64(42), auth.ID)
		assert.Equal(t, "abc123", auth.Hash)

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "jwt-token"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	token, err := c.Login(context.Background(), domain.TelegramLogin{
		ID:        42,
		FirstName: "Ana",
		AuthDate:  1700000000,
		Hash:      "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestLoginCookieToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "cookie-token"})
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	token, err := c.Login(context.Background(), domain.TelegramLogin{ID: 42})
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestLoginRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid Telegram authentication"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.Login(context.Background(), domain.TelegramLogin{ID: 42})
	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestLoginWithoutCredentialIsGatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	_, err := c.Login(context.Background(), domain.TelegramLogin{ID: 42})
	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	// Never the backend's success status: the handler relays this code, and
	// a 2xx would read as a successful login upstream.
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestDeleteShift(t *testing.T) {
	var gotPath, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := backend.New(ts.URL)
	require.NoError(t, c.DeleteShift(context.Background(), "tok", 12))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/turnos/12", gotPath)
}
