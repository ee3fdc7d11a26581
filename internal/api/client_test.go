package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/testutil"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(b *testutil.Backend, token string) *api.Client {
	cfg := api.Config{BaseURL: b.URL(), TimeoutMs: 2000}
	return api.NewClient(cfg, staticToken(token), nil)
}

func TestClientSendsBearerToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/projects", http.StatusOK, []any{})

	client := newClient(backend, "tok-123")
	var out []any
	require.NoError(t, client.Get(context.Background(), "/projects", nil, &out))

	header := backend.LastHeader(http.MethodGet, "/projects")
	assert.Equal(t, "Bearer tok-123", header.Get("Authorization"))
	assert.Equal(t, "application/json", header.Get("Accept"))
	assert.NotEmpty(t, header.Get("X-Request-ID"))
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/projects", http.StatusOK, []any{})

	client := newClient(backend, "")
	var out []any
	require.NoError(t, client.Get(context.Background(), "/projects", nil, &out))

	header := backend.LastHeader(http.MethodGet, "/projects")
	assert.Empty(t, header.Get("Authorization"))
}

func TestClientMapsUnauthorized(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/auth/me", http.StatusUnauthorized, map[string]string{"detail": "token expired"})

	client := newClient(backend, "stale")
	err := client.Get(context.Background(), "/auth/me", nil, &struct{}{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
}

func TestClientSurfacesErrorBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/projects", http.StatusUnprocessableEntity, map[string]string{"detail": "code already in use"})

	client := newClient(backend, "tok")
	err := client.Post(context.Background(), "/projects", map[string]string{"name": "x"}, nil)

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Body, "code already in use")
	assert.False(t, errors.Is(err, api.ErrUnauthorized))
}

func TestClientDoesNotRetry(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/projects", http.StatusInternalServerError, nil)

	client := newClient(backend, "tok")
	err := client.Get(context.Background(), "/projects", nil, &struct{}{})

	require.Error(t, err)
	assert.Equal(t, 1, backend.Calls(http.MethodGet, "/projects"))
}

func TestClientMapsTimeout(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleFunc(http.MethodGet, "/projects", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	cfg := api.Config{BaseURL: backend.URL(), TimeoutMs: 50}
	client := api.NewClient(cfg, staticToken("tok"), nil)

	err := client.Get(context.Background(), "/projects", nil, &struct{}{})
	assert.True(t, errors.Is(err, api.ErrTimeout))
}

func TestClientMapsUnreachableBackend(t *testing.T) {
	cfg := api.Config{BaseURL: "http://127.0.0.1:1/api/v1", TimeoutMs: 2000}
	client := api.NewClient(cfg, staticToken("tok"), nil)

	err := client.Get(context.Background(), "/projects", nil, &struct{}{})
	assert.True(t, errors.Is(err, api.ErrUnavailable))
}

func TestClientEncodesQueryParams(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleFunc(http.MethodGet, "/projects", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "in_production", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})

	client := newClient(backend, "tok")
	var out []any
	filter := api.ProjectFilter{Status: "in_production"}
	require.NoError(t, client.Get(context.Background(), "/projects", filter.Values(), &out))
}

func TestLoginUsesFormEncoding(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.HandleFunc(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "tok-abc", TokenType: "bearer"})
	})

	auth := api.NewAuthClient(newClient(backend, ""))
	tok, err := auth.Login(context.Background(), "ada", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok.AccessToken)

	header := backend.LastHeader(http.MethodPost, "/auth/login")
	assert.Equal(t, "application/x-www-form-urlencoded", header.Get("Content-Type"))
}
