package session_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/session"
	"github.com/slatehq/slate/internal/testutil"
)

func newSession(t *testing.T, backend *testutil.Backend) (*session.Store, *session.TokenFile) {
	t.Helper()
	tokens, err := session.NewTokenFile(t.TempDir())
	require.NoError(t, err)

	client := api.NewClient(api.Config{BaseURL: backend.URL(), TimeoutMs: 2000}, tokens, nil)
	return session.NewStore(api.NewAuthClient(client), tokens), tokens
}

func TestLoginSavesTokenAndResolvesIdentity(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		api.TokenResponse{AccessToken: "tok-abc", TokenType: "bearer"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusOK,
		domain.User{ID: 1, Username: "ada", Role: domain.RoleAdmin})

	store, tokens := newSession(t, backend)
	require.NoError(t, store.Login(context.Background(), "ada", "hunter2"))

	assert.Equal(t, "tok-abc", tokens.Token())
	require.NotNil(t, store.CurrentUser())
	assert.Equal(t, "ada", store.CurrentUser().Username)
	assert.True(t, store.HasToken())

	// The identity call carried the freshly saved token.
	header := backend.LastHeader(http.MethodGet, "/auth/me")
	assert.Equal(t, "Bearer tok-abc", header.Get("Authorization"))
}

func TestLoginFailureLeavesNoToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusUnauthorized,
		map[string]string{"detail": "bad credentials"})

	store, tokens := newSession(t, backend)
	err := store.Login(context.Background(), "ada", "wrong")

	require.Error(t, err)
	assert.Empty(t, tokens.Token())
	assert.False(t, store.HasToken())
	assert.Nil(t, store.CurrentUser())
	assert.Error(t, store.LastError())
}

func TestLoginClearsTokenWhenIdentityFails(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		api.TokenResponse{AccessToken: "tok-abc", TokenType: "bearer"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusInternalServerError,
		map[string]string{"detail": "boom"})

	store, tokens := newSession(t, backend)
	err := store.Login(context.Background(), "ada", "hunter2")

	// An unresolvable token must not survive for the next invocation.
	require.Error(t, err)
	assert.Empty(t, tokens.Token())
	assert.False(t, store.HasToken())
	assert.Nil(t, store.CurrentUser())
}

func TestLogoutClearsEverything(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		api.TokenResponse{AccessToken: "tok-abc"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusOK, domain.User{ID: 1, Username: "ada"})

	store, tokens := newSession(t, backend)
	require.NoError(t, store.Login(context.Background(), "ada", "hunter2"))

	require.NoError(t, store.Logout())
	assert.Empty(t, tokens.Token())
	assert.Nil(t, store.CurrentUser())
	assert.False(t, store.HasToken())
}

func TestHandleUnauthorizedDropsSession(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		api.TokenResponse{AccessToken: "tok-abc"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusOK, domain.User{ID: 1, Username: "ada"})

	store, _ := newSession(t, backend)
	require.NoError(t, store.Login(context.Background(), "ada", "hunter2"))

	store.HandleUnauthorized()
	assert.False(t, store.HasToken())
	assert.Nil(t, store.CurrentUser())
}

func TestTokenFilePersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	first, err := session.NewTokenFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save("tok-persisted"))

	info, err := os.Stat(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := session.NewTokenFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "tok-persisted", second.Token())
}

func TestTokenFileTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok-abc\n"), 0o600))

	tokens, err := session.NewTokenFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tokens.Token())
}

func TestTokenFileClearTwice(t *testing.T) {
	tokens, err := session.NewTokenFile(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, tokens.Save("tok"))
	require.NoError(t, tokens.Clear())
	require.NoError(t, tokens.Clear())
	assert.Empty(t, tokens.Token())
}
