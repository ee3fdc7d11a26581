package session

import (
	"context"
	"sync"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
)

// Store holds the authenticated identity for the running process.
// One instance is built in main and handed to everything that needs
// it; nothing reaches for it ambiently.
type Store struct {
	auth   *api.AuthClient
	tokens *TokenFile

	mu      sync.RWMutex
	user    *domain.User
	lastErr error
}

// NewStore creates a Store over the given auth client and token file.
func NewStore(auth *api.AuthClient, tokens *TokenFile) *Store {
	return &Store{auth: auth, tokens: tokens}
}

// Login exchanges credentials for a token, persists it, then resolves
// the identity. On any failure the token stays absent and the error
// is recorded.
func (s *Store) Login(ctx context.Context, username, password string) error {
	tok, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.setError(err)
		return err
	}
	if err := s.tokens.Save(tok.AccessToken); err != nil {
		s.setError(err)
		return err
	}
	if err := s.FetchIdentity(ctx); err != nil {
		// A token whose identity cannot be resolved is useless; do not
		// leave it behind for the next invocation.
		_ = s.tokens.Clear()
		return err
	}
	return nil
}

// FetchIdentity resolves the user behind the stored token. Called
// after login and on startup when a token file already exists.
func (s *Store) FetchIdentity(ctx context.Context) error {
	user, err := s.auth.Me(ctx)
	if err != nil {
		s.setError(err)
		return err
	}
	s.mu.Lock()
	s.user = user
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted token and identity. No network call.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.lastErr = nil
	s.mu.Unlock()
	return s.tokens.Clear()
}

// HandleUnauthorized drops the session after the backend rejected the
// token. The caller decides where to navigate.
func (s *Store) HandleUnauthorized() {
	_ = s.Logout()
}

// CurrentUser returns the identity, nil when logged out or unresolved.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// HasToken reports whether a token is present, resolved or not.
func (s *Store) HasToken() bool {
	return s.tokens.Token() != ""
}

// LastError returns the most recent auth failure, nil after success.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
