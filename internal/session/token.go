package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenFile persists the bearer token under the slate config dir. It
// is the only state that survives across runs. Implements the API
// layer's TokenSource.
type TokenFile struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewTokenFile loads any previously saved token from dir/token.
func NewTokenFile(dir string) (*TokenFile, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	tf := &TokenFile{path: filepath.Join(dir, "token")}

	data, err := os.ReadFile(tf.path)
	if err != nil {
		if os.IsNotExist(err) {
			return tf, nil
		}
		return nil, err
	}
	tf.token = strings.TrimSpace(string(data))
	return tf, nil
}

// Token returns the current bearer token, empty when logged out.
func (t *TokenFile) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// Save persists a new token with owner-only permissions.
func (t *TokenFile) Save(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := os.WriteFile(t.path, []byte(token), 0o600); err != nil {
		return err
	}
	t.token = token
	return nil
}

// Clear removes the persisted token. A missing file is not an error.
func (t *TokenFile) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
