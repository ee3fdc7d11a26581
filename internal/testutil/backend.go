// Package testutil provides a fake studio backend for tests: an
// httptest server with per-route canned responses, call counting and
// request capture.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Backend is an in-process stand-in for the studio API. Register
// routes with Handle or HandleFunc, then point an api.Client at URL().
type Backend struct {
	t   *testing.T
	srv *httptest.Server

	mu      sync.Mutex
	routes  map[string]http.HandlerFunc
	calls   map[string]int
	bodies  map[string][][]byte
	headers map[string][]http.Header
}

// NewBackend starts the server. It shuts down automatically when the
// test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		t:       t,
		routes:  map[string]http.HandlerFunc{},
		calls:   map[string]int{},
		bodies:  map[string][][]byte{},
		headers: map[string][]http.Header{},
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the base URL including the API prefix, ready for
// api.Config.BaseURL.
func (b *Backend) URL() string {
	return b.srv.URL + "/api/v1"
}

func routeKey(method, path string) string {
	return method + " " + path
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	key := routeKey(r.Method, r.URL.Path)
	body, _ := io.ReadAll(r.Body)
	// Put the body back so registered handlers can parse it too.
	r.Body = io.NopCloser(bytes.NewReader(body))

	b.mu.Lock()
	b.calls[key]++
	b.bodies[key] = append(b.bodies[key], body)
	b.headers[key] = append(b.headers[key], r.Header.Clone())
	handler := b.routes[key]
	b.mu.Unlock()

	if handler == nil {
		b.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

// Handle registers a canned JSON response for method+path. The path is
// relative to the API prefix, e.g. "/projects".
func (b *Backend) Handle(method, path string, status int, payload any) {
	b.HandleFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if payload != nil {
			_ = json.NewEncoder(w).Encode(payload)
		}
	})
}

// HandleFunc registers an arbitrary handler for method+path.
func (b *Backend) HandleFunc(method, path string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[routeKey(method, "/api/v1"+path)] = fn
}

// Calls returns how many requests hit method+path.
func (b *Backend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[routeKey(method, "/api/v1"+path)]
}

// LastBody returns the most recent request body sent to method+path,
// or nil if the route was never hit.
func (b *Backend) LastBody(method, path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	bodies := b.bodies[routeKey(method, "/api/v1"+path)]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

// LastHeader returns the headers of the most recent request to
// method+path, or nil if the route was never hit.
func (b *Backend) LastHeader(method, path string) http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	headers := b.headers[routeKey(method, "/api/v1"+path)]
	if len(headers) == 0 {
		return nil
	}
	return headers[len(headers)-1]
}
