package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerStillSeesCapturedBody(t *testing.T) {
	backend := NewBackend(t)

	var parsed string
	backend.HandleFunc(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		// The backend records the body for LastBody; the handler must
		// still be able to read it.
		require.NoError(t, r.ParseForm())
		parsed = r.PostForm.Get("username")
		w.WriteHeader(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodPost, backend.URL()+"/auth/login",
		strings.NewReader("username=ada&password=hunter2"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	assert.Equal(t, "ada", parsed)
	assert.Equal(t, "username=ada&password=hunter2",
		string(backend.LastBody(http.MethodPost, "/auth/login")))
	assert.Equal(t, 1, backend.Calls(http.MethodPost, "/auth/login"))
}
