package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/query"
	"github.com/slatehq/slate/internal/session"
	"github.com/slatehq/slate/internal/testutil"
)

// testApp assembles an App over a fake backend with a saved token, so
// the TUI starts at the dashboard. Tests register routes on the
// returned backend before navigating.
func testApp(t *testing.T) (*App, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	dir := t.TempDir()

	tokens, err := session.NewTokenFile(dir)
	require.NoError(t, err)
	require.NoError(t, tokens.Save("tok-test"))

	return testAppWithTokens(t, backend, tokens, dir), backend
}

// testAppLoggedOut assembles an App with no saved token, so the TUI
// starts at the login view.
func testAppLoggedOut(t *testing.T) (*App, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	dir := t.TempDir()

	tokens, err := session.NewTokenFile(dir)
	require.NoError(t, err)

	return testAppWithTokens(t, backend, tokens, dir), backend
}

func testAppWithTokens(t *testing.T, backend *testutil.Backend, tokens *session.TokenFile, dir string) *App {
	t.Helper()
	client := api.NewClient(api.Config{BaseURL: backend.URL(), TimeoutMs: 2000}, tokens, nil)
	auth := api.NewAuthClient(client)

	return &App{
		Auth:       auth,
		Projects:   api.NewProjectsClient(client),
		Tasks:      api.NewTasksClient(client),
		CRM:        api.NewCRMClient(client),
		HR:         api.NewHRClient(client),
		Accounting: api.NewAccountingClient(client),
		Equipment:  api.NewEquipmentClient(client),
		Production: api.NewProductionClient(client),
		Dashboard:  api.NewDashboardClient(client),
		Users:      api.NewUsersClient(client),
		Queries:    query.NewStore(),
		Session:    session.NewStore(auth, tokens),
		ConfigDir:  dir,
		IsInteractive: func() bool {
			return false
		},
	}
}

// seedDashboard registers the three reads the dashboard view issues
// on entry.
func seedDashboard(backend *testutil.Backend) {
	backend.Handle(http.MethodGet, "/dashboard/stats", http.StatusOK, domain.DashboardStats{})
	backend.Handle(http.MethodGet, "/dashboard/recent-activity", http.StatusOK, domain.RecentActivity{})
	backend.Handle(http.MethodGet, "/dashboard/my-tasks", http.StatusOK, []domain.MyTask{})
}
