package cli

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/domain"
)

// executeCmd runs a cobra command against the test App. Command output
// goes to real stdout; tests assert on errors and backend traffic.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	return root.Execute()
}

func TestLoginCmd(t *testing.T) {
	app, backend := testAppLoggedOut(t)
	backend.Handle(http.MethodPost, "/auth/login", http.StatusOK,
		map[string]string{"access_token": "tok-abc", "token_type": "bearer"})
	backend.Handle(http.MethodGet, "/auth/me", http.StatusOK,
		domain.User{ID: 1, Username: "ada", Role: domain.RoleProducer})

	require.NoError(t, executeCmd(t, app, "login", "-u", "ada", "-p", "hunter2"))
	assert.True(t, app.Session.HasToken())
	assert.Equal(t, "ada", app.Session.CurrentUser().Username)
}

func TestLoginCmd_RequiresFlags(t *testing.T) {
	app, _ := testAppLoggedOut(t)
	assert.Error(t, executeCmd(t, app, "login"))
}

func TestWhoamiCmd_ExpiredTokenClearsSession(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodGet, "/auth/me", http.StatusUnauthorized,
		map[string]string{"detail": "token expired"})

	err := executeCmd(t, app, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")
	assert.False(t, app.Session.HasToken())
}

func TestTasksMoveCmd(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodGet, "/projects/tasks/7", http.StatusOK,
		domain.Task{ID: 7, ProjectID: 5, TaskKey: "NOVA-7", Status: domain.TaskTodo})
	backend.Handle(http.MethodPut, "/projects/tasks/7", http.StatusOK,
		domain.Task{ID: 7, ProjectID: 5, TaskKey: "NOVA-7", Status: domain.TaskDone})

	require.NoError(t, executeCmd(t, app, "tasks", "move", "7", "done"))

	assert.Equal(t, 1, backend.Calls(http.MethodPut, "/projects/tasks/7"))
	assert.JSONEq(t, `{"status":"done"}`,
		string(backend.LastBody(http.MethodPut, "/projects/tasks/7")))
}

func TestTasksMoveCmd_RejectsUnknownStatus(t *testing.T) {
	app, backend := testApp(t)

	err := executeCmd(t, app, "tasks", "move", "7", "paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
	assert.Equal(t, 0, backend.Calls(http.MethodPut, "/projects/tasks/7"))
}

func TestTasksCreateCmd_ResolvesProjectByCode(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodGet, "/projects", http.StatusOK, []domain.Project{
		{ID: 5, Code: "NOVA", Name: "Nova"},
		{ID: 6, Code: "Q3", Name: "Q3 Spot"},
	})
	backend.Handle(http.MethodPost, "/projects/tasks", http.StatusCreated,
		domain.Task{ID: 20, ProjectID: 5, TaskKey: "NOVA-20", Title: "Scout locations"})

	require.NoError(t, executeCmd(t, app, "tasks", "create",
		"--project", "NOVA", "--title", "Scout locations"))

	body := backend.LastBody(http.MethodPost, "/projects/tasks")
	assert.JSONEq(t, `{"project_id":5,"title":"Scout locations","task_type":"task","priority":"medium"}`,
		string(body))
}

func TestResolveProjectID(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodGet, "/projects", http.StatusOK, []domain.Project{
		{ID: 5, Code: "NOVA", Name: "Nova"},
	})
	ctx := context.Background()

	// Numeric input never hits the network.
	id, err := resolveProjectID(ctx, app, "17")
	require.NoError(t, err)
	assert.Equal(t, 17, id)
	assert.Equal(t, 0, backend.Calls(http.MethodGet, "/projects"))

	id, err = resolveProjectID(ctx, app, "NOVA")
	require.NoError(t, err)
	assert.Equal(t, 5, id)

	_, err = resolveProjectID(ctx, app, "GHOST")
	assert.Error(t, err)
}

func TestProjectsCreateCmd(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodPost, "/projects", http.StatusCreated,
		domain.Project{ID: 9, Code: "DOCS", Name: "Documentary"})

	require.NoError(t, executeCmd(t, app, "projects", "create",
		"--name", "Documentary", "--code", "DOCS", "--type", "documentary"))

	assert.Equal(t, 1, backend.Calls(http.MethodPost, "/projects"))
}

func TestInvoicesPayCmd(t *testing.T) {
	app, backend := testApp(t)
	backend.Handle(http.MethodPost, "/accounting/invoices/12/payments", http.StatusCreated,
		domain.Payment{ID: 3, InvoiceID: 12, Amount: 1200})

	require.NoError(t, executeCmd(t, app, "accounting", "invoices", "pay", "12",
		"--amount", "1200", "--date", "2026-08-15"))

	assert.JSONEq(t, `{"amount":1200,"payment_date":"2026-08-15","payment_method":"bank_transfer"}`,
		string(backend.LastBody(http.MethodPost, "/accounting/invoices/12/payments")))
}

func TestLeaveRejectCmd_RequiresReason(t *testing.T) {
	app, backend := testApp(t)

	err := executeCmd(t, app, "hr", "leave", "reject", "4")
	require.Error(t, err)
	assert.Equal(t, 0, backend.Calls(http.MethodPut, "/hr/leave-requests/4"))
}

func TestDateFlagRejectsBadInput(t *testing.T) {
	app, backend := testApp(t)

	err := executeCmd(t, app, "accounting", "invoices", "pay", "12",
		"--amount", "100", "--date", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	assert.Equal(t, 0, backend.Calls(http.MethodPost, "/accounting/invoices/12/payments"))
}

func TestEquipmentBookCmd_RequiresDates(t *testing.T) {
	app, _ := testApp(t)
	assert.Error(t, executeCmd(t, app, "equipment", "book", "3"))
}
