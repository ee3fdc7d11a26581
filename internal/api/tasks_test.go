package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/domain"
	"github.com/slatehq/slate/internal/testutil"
)

func TestUpdateTaskStatusOnlyBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPut, "/projects/tasks/7", http.StatusOK, domain.Task{ID: 7, Status: domain.TaskDone})

	tasks := api.NewTasksClient(newClient(backend, "tok"))
	status := string(domain.TaskDone)
	_, err := tasks.Update(context.Background(), 7, api.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"done"}`, string(backend.LastBody(http.MethodPut, "/projects/tasks/7")))
}

func TestCreateTaskOmitsUnsetFields(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/projects/tasks", http.StatusCreated, domain.Task{ID: 1})

	tasks := api.NewTasksClient(newClient(backend, "tok"))
	_, err := tasks.Create(context.Background(), api.CreateTaskRequest{
		ProjectID: 3,
		Title:     "Color grade teaser",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"project_id":3,"title":"Color grade teaser"}`,
		string(backend.LastBody(http.MethodPost, "/projects/tasks")))
}
