package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// TasksClient covers tasks across and within projects.
type TasksClient struct {
	c *Client
}

func NewTasksClient(c *Client) *TasksClient {
	return &TasksClient{c: c}
}

// TaskFilter narrows ListAll.
type TaskFilter struct {
	Status     string
	AssigneeID *int
}

func (f TaskFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "assignee_id", f.AssigneeID)
	return v
}

// ProjectTaskFilter narrows ListByProject.
type ProjectTaskFilter struct {
	Status   string
	SprintID *int
}

func (f ProjectTaskFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "sprint_id", f.SprintID)
	return v
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	ProjectID      int      `json:"project_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	TaskType       string   `json:"task_type,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	AssigneeID     *int     `json:"assignee_id,omitempty"`
	SprintID       *int     `json:"sprint_id,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
}

// UpdateTaskRequest carries only the fields being changed. Moving a
// card between board columns sends exactly one of these with Status
// set and nothing else.
type UpdateTaskRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	AssigneeID     *int     `json:"assignee_id,omitempty"`
	SprintID       *int     `json:"sprint_id,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	Position       *int     `json:"position,omitempty"`
}

func (t *TasksClient) ListAll(ctx context.Context, f TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	if err := t.c.Get(ctx, "/projects/tasks/all", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TasksClient) ListByProject(ctx context.Context, projectID int, f ProjectTaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	if err := t.c.Get(ctx, fmt.Sprintf("/projects/%d/tasks", projectID), f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TasksClient) Get(ctx context.Context, id int) (*domain.Task, error) {
	var out domain.Task
	if err := t.c.Get(ctx, fmt.Sprintf("/projects/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TasksClient) Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	var out domain.Task
	if err := t.c.Post(ctx, "/projects/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TasksClient) Update(ctx context.Context, id int, req UpdateTaskRequest) (*domain.Task, error) {
	var out domain.Task
	if err := t.c.Put(ctx, fmt.Sprintf("/projects/tasks/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TasksClient) Delete(ctx context.Context, id int) error {
	return t.c.Delete(ctx, fmt.Sprintf("/projects/tasks/%d", id))
}
