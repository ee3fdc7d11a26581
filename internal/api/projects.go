package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// ProjectsClient covers projects, their tasks and sprints.
type ProjectsClient struct {
	c *Client
}

func NewProjectsClient(c *Client) *ProjectsClient {
	return &ProjectsClient{c: c}
}

// ProjectFilter narrows List. Zero values mean no filter.
type ProjectFilter struct {
	Status   string
	ClientID *int
}

func (f ProjectFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "client_id", f.ClientID)
	return v
}

// CreateProjectRequest is the body for creating a project.
type CreateProjectRequest struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Description     string  `json:"description,omitempty"`
	ProjectType     string  `json:"project_type,omitempty"`
	ClientID        *int    `json:"client_id,omitempty"`
	StartDate       string  `json:"start_date,omitempty"`
	TargetEndDate   string  `json:"target_end_date,omitempty"`
	EstimatedBudget float64 `json:"estimated_budget,omitempty"`
}

// UpdateProjectRequest carries only the fields being changed.
type UpdateProjectRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Status          *string  `json:"status,omitempty"`
	ClientID        *int     `json:"client_id,omitempty"`
	StartDate       *string  `json:"start_date,omitempty"`
	TargetEndDate   *string  `json:"target_end_date,omitempty"`
	EstimatedBudget *float64 `json:"estimated_budget,omitempty"`
	IsArchived      *bool    `json:"is_archived,omitempty"`
}

func (p *ProjectsClient) List(ctx context.Context, f ProjectFilter) ([]domain.Project, error) {
	var out []domain.Project
	if err := p.c.Get(ctx, "/projects", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProjectsClient) Get(ctx context.Context, id int) (*domain.Project, error) {
	var out domain.Project
	if err := p.c.Get(ctx, fmt.Sprintf("/projects/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectsClient) Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := p.c.Post(ctx, "/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectsClient) Update(ctx context.Context, id int, req UpdateProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := p.c.Put(ctx, fmt.Sprintf("/projects/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectsClient) Delete(ctx context.Context, id int) error {
	return p.c.Delete(ctx, fmt.Sprintf("/projects/%d", id))
}

// Sprints

func (p *ProjectsClient) ListSprints(ctx context.Context, projectID int) ([]domain.Sprint, error) {
	var out []domain.Sprint
	if err := p.c.Get(ctx, fmt.Sprintf("/projects/%d/sprints", projectID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSprintRequest is the body for creating a sprint.
type CreateSprintRequest struct {
	ProjectID int    `json:"project_id"`
	Name      string `json:"name"`
	Goal      string `json:"goal,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// UpdateSprintRequest carries only the fields being changed.
type UpdateSprintRequest struct {
	Name        *string `json:"name,omitempty"`
	Goal        *string `json:"goal,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

func (p *ProjectsClient) CreateSprint(ctx context.Context, req CreateSprintRequest) (*domain.Sprint, error) {
	var out domain.Sprint
	if err := p.c.Post(ctx, "/projects/sprints", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectsClient) UpdateSprint(ctx context.Context, id int, req UpdateSprintRequest) (*domain.Sprint, error) {
	var out domain.Sprint
	if err := p.c.Put(ctx, fmt.Sprintf("/projects/sprints/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
