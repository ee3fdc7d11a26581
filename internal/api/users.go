package api

import (
	"context"
	"fmt"

	"github.com/slatehq/slate/internal/domain"
)

// UsersClient covers account administration.
type UsersClient struct {
	c *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{c: c}
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (u *UsersClient) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := u.c.Get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *UsersClient) Get(ctx context.Context, id int) (*domain.User, error) {
	var out domain.User
	if err := u.c.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UsersClient) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	var out domain.User
	if err := u.c.Post(ctx, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UsersClient) Update(ctx context.Context, id int, req UpdateUserRequest) (*domain.User, error) {
	var out domain.User
	if err := u.c.Put(ctx, fmt.Sprintf("/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
