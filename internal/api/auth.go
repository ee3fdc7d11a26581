package api

import (
	"context"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// AuthClient exchanges credentials for tokens and resolves the
// current identity.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// TokenResponse is the body returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges a username and password for a bearer token. The
// endpoint expects form encoding, not JSON.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tok TokenResponse
	if err := a.c.PostForm(ctx, "/auth/login", form, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Me returns the user the current token belongs to.
func (a *AuthClient) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := a.c.Get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
