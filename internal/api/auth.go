package api

import (
	"context"

	"kembang/internal/domain"
)

type meResponse struct {
	User domain.User `json:"user"`
}

type refreshResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login exchanges email and password for a token. The token is not stored on c.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return domain.AuthResponse{}, err
	}
	return out, nil
}

// Register creates a parent account and returns its first token.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return domain.AuthResponse{}, err
	}
	return out, nil
}

// Logout revokes the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out meResponse
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// RefreshToken issues a new token for the current session.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out refreshResponse
	if err := c.post(ctx, "/auth/refresh", nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}
