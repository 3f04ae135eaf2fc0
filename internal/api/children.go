package api

import (
	"context"
	"strconv"

	"kembang/internal/domain"
)

type listChildrenOptions struct {
	ActiveOnly int `url:"active_only,omitempty"`
}

type childrenResponse struct {
	Data []domain.Child `json:"data"`
}

type childResponse struct {
	Message string       `json:"message,omitempty"`
	Child   domain.Child `json:"child"`
}

func childPath(childID int64) string {
	return "/children/" + strconv.FormatInt(childID, 10)
}

// ListChildren returns the parent's children.
func (c *Client) ListChildren(ctx context.Context, activeOnly bool) ([]domain.Child, error) {
	var opts listChildrenOptions
	if activeOnly {
		opts.ActiveOnly = 1
	}
	var out childrenResponse
	if err := c.get(ctx, "/children", opts, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetChild returns one child.
func (c *Client) GetChild(ctx context.Context, childID int64) (domain.Child, error) {
	var out childResponse
	if err := c.get(ctx, childPath(childID), nil, &out); err != nil {
		return domain.Child{}, err
	}
	return out.Child, nil
}

// CreateChild adds a child profile.
func (c *Client) CreateChild(ctx context.Context, req domain.CreateChildRequest) (domain.Child, error) {
	var out childResponse
	if err := c.post(ctx, "/children", req, &out); err != nil {
		return domain.Child{}, err
	}
	return out.Child, nil
}

// UpdateChild changes the fields set in req.
func (c *Client) UpdateChild(ctx context.Context, childID int64, req domain.UpdateChildRequest) (domain.Child, error) {
	var out childResponse
	if err := c.put(ctx, childPath(childID), req, &out); err != nil {
		return domain.Child{}, err
	}
	return out.Child, nil
}

// DeleteChild removes a child profile.
func (c *Client) DeleteChild(ctx context.Context, childID int64) error {
	return c.delete(ctx, childPath(childID))
}
