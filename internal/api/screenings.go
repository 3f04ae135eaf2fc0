package api

import (
	"context"
	"fmt"

	"kembang/internal/domain"
)

// inProgressScanPageSize is the page size used while looking for the
// in-progress screening.
const inProgressScanPageSize = 50

type listScreeningsOptions struct {
	Page    int `url:"page,omitempty"`
	PerPage int `url:"per_page,omitempty"`
}

type screeningsResponse struct {
	Screenings []domain.Screening `json:"screenings"`
	Pagination domain.Pagination  `json:"pagination"`
}

type screeningResponse struct {
	Message   string           `json:"message,omitempty"`
	Screening domain.Screening `json:"screening"`
}

func screeningsPath(childID int64) string {
	return fmt.Sprintf("/children/%d/screenings", childID)
}

func screeningPath(childID, screeningID int64) string {
	return fmt.Sprintf("/children/%d/screenings/%d", childID, screeningID)
}

// ListScreenings returns a child's screenings, newest first.
func (c *Client) ListScreenings(
	ctx context.Context,
	childID int64,
	perPage int,
) ([]domain.Screening, domain.Pagination, error) {
	return c.listScreenings(ctx, childID, listScreeningsOptions{PerPage: perPage})
}

func (c *Client) listScreenings(
	ctx context.Context,
	childID int64,
	opts listScreeningsOptions,
) ([]domain.Screening, domain.Pagination, error) {
	var out screeningsResponse
	if err := c.get(ctx, screeningsPath(childID), opts, &out); err != nil {
		return nil, domain.Pagination{}, err
	}
	return out.Screenings, out.Pagination, nil
}

// GetScreening returns one screening.
func (c *Client) GetScreening(ctx context.Context, childID, screeningID int64) (domain.Screening, error) {
	var out screeningResponse
	if err := c.get(ctx, screeningPath(childID, screeningID), nil, &out); err != nil {
		return domain.Screening{}, err
	}
	return out.Screening, nil
}

// CreateScreening starts a new screening for the child.
func (c *Client) CreateScreening(
	ctx context.Context,
	childID int64,
	req domain.CreateScreeningRequest,
) (domain.Screening, error) {
	var out screeningResponse
	if err := c.post(ctx, screeningsPath(childID), req, &out); err != nil {
		return domain.Screening{}, err
	}
	return out.Screening, nil
}

// UpdateScreening edits notes or cancels a screening.
func (c *Client) UpdateScreening(
	ctx context.Context,
	childID int64,
	screeningID int64,
	req domain.UpdateScreeningRequest,
) (domain.Screening, error) {
	var out screeningResponse
	if err := c.put(ctx, screeningPath(childID, screeningID), req, &out); err != nil {
		return domain.Screening{}, err
	}
	return out.Screening, nil
}

// SubmitAnswers records answers. The backend completes the screening once
// every question has one.
func (c *Client) SubmitAnswers(
	ctx context.Context,
	childID int64,
	screeningID int64,
	req domain.SubmitAnswersRequest,
) (domain.Screening, error) {
	var out screeningResponse
	if err := c.post(ctx, screeningPath(childID, screeningID)+"/answers", req, &out); err != nil {
		return domain.Screening{}, err
	}
	return out.Screening, nil
}

// ScreeningResults returns per-domain results and recommendations.
func (c *Client) ScreeningResults(
	ctx context.Context,
	childID int64,
	screeningID int64,
) (domain.ScreeningResults, error) {
	var out domain.ScreeningResults
	if err := c.get(ctx, screeningPath(childID, screeningID)+"/results", nil, &out); err != nil {
		return domain.ScreeningResults{}, err
	}
	return out, nil
}

// InProgressScreening returns the child's in-progress screening, or nil
// when there is none. It walks every page of the list.
func (c *Client) InProgressScreening(ctx context.Context, childID int64) (*domain.Screening, error) {
	for page := 1; ; page++ {
		list, meta, err := c.listScreenings(ctx, childID, listScreeningsOptions{
			Page:    page,
			PerPage: inProgressScanPageSize,
		})
		if err != nil {
			return nil, err
		}
		for i := range list {
			if list[i].Status == domain.ScreeningInProgress {
				s := list[i]
				return &s, nil
			}
		}
		if len(list) == 0 || page >= meta.LastPage {
			return nil, nil
		}
	}
}
