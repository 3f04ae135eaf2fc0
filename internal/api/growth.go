package api

import (
	"context"
	"fmt"

	"kembang/internal/domain"
)

type measurementsResponse struct {
	Data       []domain.Anthropometry `json:"data"`
	Pagination domain.Pagination      `json:"pagination"`
}

type measurementResponse struct {
	Message     string               `json:"message,omitempty"`
	Measurement domain.Anthropometry `json:"measurement"`
}

func anthropometryPath(childID int64) string {
	return fmt.Sprintf("/children/%d/anthropometry", childID)
}

// ListMeasurements returns a child's growth measurements, newest first.
func (c *Client) ListMeasurements(
	ctx context.Context,
	childID int64,
	opts domain.AnthropometryListOptions,
) ([]domain.Anthropometry, domain.Pagination, error) {
	var out measurementsResponse
	if err := c.get(ctx, anthropometryPath(childID), opts, &out); err != nil {
		return nil, domain.Pagination{}, err
	}
	return out.Data, out.Pagination, nil
}

// CreateMeasurement records a measurement. The backend fills in BMI,
// z-scores and nutritional status.
func (c *Client) CreateMeasurement(
	ctx context.Context,
	childID int64,
	req domain.CreateAnthropometryRequest,
) (domain.Anthropometry, error) {
	var out measurementResponse
	if err := c.post(ctx, anthropometryPath(childID), req, &out); err != nil {
		return domain.Anthropometry{}, err
	}
	return out.Measurement, nil
}
