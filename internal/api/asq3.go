package api

import (
	"context"
	"fmt"

	"kembang/internal/domain"
)

type domainsResponse struct {
	Domains []domain.Asq3Domain `json:"domains"`
}

type ageIntervalsResponse struct {
	AgeIntervals []domain.AgeInterval `json:"age_intervals"`
}

type recommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type recommendationOptions struct {
	DomainID      int64 `url:"domain_id,omitempty"`
	AgeIntervalID int64 `url:"age_interval_id,omitempty"`
}

// Domains returns the five ASQ-3 domains.
func (c *Client) Domains(ctx context.Context) ([]domain.Asq3Domain, error) {
	var out domainsResponse
	if err := c.get(ctx, "/asq3/domains", nil, &out); err != nil {
		return nil, err
	}
	return out.Domains, nil
}

// AgeIntervals returns every age interval.
func (c *Client) AgeIntervals(ctx context.Context) ([]domain.AgeInterval, error) {
	var out ageIntervalsResponse
	if err := c.get(ctx, "/asq3/age-intervals", nil, &out); err != nil {
		return nil, err
	}
	return out.AgeIntervals, nil
}

// Questions returns the domain-grouped questions for an age interval.
func (c *Client) Questions(ctx context.Context, ageIntervalID int64) (domain.QuestionSet, error) {
	var out domain.QuestionSet
	path := fmt.Sprintf("/asq3/age-intervals/%d/questions", ageIntervalID)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return domain.QuestionSet{}, err
	}
	return out, nil
}

// Recommendations returns recommendations, optionally filtered. Zero ids
// mean "no filter".
func (c *Client) Recommendations(
	ctx context.Context,
	domainID int64,
	ageIntervalID int64,
) ([]domain.Recommendation, error) {
	var out recommendationsResponse
	opts := recommendationOptions{DomainID: domainID, AgeIntervalID: ageIntervalID}
	if err := c.get(ctx, "/asq3/recommendations", opts, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}
