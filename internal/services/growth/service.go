package growth

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

const dateLayout = "2006-01-02"

// ErrInvalidMeasurement is returned when a measurement fails local validation.
var ErrInvalidMeasurement = errors.New("growth: invalid measurement")

// ChildResolver picks the child a command acts on.
type ChildResolver interface {
	ChildID(explicit int64) (int64, error)
}

// Service wraps the anthropometry endpoints.
type Service struct {
	api  domain.GrowthAPI
	kids ChildResolver
	now  func() time.Time
	log  *logging.Logger
}

// New returns a growth service.
func New(api domain.GrowthAPI, kids ChildResolver, log *logging.Logger) *Service {
	return &Service{api: api, kids: kids, now: time.Now, log: log}
}

// History returns measurements, newest first.
func (s *Service) History(
	ctx context.Context,
	childID int64,
	opts domain.AnthropometryListOptions,
) ([]domain.Anthropometry, domain.Pagination, error) {
	id, err := s.kids.ChildID(childID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	list, page, err := s.api.ListMeasurements(ctx, id, opts)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("growth: list for child %d: %w", id, err)
	}
	return list, page, nil
}

// Latest returns the newest measurement, or nil when there is none.
func (s *Service) Latest(ctx context.Context, childID int64) (*domain.Anthropometry, error) {
	list, _, err := s.History(ctx, childID, domain.AnthropometryListOptions{PerPage: 1})
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// Record stores a measurement. An empty date means today.
func (s *Service) Record(
	ctx context.Context,
	childID int64,
	req domain.CreateAnthropometryRequest,
) (domain.Anthropometry, error) {
	id, err := s.kids.ChildID(childID)
	if err != nil {
		return domain.Anthropometry{}, err
	}
	if req.MeasurementDate == "" {
		req.MeasurementDate = s.now().Format(dateLayout)
	}
	if err := validate(req); err != nil {
		return domain.Anthropometry{}, err
	}
	m, err := s.api.CreateMeasurement(ctx, id, req)
	if err != nil {
		return domain.Anthropometry{}, fmt.Errorf("growth: record for child %d: %w", id, err)
	}
	s.log.Info("measurement_recorded", map[string]any{
		"child_id":       id,
		"measurement_id": m.ID,
		"bmi":            m.BMI,
	})
	return m, nil
}

func validate(req domain.CreateAnthropometryRequest) error {
	if _, err := time.Parse(dateLayout, req.MeasurementDate); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidMeasurement)
	}
	if !positive(req.Weight) {
		return fmt.Errorf("%w: weight must be a positive number of kg", ErrInvalidMeasurement)
	}
	if !positive(req.Height) {
		return fmt.Errorf("%w: height must be a positive number of cm", ErrInvalidMeasurement)
	}
	if req.HeadCircumference != nil && !positive(*req.HeadCircumference) {
		return fmt.Errorf("%w: head circumference must be positive", ErrInvalidMeasurement)
	}
	if req.MeasurementLocation != "" && !req.MeasurementLocation.Valid() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidMeasurement, req.MeasurementLocation)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) }
