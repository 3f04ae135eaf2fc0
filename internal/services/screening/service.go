package screening

import (
	"context"
	"fmt"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

// Service groups screening operations for one authenticated parent.
type Service struct {
	backend  Backend
	active   domain.ActiveChild
	resolver *Resolver
	log      *logging.Logger
}

// New returns a screening service. active may be nil.
func New(backend Backend, active domain.ActiveChild, log *logging.Logger) *Service {
	return &Service{
		backend:  backend,
		active:   active,
		resolver: NewResolver(backend, active, log),
		log:      log,
	}
}

// Begin returns a questionnaire for params. Each questionnaire gets its own
// resolver so the single-creation guard is scoped to it.
func (s *Service) Begin(ctx context.Context, nav Navigator, params Params) *Questionnaire {
	resolver := NewResolver(s.backend, s.active, s.log)
	return NewQuestionnaire(ctx, s.backend, resolver, nav, params, s.log)
}

// ChildID resolves an explicit child id or the active child.
func (s *Service) ChildID(childID int64) (int64, error) {
	return s.resolver.ChildID(Params{ChildID: childID})
}

// List returns the child's screenings, newest first.
func (s *Service) List(ctx context.Context, childID int64, perPage int) ([]domain.Screening, error) {
	id, err := s.ChildID(childID)
	if err != nil {
		return nil, err
	}
	list, _, err := s.backend.ListScreenings(ctx, id, perPage)
	if err != nil {
		return nil, fmt.Errorf("screening: list for child %d: %w", id, err)
	}
	return list, nil
}

// Results returns scored results and recommendations.
func (s *Service) Results(ctx context.Context, childID, screeningID int64) (domain.ScreeningResults, error) {
	id, err := s.ChildID(childID)
	if err != nil {
		return domain.ScreeningResults{}, err
	}
	res, err := s.backend.ScreeningResults(ctx, id, screeningID)
	if err != nil {
		return domain.ScreeningResults{}, fmt.Errorf("screening: results for %d: %w", screeningID, err)
	}
	return res, nil
}

// Cancel marks an in-progress screening cancelled.
func (s *Service) Cancel(ctx context.Context, childID, screeningID int64) (domain.Screening, error) {
	id, err := s.ChildID(childID)
	if err != nil {
		return domain.Screening{}, err
	}
	sc, err := s.backend.UpdateScreening(ctx, id, screeningID, domain.UpdateScreeningRequest{
		Status: domain.ScreeningCancelled,
	})
	if err != nil {
		return domain.Screening{}, fmt.Errorf("screening: cancel %d: %w", screeningID, err)
	}
	s.log.Info("cancelled", map[string]any{"child_id": id, "screening_id": screeningID})
	return sc, nil
}

// Sequence returns the flattened questions of an age interval.
func (s *Service) Sequence(ctx context.Context, ageIntervalID int64) (domain.AgeInterval, []domain.Question, error) {
	set, err := s.backend.Questions(ctx, ageIntervalID)
	if err != nil {
		return domain.AgeInterval{}, nil, fmt.Errorf("screening: questions for interval %d: %w", ageIntervalID, err)
	}
	return set.AgeInterval, Flatten(set.QuestionsByDomain), nil
}
