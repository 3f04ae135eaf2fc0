package children

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

const dateLayout = "2006-01-02"

var (
	// ErrNoChild is returned when no child id was given and none is active.
	ErrNoChild = errors.New("no child selected (run: kembang children use <id>)")
	// ErrInvalidChild is returned when a profile fails local validation.
	ErrInvalidChild = errors.New("children: invalid profile")
)

// Service wraps the children endpoints and the active-child preference.
type Service struct {
	api   domain.ChildrenAPI
	prefs domain.PreferenceStore
	log   *logging.Logger
}

// New returns a children service.
func New(api domain.ChildrenAPI, prefs domain.PreferenceStore, log *logging.Logger) *Service {
	return &Service{api: api, prefs: prefs, log: log}
}

// ChildID returns explicit when positive, otherwise the active child.
func (s *Service) ChildID(explicit int64) (int64, error) {
	if explicit > 0 {
		return explicit, nil
	}
	id, ok, err := s.prefs.ActiveChildID()
	if err != nil {
		return 0, fmt.Errorf("children: read active child: %w", err)
	}
	if !ok || id <= 0 {
		return 0, ErrNoChild
	}
	return id, nil
}

// List returns the children together with the active child id (0 if none).
func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Child, int64, error) {
	kids, err := s.api.ListChildren(ctx, activeOnly)
	if err != nil {
		return nil, 0, err
	}
	active, _, err := s.prefs.ActiveChildID()
	if err != nil {
		return nil, 0, fmt.Errorf("children: read active child: %w", err)
	}
	return kids, active, nil
}

// Use makes childID the active child after checking it exists.
func (s *Service) Use(ctx context.Context, childID int64) (domain.Child, error) {
	child, err := s.api.GetChild(ctx, childID)
	if err != nil {
		return domain.Child{}, err
	}
	if err := s.prefs.SetActiveChildID(child.ID); err != nil {
		return domain.Child{}, fmt.Errorf("children: save active child: %w", err)
	}
	s.log.Info("active_child", map[string]any{"child_id": child.ID})
	return child, nil
}

// Add creates a profile. The first child added becomes the active child.
func (s *Service) Add(ctx context.Context, req domain.CreateChildRequest) (domain.Child, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(&req.Name, &req.Birthday, &req.Gender); err != nil {
		return domain.Child{}, err
	}
	child, err := s.api.CreateChild(ctx, req)
	if err != nil {
		return domain.Child{}, err
	}
	if _, ok, err := s.prefs.ActiveChildID(); err == nil && !ok {
		if err := s.prefs.SetActiveChildID(child.ID); err != nil {
			return child, fmt.Errorf("children: save active child: %w", err)
		}
	}
	s.log.Info("child_added", map[string]any{"child_id": child.ID})
	return child, nil
}

// Edit changes the fields set in req.
func (s *Service) Edit(ctx context.Context, childID int64, req domain.UpdateChildRequest) (domain.Child, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validate(req.Name, req.Birthday, req.Gender); err != nil {
		return domain.Child{}, err
	}
	return s.api.UpdateChild(ctx, childID, req)
}

// Remove deletes a profile and forgets it as the active child.
func (s *Service) Remove(ctx context.Context, childID int64) error {
	if err := s.api.DeleteChild(ctx, childID); err != nil {
		return err
	}
	active, ok, err := s.prefs.ActiveChildID()
	if err != nil {
		return fmt.Errorf("children: read active child: %w", err)
	}
	if ok && active == childID {
		if err := s.prefs.ClearActiveChildID(); err != nil {
			return fmt.Errorf("children: clear active child: %w", err)
		}
	}
	s.log.Info("child_removed", map[string]any{"child_id": childID})
	return nil
}

// validate checks the fields that are present.
func validate(name, birthday *string, gender *domain.Gender) error {
	if name != nil && *name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidChild)
	}
	if birthday != nil {
		if _, err := time.Parse(dateLayout, *birthday); err != nil {
			return fmt.Errorf("%w: birthday must be YYYY-MM-DD", ErrInvalidChild)
		}
	}
	if gender != nil && !gender.Valid() {
		return fmt.Errorf("%w: gender must be male, female or other", ErrInvalidChild)
	}
	return nil
}
