package pmt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidPortion is returned for a portion the backend does not know.
	ErrInvalidPortion = errors.New("pmt: portion must be habis, half, quarter or none")
	// ErrInvalidDate is returned for a malformed date.
	ErrInvalidDate = errors.New("pmt: date must be YYYY-MM-DD")
)

// ChildResolver picks the child a command acts on.
type ChildResolver interface {
	ChildID(explicit int64) (int64, error)
}

// Service wraps the PMT endpoints.
type Service struct {
	api  domain.PmtAPI
	kids ChildResolver
	now  func() time.Time
	log  *logging.Logger
}

// New returns a PMT service.
func New(api domain.PmtAPI, kids ChildResolver, log *logging.Logger) *Service {
	return &Service{api: api, kids: kids, now: time.Now, log: log}
}

// Menus lists active menus, filtered by age when ageMonths is positive.
func (s *Service) Menus(ctx context.Context, ageMonths int) ([]domain.PmtMenu, error) {
	return s.api.PmtMenus(ctx, ageMonths)
}

// Schedules lists planned meals in period (the current month when empty).
func (s *Service) Schedules(ctx context.Context, childID int64, period domain.PmtPeriod) ([]domain.PmtSchedule, error) {
	id, err := s.kids.ChildID(childID)
	if err != nil {
		return nil, err
	}
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	return s.api.PmtSchedules(ctx, id, period)
}

// Plan schedules menuID on date. An empty date means today.
func (s *Service) Plan(ctx context.Context, childID, menuID int64, date string) (domain.PmtSchedule, error) {
	id, err := s.kids.ChildID(childID)
	if err != nil {
		return domain.PmtSchedule{}, err
	}
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	if !validDate(date) {
		return domain.PmtSchedule{}, ErrInvalidDate
	}
	sc, err := s.api.CreatePmtSchedule(ctx, id, domain.CreatePmtScheduleRequest{MenuID: menuID, ScheduledDate: date})
	if err != nil {
		return domain.PmtSchedule{}, fmt.Errorf("pmt: plan for child %d: %w", id, err)
	}
	s.log.Info("pmt_planned", map[string]any{"child_id": id, "schedule_id": sc.ID, "menu_id": menuID})
	return sc, nil
}

// Log records how much of a scheduled meal was eaten. With correct set it
// replaces an existing log instead.
func (s *Service) Log(
	ctx context.Context,
	scheduleID int64,
	portion domain.PmtPortion,
	notes string,
	correct bool,
) (domain.PmtSchedule, error) {
	if !portion.Valid() {
		return domain.PmtSchedule{}, ErrInvalidPortion
	}
	req := domain.PmtLogRequest{Portion: portion, Notes: notes}
	var (
		sc  domain.PmtSchedule
		err error
	)
	if correct {
		sc, err = s.api.UpdatePmtLog(ctx, scheduleID, req)
	} else {
		sc, err = s.api.LogPmt(ctx, scheduleID, req)
	}
	if err != nil {
		return domain.PmtSchedule{}, fmt.Errorf("pmt: log schedule %d: %w", scheduleID, err)
	}
	s.log.Info("pmt_logged", map[string]any{"schedule_id": scheduleID, "portion": portion, "correction": correct})
	return sc, nil
}

// Progress returns compliance statistics for period.
func (s *Service) Progress(ctx context.Context, childID int64, period domain.PmtPeriod) (domain.PmtProgress, error) {
	id, err := s.kids.ChildID(childID)
	if err != nil {
		return domain.PmtProgress{}, err
	}
	if err := validPeriod(period); err != nil {
		return domain.PmtProgress{}, err
	}
	return s.api.PmtProgress(ctx, id, period)
}

func validPeriod(p domain.PmtPeriod) error {
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d != "" && !validDate(d) {
			return ErrInvalidDate
		}
	}
	return nil
}

func validDate(d string) bool {
	_, err := time.Parse(dateLayout, d)
	return err == nil
}
