package api

import (
	"context"
	"fmt"

	"kembang/internal/domain"
)

type pmtMenusOptions struct {
	AgeMonths int `url:"age_months,omitempty"`
}

type pmtMenusResponse struct {
	Menus []domain.PmtMenu `json:"menus"`
}

type pmtSchedulesResponse struct {
	Schedules []domain.PmtSchedule `json:"schedules"`
}

type pmtScheduleResponse struct {
	Message  string             `json:"message,omitempty"`
	Schedule domain.PmtSchedule `json:"schedule"`
}

func pmtLogPath(scheduleID int64) string {
	return fmt.Sprintf("/pmt-schedules/%d/log", scheduleID)
}

// PmtMenus lists menus, only those suited to ageMonths when it is positive.
func (c *Client) PmtMenus(ctx context.Context, ageMonths int) ([]domain.PmtMenu, error) {
	var out pmtMenusResponse
	if err := c.get(ctx, "/pmt/menus", pmtMenusOptions{AgeMonths: ageMonths}, &out); err != nil {
		return nil, err
	}
	return out.Menus, nil
}

// PmtSchedules lists a child's schedules in period, oldest first.
func (c *Client) PmtSchedules(ctx context.Context, childID int64, period domain.PmtPeriod) ([]domain.PmtSchedule, error) {
	var out pmtSchedulesResponse
	if err := c.get(ctx, fmt.Sprintf("/children/%d/pmt-schedules", childID), period, &out); err != nil {
		return nil, err
	}
	return out.Schedules, nil
}

// CreatePmtSchedule plans a menu for a date.
func (c *Client) CreatePmtSchedule(
	ctx context.Context,
	childID int64,
	req domain.CreatePmtScheduleRequest,
) (domain.PmtSchedule, error) {
	var out pmtScheduleResponse
	if err := c.post(ctx, fmt.Sprintf("/children/%d/pmt-schedules", childID), req, &out); err != nil {
		return domain.PmtSchedule{}, err
	}
	return out.Schedule, nil
}

// LogPmt records how much of a scheduled meal was eaten.
func (c *Client) LogPmt(ctx context.Context, scheduleID int64, req domain.PmtLogRequest) (domain.PmtSchedule, error) {
	var out pmtScheduleResponse
	if err := c.post(ctx, pmtLogPath(scheduleID), req, &out); err != nil {
		return domain.PmtSchedule{}, err
	}
	return out.Schedule, nil
}

// UpdatePmtLog corrects an existing log.
func (c *Client) UpdatePmtLog(ctx context.Context, scheduleID int64, req domain.PmtLogRequest) (domain.PmtSchedule, error) {
	var out pmtScheduleResponse
	if err := c.put(ctx, pmtLogPath(scheduleID), req, &out); err != nil {
		return domain.PmtSchedule{}, err
	}
	return out.Schedule, nil
}

// PmtProgress returns compliance statistics for period.
func (c *Client) PmtProgress(ctx context.Context, childID int64, period domain.PmtPeriod) (domain.PmtProgress, error) {
	var out domain.PmtProgress
	if err := c.get(ctx, fmt.Sprintf("/children/%d/pmt-progress", childID), period, &out); err != nil {
		return domain.PmtProgress{}, err
	}
	return out, nil
}
