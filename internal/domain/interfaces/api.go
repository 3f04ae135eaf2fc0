package interfaces

import (
	"context"

	domaintypes "kembang/internal/domain/types"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, req domaintypes.LoginRequest) (domaintypes.AuthResponse, error)
	Register(ctx context.Context, req domaintypes.RegisterRequest) (domaintypes.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (domaintypes.User, error)
	RefreshToken(ctx context.Context) (string, error)
}

// ChildrenAPI covers the /children endpoints.
type ChildrenAPI interface {
	ListChildren(ctx context.Context, activeOnly bool) ([]domaintypes.Child, error)
	GetChild(ctx context.Context, childID int64) (domaintypes.Child, error)
	CreateChild(ctx context.Context, req domaintypes.CreateChildRequest) (domaintypes.Child, error)
	UpdateChild(ctx context.Context, childID int64, req domaintypes.UpdateChildRequest) (domaintypes.Child, error)
	DeleteChild(ctx context.Context, childID int64) error
}

// Asq3API covers ASQ-3 reference data. All of it is immutable.
type Asq3API interface {
	Domains(ctx context.Context) ([]domaintypes.Asq3Domain, error)
	AgeIntervals(ctx context.Context) ([]domaintypes.AgeInterval, error)
	Questions(ctx context.Context, ageIntervalID int64) (domaintypes.QuestionSet, error)
	Recommendations(
		ctx context.Context,
		domainID int64,
		ageIntervalID int64,
	) ([]domaintypes.Recommendation, error)
}

// ScreeningAPI covers /children/{id}/screenings. The backend is the system
// of record for screenings and answers.
type ScreeningAPI interface {
	ListScreenings(
		ctx context.Context,
		childID int64,
		perPage int,
	) ([]domaintypes.Screening, domaintypes.Pagination, error)
	GetScreening(ctx context.Context, childID, screeningID int64) (domaintypes.Screening, error)
	// InProgressScreening returns nil when the child has no in-progress screening.
	InProgressScreening(ctx context.Context, childID int64) (*domaintypes.Screening, error)
	CreateScreening(
		ctx context.Context,
		childID int64,
		req domaintypes.CreateScreeningRequest,
	) (domaintypes.Screening, error)
	UpdateScreening(
		ctx context.Context,
		childID int64,
		screeningID int64,
		req domaintypes.UpdateScreeningRequest,
	) (domaintypes.Screening, error)
	SubmitAnswers(
		ctx context.Context,
		childID int64,
		screeningID int64,
		req domaintypes.SubmitAnswersRequest,
	) (domaintypes.Screening, error)
	ScreeningResults(
		ctx context.Context,
		childID int64,
		screeningID int64,
	) (domaintypes.ScreeningResults, error)
}

// GrowthAPI covers /children/{id}/anthropometry.
type GrowthAPI interface {
	ListMeasurements(
		ctx context.Context,
		childID int64,
		opts domaintypes.AnthropometryListOptions,
	) ([]domaintypes.Anthropometry, domaintypes.Pagination, error)
	CreateMeasurement(
		ctx context.Context,
		childID int64,
		req domaintypes.CreateAnthropometryRequest,
	) (domaintypes.Anthropometry, error)
}

// PmtAPI covers supplemental feeding (PMT) menus, schedules and logs.
type PmtAPI interface {
	PmtMenus(ctx context.Context, ageMonths int) ([]domaintypes.PmtMenu, error)
	PmtSchedules(ctx context.Context, childID int64, period domaintypes.PmtPeriod) ([]domaintypes.PmtSchedule, error)
	CreatePmtSchedule(
		ctx context.Context,
		childID int64,
		req domaintypes.CreatePmtScheduleRequest,
	) (domaintypes.PmtSchedule, error)
	LogPmt(ctx context.Context, scheduleID int64, req domaintypes.PmtLogRequest) (domaintypes.PmtSchedule, error)
	UpdatePmtLog(ctx context.Context, scheduleID int64, req domaintypes.PmtLogRequest) (domaintypes.PmtSchedule, error)
	PmtProgress(ctx context.Context, childID int64, period domaintypes.PmtPeriod) (domaintypes.PmtProgress, error)
}

// BackendClient is everything the CLI talks to.
type BackendClient interface {
	AuthAPI
	ChildrenAPI
	Asq3API
	ScreeningAPI
	GrowthAPI
	PmtAPI
}
