package types

// PmtPortion is how much of a supplemental feeding (PMT) meal was eaten.
type PmtPortion string

const (
	PortionHabis   PmtPortion = "habis"
	PortionHalf    PmtPortion = "half"
	PortionQuarter PmtPortion = "quarter"
	PortionNone    PmtPortion = "none"
)

// Portions lists every portion, largest first.
var Portions = []PmtPortion{PortionHabis, PortionHalf, PortionQuarter, PortionNone}

// Valid reports whether p is a known portion.
func (p PmtPortion) Valid() bool {
	switch p {
	case PortionHabis, PortionHalf, PortionQuarter, PortionNone:
		return true
	}
	return false
}

// Percentage returns the share of the meal eaten.
func (p PmtPortion) Percentage() int {
	switch p {
	case PortionHabis:
		return 100
	case PortionHalf:
		return 50
	case PortionQuarter:
		return 25
	}
	return 0
}

// Label returns the Indonesian label of the portion.
func (p PmtPortion) Label() string {
	switch p {
	case PortionHabis:
		return "Habis"
	case PortionHalf:
		return "Setengah"
	case PortionQuarter:
		return "Seperempat"
	case PortionNone:
		return "Tidak dimakan"
	}
	return string(p)
}

// PmtMenuNutrition is the nutrition content of one PMT serving.
type PmtMenuNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// PmtMenuAgeRange bounds the ages a menu suits.
type PmtMenuAgeRange struct {
	MinMonths int `json:"min_months"`
	MaxMonths int `json:"max_months"`
}

// PmtMenu is a supplemental feeding menu.
type PmtMenu struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	Nutrition   PmtMenuNutrition `json:"nutrition"`
	AgeRange    PmtMenuAgeRange  `json:"age_range"`
	IsActive    bool             `json:"is_active"`
}

// PmtLog records how a scheduled meal was eaten.
type PmtLog struct {
	ID                int64      `json:"id"`
	Portion           PmtPortion `json:"portion"`
	PortionPercentage int        `json:"portion_percentage"`
	PortionLabel      string     `json:"portion_label"`
	PhotoURL          *string    `json:"photo_url"`
	Notes             *string    `json:"notes"`
	LoggedAt          string     `json:"logged_at"`
}

// PmtScheduleMenu is the menu summary embedded in a schedule.
type PmtScheduleMenu struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// PmtSchedule is one planned PMT meal for a child.
type PmtSchedule struct {
	ID            int64           `json:"id"`
	ChildID       int64           `json:"child_id"`
	ScheduledDate string          `json:"scheduled_date"`
	IsLogged      bool            `json:"is_logged"`
	Menu          PmtScheduleMenu `json:"menu"`
	Log           *PmtLog         `json:"log"`
	CreatedAt     string          `json:"created_at"`
}

// PmtPeriod is an inclusive date range. Empty bounds mean the current month.
type PmtPeriod struct {
	StartDate string `json:"start_date" url:"start_date,omitempty"`
	EndDate   string `json:"end_date" url:"end_date,omitempty"`
}

// CreatePmtScheduleRequest is the body of POST /children/{id}/pmt-schedules.
type CreatePmtScheduleRequest struct {
	MenuID        int64  `json:"menu_id"`
	ScheduledDate string `json:"scheduled_date"`
}

// PmtLogRequest is the body of POST and PUT /pmt-schedules/{id}/log.
type PmtLogRequest struct {
	Portion PmtPortion `json:"portion,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}

// PmtProgressSummary aggregates compliance over a period.
type PmtProgressSummary struct {
	TotalScheduled  int     `json:"total_scheduled"`
	TotalLogged     int     `json:"total_logged"`
	Pending         int     `json:"pending"`
	ComplianceRate  float64 `json:"compliance_rate"`
	ConsumptionRate float64 `json:"consumption_rate"`
}

// PmtConsumptionBreakdown counts logs per portion.
type PmtConsumptionBreakdown struct {
	Habis   int `json:"habis"`
	Half    int `json:"half"`
	Quarter int `json:"quarter"`
	None    int `json:"none"`
}

// PmtProgress is returned by GET /children/{id}/pmt-progress.
type PmtProgress struct {
	Period               PmtPeriod               `json:"period"`
	Summary              PmtProgressSummary      `json:"summary"`
	ConsumptionBreakdown PmtConsumptionBreakdown `json:"consumption_breakdown"`
}
