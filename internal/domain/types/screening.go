package types

// ScreeningStatus is the lifecycle status of one ASQ-3 attempt.
type ScreeningStatus string

const (
	ScreeningInProgress ScreeningStatus = "in_progress"
	ScreeningCompleted  ScreeningStatus = "completed"
	ScreeningCancelled  ScreeningStatus = "cancelled"
)

// ResultStatus classifies a domain score or a whole screening.
type ResultStatus string

const (
	ResultSesuai       ResultStatus = "sesuai"
	ResultPantau       ResultStatus = "pantau"
	ResultPerluRujukan ResultStatus = "perlu_rujukan"
)

// AnswerValue is the backend's answer vocabulary.
type AnswerValue string

const (
	AnswerYes       AnswerValue = "yes"
	AnswerSometimes AnswerValue = "sometimes"
	AnswerNo        AnswerValue = "no"
)

// Valid reports whether v is one of the three accepted answers.
func (v AnswerValue) Valid() bool {
	switch v {
	case AnswerYes, AnswerSometimes, AnswerNo:
		return true
	}
	return false
}

// DomainRef is the abbreviated domain embedded in results.
type DomainRef struct {
	Code  DomainCode `json:"code"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
}

// DomainResult is the scored outcome for one domain.
type DomainResult struct {
	Domain          DomainRef    `json:"domain"`
	TotalScore      float64      `json:"total_score"`
	CutoffScore     float64      `json:"cutoff_score"`
	MonitoringScore float64      `json:"monitoring_score"`
	Status          ResultStatus `json:"status"`
	StatusLabel     string       `json:"status_label"`
}

// Screening identifies one ASQ-3 attempt for a child.
type Screening struct {
	ID                 int64           `json:"id"`
	ChildID            int64           `json:"child_id"`
	ScreeningDate      string          `json:"screening_date"`
	AgeAtScreening     Age             `json:"age_at_screening"`
	AgeInterval        AgeInterval     `json:"age_interval"`
	Status             ScreeningStatus `json:"status"`
	StatusLabel        string          `json:"status_label"`
	OverallStatus      *ResultStatus   `json:"overall_status"`
	OverallStatusLabel *string         `json:"overall_status_label"`
	CompletedAt        *string         `json:"completed_at"`
	AnswersCount       int             `json:"answers_count"`
	Results            []DomainResult  `json:"results"`
	Notes              *string         `json:"notes"`
	CreatedAt          string          `json:"created_at"`
}

// CreateScreeningRequest is the optional body of POST /children/{id}/screenings.
type CreateScreeningRequest struct {
	ScreeningDate string `json:"screening_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// UpdateScreeningRequest edits notes or cancels a screening.
type UpdateScreeningRequest struct {
	Notes  *string         `json:"notes,omitempty"`
	Status ScreeningStatus `json:"status,omitempty"`
}

// AnswerInput is one answer in a submission.
type AnswerInput struct {
	QuestionID int64       `json:"question_id"`
	Answer     AnswerValue `json:"answer"`
}

// SubmitAnswersRequest is the body of POST .../answers.
type SubmitAnswersRequest struct {
	Answers []AnswerInput `json:"answers"`
}

// ScreeningSummary is the condensed screening embedded in results.
type ScreeningSummary struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	AgeAtScreening int             `json:"age_at_screening"`
	Status         ScreeningStatus `json:"status"`
	OverallStatus  ResultStatus    `json:"overall_status"`
}

// ScreeningResults is the payload of GET .../results.
type ScreeningResults struct {
	Screening       ScreeningSummary `json:"screening"`
	Results         []DomainResult   `json:"results"`
	Recommendations []Recommendation `json:"recommendations"`
}
