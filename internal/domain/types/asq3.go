package types

// Asq3Domain is one developmental area of the ASQ-3 instrument.
type Asq3Domain struct {
	ID           int64      `json:"id"`
	Code         DomainCode `json:"code"`
	Name         string     `json:"name"`
	Color        string     `json:"color"`
	DisplayOrder int        `json:"display_order"`
}

// AgeInterval is a fixed age bracket that selects a question set.
type AgeInterval struct {
	ID        int64  `json:"id"`
	AgeMonths int    `json:"age_months"`
	AgeLabel  string `json:"age_label"`
	MinDays   int    `json:"min_days,omitempty"`
	MaxDays   int    `json:"max_days,omitempty"`
}

// Question is one ASQ-3 item. DisplayOrder is relative to its domain.
type Question struct {
	ID           int64      `json:"id"`
	QuestionText string     `json:"question_text"`
	DomainID     int64      `json:"domain_id"`
	DisplayOrder int        `json:"display_order"`
	Domain       Asq3Domain `json:"domain"`
}

// Cutoff holds the referral and monitoring thresholds for one domain.
type Cutoff struct {
	CutoffScore     float64    `json:"cutoff_score"`
	MonitoringScore float64    `json:"monitoring_score"`
	Domain          Asq3Domain `json:"domain"`
}

// QuestionsByDomain groups questions by domain code.
type QuestionsByDomain map[DomainCode][]Question

// QuestionSet is the payload of GET /asq3/age-intervals/{id}/questions.
type QuestionSet struct {
	AgeInterval       AgeInterval           `json:"age_interval"`
	QuestionsByDomain QuestionsByDomain     `json:"questions_by_domain"`
	Cutoffs           map[DomainCode]Cutoff `json:"cutoffs"`
	TotalQuestions    int                   `json:"total_questions"`
}

// Recommendation is a stimulation tip shown with screening results.
type Recommendation struct {
	ID            int64        `json:"id"`
	DomainID      *int64       `json:"domain_id"`
	AgeIntervalID *int64       `json:"age_interval_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Priority      int          `json:"priority"`
	Domain        *Asq3Domain  `json:"domain"`
	AgeInterval   *AgeInterval `json:"ageInterval"`
}
