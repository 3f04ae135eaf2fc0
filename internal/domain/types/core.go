package types

// DomainCode names one of the five ASQ-3 developmental areas.
type DomainCode string

// The five ASQ-3 domains, in the order questions are presented.
const (
	DomainCommunication  DomainCode = "communication"
	DomainGrossMotor     DomainCode = "gross_motor"
	DomainFineMotor      DomainCode = "fine_motor"
	DomainProblemSolving DomainCode = "problem_solving"
	DomainPersonalSocial DomainCode = "personal_social"
)

// String returns the string form of the domain code.
func (c DomainCode) String() string { return string(c) }

// Age is an age split into whole months and leftover days.
type Age struct {
	Months int    `json:"months"`
	Days   int    `json:"days"`
	Label  string `json:"label,omitempty"`
}

// Pagination is the simple pagination block used by list endpoints.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// MessageResponse is returned by endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
