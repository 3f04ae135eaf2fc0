package types

// MeasurementLocation is where a measurement was taken.
type MeasurementLocation string

const (
	LocationPosyandu MeasurementLocation = "posyandu"
	LocationHome     MeasurementLocation = "home"
	LocationClinic   MeasurementLocation = "clinic"
	LocationHospital MeasurementLocation = "hospital"
	LocationOther    MeasurementLocation = "other"
)

// Valid reports whether l is a known location.
func (l MeasurementLocation) Valid() bool {
	switch l {
	case LocationPosyandu, LocationHome, LocationClinic, LocationHospital, LocationOther:
		return true
	}
	return false
}

// ZScores are the growth z-scores computed by the backend.
type ZScores struct {
	WeightForAge      float64  `json:"weight_for_age"`
	HeightForAge      float64  `json:"height_for_age"`
	WeightForHeight   float64  `json:"weight_for_height"`
	BMIForAge         float64  `json:"bmi_for_age"`
	HeadCircumference *float64 `json:"head_circumference"`
}

// NutritionalStatus is the backend's assessment of one measurement.
type NutritionalStatus struct {
	Nutritional string `json:"nutritional"`
	Stunting    string `json:"stunting"`
	Wasting     string `json:"wasting"`
}

// Anthropometry is one growth measurement of a child.
type Anthropometry struct {
	ID                  int64                `json:"id"`
	ChildID             int64                `json:"child_id"`
	MeasurementDate     string               `json:"measurement_date"`
	Weight              float64              `json:"weight"`
	Height              float64              `json:"height"`
	HeadCircumference   *float64             `json:"head_circumference"`
	BMI                 float64              `json:"bmi"`
	IsLying             bool                 `json:"is_lying"`
	MeasurementLocation *MeasurementLocation `json:"measurement_location"`
	ZScores             ZScores              `json:"z_scores"`
	Status              NutritionalStatus    `json:"status"`
	Notes               *string              `json:"notes"`
	CreatedAt           string               `json:"created_at"`
}

// CreateAnthropometryRequest is the body of POST /children/{id}/anthropometry.
type CreateAnthropometryRequest struct {
	MeasurementDate     string              `json:"measurement_date"`
	Weight              float64             `json:"weight"`
	Height              float64             `json:"height"`
	HeadCircumference   *float64            `json:"head_circumference,omitempty"`
	IsLying             bool                `json:"is_lying,omitempty"`
	MeasurementLocation MeasurementLocation `json:"measurement_location,omitempty"`
	Notes               string              `json:"notes,omitempty"`
}

// AnthropometryListOptions filters GET /children/{id}/anthropometry.
type AnthropometryListOptions struct {
	Page      int    `url:"page,omitempty"`
	PerPage   int    `url:"per_page,omitempty"`
	StartDate string `url:"start_date,omitempty"`
	EndDate   string `url:"end_date,omitempty"`
}
