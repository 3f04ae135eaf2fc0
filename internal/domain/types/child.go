package types

// Gender of a child as the backend spells it.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is a gender the backend accepts.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Child is a child profile owned by the parent.
type Child struct {
	ID                int64    `json:"id"`
	UserID            int64    `json:"user_id"`
	Name              string   `json:"name"`
	Birthday          string   `json:"birthday"`
	Gender            Gender   `json:"gender"`
	AvatarURL         *string  `json:"avatar_url"`
	BirthWeight       *float64 `json:"birth_weight"`
	BirthHeight       *float64 `json:"birth_height"`
	HeadCircumference *float64 `json:"head_circumference"`
	IsActive          bool     `json:"is_active"`
	Age               Age      `json:"age"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// CreateChildRequest is the body of POST /children.
type CreateChildRequest struct {
	Name              string   `json:"name"`
	Birthday          string   `json:"birthday"`
	Gender            Gender   `json:"gender"`
	BirthWeight       *float64 `json:"birth_weight,omitempty"`
	BirthHeight       *float64 `json:"birth_height,omitempty"`
	HeadCircumference *float64 `json:"head_circumference,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// UpdateChildRequest is the body of PUT /children/{id}. Nil fields are left
// unchanged.
type UpdateChildRequest struct {
	Name              *string  `json:"name,omitempty"`
	Birthday          *string  `json:"birthday,omitempty"`
	Gender            *Gender  `json:"gender,omitempty"`
	BirthWeight       *float64 `json:"birth_weight,omitempty"`
	BirthHeight       *float64 `json:"birth_height,omitempty"`
	HeadCircumference *float64 `json:"head_circumference,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}
