package types

// User is the authenticated parent account.
type User struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Role              string `json:"role,omitempty"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	PushNotifications bool   `json:"push_notifications,omitempty"`
	WeeklyReport      bool   `json:"weekly_report,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	RevokeOthers bool   `json:"revoke_others,omitempty"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Phone                string `json:"phone,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// Credentials is what the client keeps locally after logging in.
type Credentials struct {
	APIURL   string `json:"api_url"`
	Token    string `json:"token"`
	User     User   `json:"user"`
	IssuedAt int64  `json:"issued_at"`
}
