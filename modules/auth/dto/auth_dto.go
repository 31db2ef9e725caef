package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type OAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

// Session is the resolved principal behind a request: who is calling, which
// zone their calendar times should be rendered in, and the credential used
// against the calendar provider. Timezone may be empty (UTC applies).
type Session struct {
	Email       string `json:"email"`
	Timezone    string `json:"timezone,omitempty"`
	AccessToken string `json:"-"`
}
