package models

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is the dashboard operator restored from a session token.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
