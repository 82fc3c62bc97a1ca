package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an actor in the system. The platform ships with fixed demo
// identities; the profile fields feed the UI header and avatar.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}
