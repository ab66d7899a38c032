package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User models an authenticated staff account. Identifier is the login handle
// held by whichever column the users table provides (username or email).
type User struct {
	ID           int64     `json:"id"`
	Identifier   string    `json:"identifier"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
