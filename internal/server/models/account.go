// Package models holds the persistent data structures of the account service.
package models

import "time"

// Role is the closed set of roles an account can hold.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// DefaultRole is applied when no role is supplied at registration.
const DefaultRole = RoleStudent

// Account is one registered user. PasswordHash stores the bcrypt hash,
// never the plaintext, and is excluded from JSON output.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
