package domain

import "time"

// Role is the coarse permission label attached to an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
	RoleOther Role = "other"
)

// User is an API account resolved during authentication. Accounts are
// provisioned externally; this service only reads them.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
