package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleHR     Role = "hr"
	RoleViewer Role = "viewer"
)

// IsAdmin reports whether the role carries admin rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsHR reports whether the role carries HR rights. Admins are implicitly HR.
func (r Role) IsHR() bool {
	return r == RoleHR || r == RoleAdmin
}

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
