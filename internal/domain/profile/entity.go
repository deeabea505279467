package profile

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// UserProfile links an authenticated identity to a role and, for
// employee-role users, an employee number.
type UserProfile struct {
	ID             string
	Email          string
	PasswordHash   string
	FullName       string
	Role           Role
	EmployeeNumber *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
