package account

import "time"

// EmployeeAccount is the admin-facing register of employee self-service
// accounts. It is written in the same transaction as the user profile.
type EmployeeAccount struct {
	ID             string
	UserID         string
	EmployeeNumber string
	FullName       string
	Email          string
	IsActive       bool
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AttendanceLog is one self-service check-in event. At most one exists
// per (user, date); the pair is a database constraint, not a read-then-
// write check.
type AttendanceLog struct {
	ID             string
	UserID         string
	EmployeeNumber string
	FullName       string
	CheckInTime    time.Time
	Date           time.Time
	IPAddress      *string
	UserAgent      *string
	CreatedAt      time.Time
}
