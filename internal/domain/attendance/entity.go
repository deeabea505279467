package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee display fields
	EmployeeNumber *string
	EmployeeName   *string
}
