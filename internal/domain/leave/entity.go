package leave

import "time"

// Leave is an approved absence spanning an inclusive date range. The day
// count is derived once at write time and stored; changing the counting
// rule later requires migrating stored values.
type Leave struct {
	ID             string
	EmployeeID     string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	CalculatedDays int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	EmployeeNumber *string
	EmployeeName   *string
}
