package employee

import "time"

type Employee struct {
	ID             string
	EmployeeNumber string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
