package overtime

import (
	"time"

	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

// Entry records extra hours worked. The equivalent work-day credit is
// derived from hours at write time and stored alongside them.
type Entry struct {
	ID             string
	EmployeeID     string
	Hours          float64
	CalculatedDays float64
	Notes          *string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	EmployeeNumber *string
	EmployeeName   *string
}

type EntryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Hours          float64 `json:"hours"`
	CalculatedDays float64 `json:"calculated_days"`
	Notes          *string `json:"notes,omitempty"`
	Date           string  `json:"date"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		EmployeeNumber: e.EmployeeNumber,
		EmployeeName:   e.EmployeeName,
		Hours:          e.Hours,
		CalculatedDays: e.CalculatedDays,
		Notes:          e.Notes,
		Date:           e.Date.Format("2006-01-02"),
		CreatedAt:      e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type CreateEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Hours      float64 `json:"hours"`
	Notes      *string `json:"notes,omitempty"`
	Date       string  `json:"date"` // YYYY-MM-DD
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Hours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be a non-negative number",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEntryRequest fully replaces the row. CalculatedDays is re-derived
// from the new hours value, never taken from the caller.
type UpdateEntryRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Hours      float64 `json:"hours"`
	Notes      *string `json:"notes,omitempty"`
	Date       string  `json:"date"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Hours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be a non-negative number",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
