package leave

import (
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Reason         string  `json:"reason"`
	CalculatedDays int     `json:"calculated_days"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeNumber: l.EmployeeNumber,
		EmployeeName:   l.EmployeeName,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		Reason:         l.Reason,
		CalculatedDays: l.CalculatedDays,
		CreatedAt:      l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	return validateLeaveFields("", r.EmployeeID, r.StartDate, r.EndDate, r.Reason, false)
}

// UpdateLeaveRequest fully replaces the row. CalculatedDays is re-derived
// from the new range, never taken from the caller.
type UpdateLeaveRequest struct {
	ID         string `json:"-"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *UpdateLeaveRequest) Validate() error {
	return validateLeaveFields(r.ID, r.EmployeeID, r.StartDate, r.EndDate, r.Reason, true)
}

func validateLeaveFields(id, employeeID, startDate, endDate, reason string, requireID bool) error {
	var errs validator.ValidationErrors

	if requireID && validator.IsEmpty(id) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(startDate)
	if validator.IsEmpty(startDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(endDate)
	if validator.IsEmpty(endDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// Reversed ranges are rejected here, before the day calculator runs.
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
