package bonus

import (
	"time"

	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

// Bonus credits extra paid days to an employee. Days are stored as a
// positive magnitude; the credit sign is applied at display time.
type Bonus struct {
	ID         string
	EmployeeID string
	Days       float64
	Reason     string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	EmployeeNumber *string
	EmployeeName   *string
}

type BonusResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Days           float64 `json:"days"`
	Reason         string  `json:"reason"`
	Date           string  `json:"date"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:             b.ID,
		EmployeeID:     b.EmployeeID,
		EmployeeNumber: b.EmployeeNumber,
		EmployeeName:   b.EmployeeName,
		Days:           b.Days,
		Reason:         b.Reason,
		Date:           b.Date.Format("2006-01-02"),
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type CreateBonusRequest struct {
	EmployeeID string  `json:"employee_id"`
	Days       float64 `json:"days"`
	Reason     string  `json:"reason"`
	Date       string  `json:"date"` // YYYY-MM-DD
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be a non-negative number",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
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

// UpdateBonusRequest fully replaces the row.
type UpdateBonusRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Days       float64 `json:"days"`
	Reason     string  `json:"reason"`
	Date       string  `json:"date"`
}

func (r *UpdateBonusRequest) Validate() error {
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

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be a non-negative number",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
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
