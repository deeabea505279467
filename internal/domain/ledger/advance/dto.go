package advance

import (
	"time"

	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

// Advance is a cash advance handed to an employee. Unlike the other
// adjustment ledgers it carries no reason text.
type Advance struct {
	ID         string
	EmployeeID string
	Amount     float64
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	EmployeeNumber *string
	EmployeeName   *string
}

type AdvanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeNumber: a.EmployeeNumber,
		EmployeeName:   a.EmployeeName,
		Amount:         a.Amount,
		Date:           a.Date.Format("2006-01-02"),
		CreatedAt:      a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type CreateAdvanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"` // YYYY-MM-DD
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative number",
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

// UpdateAdvanceRequest fully replaces the row's employee reference, amount
// and date.
type UpdateAdvanceRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

func (r *UpdateAdvanceRequest) Validate() error {
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

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative number",
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
