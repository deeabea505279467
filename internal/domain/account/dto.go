package account

import (
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type AccountResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type CheckInResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	CheckInTime    string `json:"check_in_time"`
	Date           string `json:"date"`
}

func ToAccountResponse(a EmployeeAccount) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		EmployeeNumber: a.EmployeeNumber,
		FullName:       a.FullName,
		Email:          a.Email,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToCheckInResponse(l AttendanceLog) CheckInResponse {
	return CheckInResponse{
		ID:             l.ID,
		EmployeeNumber: l.EmployeeNumber,
		FullName:       l.FullName,
		CheckInTime:    l.CheckInTime.Format("2006-01-02T15:04:05Z07:00"),
		Date:           l.Date.Format("2006-01-02"),
	}
}

// CreateAccountRequest provisions an employee self-service account: a
// user profile and an account row, written in one transaction.
type CreateAccountRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number is required",
		})
	} else if !validator.IsValidEmployeeNumber(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number must be 1-20 letters, digits or dashes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetActiveRequest struct {
	UserID   string `json:"-"`
	IsActive bool   `json:"is_active"`
}

// ResetPasswordRequest lets an admin set a new password for another
// identity.
type ResetPasswordRequest struct {
	UserID      string `json:"-"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateOwnPasswordRequest lets any caller change their own password.
type UpdateOwnPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (r *UpdateOwnPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *LogFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
