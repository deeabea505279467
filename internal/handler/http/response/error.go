package response

import (
	"errors"
	"net/http"

	"github.com/hrledger/hr-backend-go/internal/domain/account"
	"github.com/hrledger/hr-backend-go/internal/domain/attendance"
	"github.com/hrledger/hr-backend-go/internal/domain/auth"
	"github.com/hrledger/hr-backend-go/internal/domain/company"
	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/leave"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/domain/profile"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is
// a 500 with a generic message; internals never leak to the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, profile.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, profile.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "User profile not found")
	case errors.Is(err, profile.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee registry errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")

	// Ledger errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, discount.ErrDiscountNotFound):
		NotFound(w, "Discount not found")
	case errors.Is(err, overtime.ErrEntryNotFound):
		NotFound(w, "Overtime entry not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "end_date must not be before start_date", nil)

	// Company info errors
	case errors.Is(err, company.ErrCompanyInfoNotFound):
		NotFound(w, "Company info not set")

	// Account errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Employee account not found")
	case errors.Is(err, account.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
