package summary

import (
	"context"

	"github.com/hrledger/hr-backend-go/internal/domain/employee"
)

// EmployeeSummary folds every ledger for one employee into a single
// read-only report. It is derived at request time and never persisted.
// The fold does no cross-validation between ledgers; it is only as
// consistent as the ledgers themselves.
type EmployeeSummary struct {
	Employee          employee.EmployeeResponse `json:"employee"`
	AttendanceDays    int                       `json:"attendance_days"`
	AbsenceDays       int                       `json:"absence_days"`
	TotalAdvances     float64                   `json:"total_advances"`
	TotalBonusDays    float64                   `json:"total_bonus_days"`
	TotalDiscountDays float64                   `json:"total_discount_days"`
	TotalLeaveDays    int                       `json:"total_leave_days"`
	TotalOvertimeDays float64                   `json:"total_overtime_days"`
}

type SummaryService interface {
	GetEmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error)
}
