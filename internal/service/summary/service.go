package summary

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hrledger/hr-backend-go/internal/domain/attendance"
	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/leave"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/domain/summary"
)

type SummaryServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	advance.AdvanceRepository
	bonus.BonusRepository
	discount.DiscountRepository
	overtime.OvertimeRepository
	leave.LeaveRepository
}

func NewSummaryService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	advanceRepository advance.AdvanceRepository,
	bonusRepository bonus.BonusRepository,
	discountRepository discount.DiscountRepository,
	overtimeRepository overtime.OvertimeRepository,
	leaveRepository leave.LeaveRepository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		AdvanceRepository:    advanceRepository,
		BonusRepository:      bonusRepository,
		DiscountRepository:   discountRepository,
		OvertimeRepository:   overtimeRepository,
		LeaveRepository:      leaveRepository,
	}
}

// GetEmployeeSummary implements summary.SummaryService. The six ledger
// reads are independent, so they run concurrently and join before the
// fold. An empty ledger contributes zero to its totals.
func (s *SummaryServiceImpl) GetEmployeeSummary(ctx context.Context, employeeID string) (summary.EmployeeSummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return summary.EmployeeSummary{}, err
	}

	var (
		attendanceRecords []attendance.Attendance
		advances          []advance.Advance
		bonuses           []bonus.Bonus
		discounts         []discount.Discount
		overtimeEntries   []overtime.Entry
		leaves            []leave.Leave
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		attendanceRecords, err = s.AttendanceRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		advances, err = s.AdvanceRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		bonuses, err = s.BonusRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		discounts, err = s.DiscountRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		overtimeEntries, err = s.OvertimeRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRepository.ListByEmployee(gCtx, employeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return summary.EmployeeSummary{}, err
	}

	result := summary.EmployeeSummary{
		Employee: employee.ToResponse(emp),
	}

	for _, rec := range attendanceRecords {
		switch rec.Status {
		case attendance.StatusPresent:
			result.AttendanceDays++
		case attendance.StatusAbsent:
			result.AbsenceDays++
		}
	}
	for _, adv := range advances {
		result.TotalAdvances += adv.Amount
	}
	for _, b := range bonuses {
		result.TotalBonusDays += b.Days
	}
	for _, d := range discounts {
		result.TotalDiscountDays += d.Days
	}
	for _, e := range overtimeEntries {
		result.TotalOvertimeDays += e.CalculatedDays
	}
	for _, l := range leaves {
		result.TotalLeaveDays += l.CalculatedDays
	}

	return result, nil
}
