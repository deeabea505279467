package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrledger/hr-backend-go/internal/domain/attendance"
	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/leave"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	err     error
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return f.records, f.err
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	return f.records, f.err
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAdvanceRepo struct {
	advances []advance.Advance
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	return a, nil
}

func (f *fakeAdvanceRepo) List(ctx context.Context) ([]advance.Advance, error) {
	return f.advances, nil
}

func (f *fakeAdvanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	return f.advances, nil
}

func (f *fakeAdvanceRepo) Update(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	return nil
}

func (f *fakeAdvanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeBonusRepo struct {
	bonuses []bonus.Bonus
}

func (f *fakeBonusRepo) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	return b, nil
}

func (f *fakeBonusRepo) List(ctx context.Context) ([]bonus.Bonus, error) {
	return f.bonuses, nil
}

func (f *fakeBonusRepo) ListByEmployee(ctx context.Context, employeeID string) ([]bonus.Bonus, error) {
	return f.bonuses, nil
}

func (f *fakeBonusRepo) Update(ctx context.Context, req bonus.UpdateBonusRequest) error {
	return nil
}

func (f *fakeBonusRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeDiscountRepo struct {
	discounts []discount.Discount
}

func (f *fakeDiscountRepo) Create(ctx context.Context, d discount.Discount) (discount.Discount, error) {
	return d, nil
}

func (f *fakeDiscountRepo) List(ctx context.Context) ([]discount.Discount, error) {
	return f.discounts, nil
}

func (f *fakeDiscountRepo) ListByEmployee(ctx context.Context, employeeID string) ([]discount.Discount, error) {
	return f.discounts, nil
}

func (f *fakeDiscountRepo) Update(ctx context.Context, req discount.UpdateDiscountRequest) error {
	return nil
}

func (f *fakeDiscountRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeOvertimeRepo struct {
	entries []overtime.Entry
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, e overtime.Entry) (overtime.Entry, error) {
	return e, nil
}

func (f *fakeOvertimeRepo) List(ctx context.Context) ([]overtime.Entry, error) {
	return f.entries, nil
}

func (f *fakeOvertimeRepo) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Entry, error) {
	return f.entries, nil
}

func (f *fakeOvertimeRepo) Update(ctx context.Context, req overtime.UpdateEntryRequest, calculatedDays float64) error {
	return nil
}

func (f *fakeOvertimeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	return l, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, req leave.UpdateLeaveRequest, calculatedDays int) error {
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestService(
	empRepo *fakeEmployeeRepo,
	attRepo *fakeAttendanceRepo,
	advRepo *fakeAdvanceRepo,
	bonRepo *fakeBonusRepo,
	disRepo *fakeDiscountRepo,
	ovtRepo *fakeOvertimeRepo,
	lvRepo *fakeLeaveRepo,
) *SummaryServiceImpl {
	return NewSummaryService(empRepo, attRepo, advRepo, bonRepo, disRepo, ovtRepo, lvRepo).(*SummaryServiceImpl)
}

func testEmployee() employee.Employee {
	now := time.Now()
	return employee.Employee{
		ID:             "emp-1",
		EmployeeNumber: "EMP-001",
		Name:           "Jordan Reyes",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestGetEmployeeSummary_EmptyLedgers(t *testing.T) {
	svc := newTestService(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": testEmployee()}},
		&fakeAttendanceRepo{},
		&fakeAdvanceRepo{},
		&fakeBonusRepo{},
		&fakeDiscountRepo{},
		&fakeOvertimeRepo{},
		&fakeLeaveRepo{},
	)

	result, err := svc.GetEmployeeSummary(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", result.Employee.EmployeeNumber)
	assert.Zero(t, result.AttendanceDays)
	assert.Zero(t, result.AbsenceDays)
	assert.Zero(t, result.TotalAdvances)
	assert.Zero(t, result.TotalBonusDays)
	assert.Zero(t, result.TotalDiscountDays)
	assert.Zero(t, result.TotalLeaveDays)
	assert.Zero(t, result.TotalOvertimeDays)
}

func TestGetEmployeeSummary_FoldsAllLedgers(t *testing.T) {
	svc := newTestService(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": testEmployee()}},
		&fakeAttendanceRepo{records: []attendance.Attendance{
			{Status: attendance.StatusPresent},
			{Status: attendance.StatusPresent},
			{Status: attendance.StatusPresent},
			{Status: attendance.StatusAbsent},
			{Status: attendance.StatusAbsent},
		}},
		&fakeAdvanceRepo{advances: []advance.Advance{
			{Amount: 100},
			{Amount: 50},
		}},
		&fakeBonusRepo{bonuses: []bonus.Bonus{
			{Days: 2},
		}},
		&fakeDiscountRepo{discounts: []discount.Discount{
			{Days: 1},
		}},
		&fakeOvertimeRepo{entries: []overtime.Entry{
			{Hours: 16, CalculatedDays: 2},
		}},
		&fakeLeaveRepo{leaves: []leave.Leave{
			{CalculatedDays: 3},
		}},
	)

	result, err := svc.GetEmployeeSummary(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 3, result.AttendanceDays)
	assert.Equal(t, 2, result.AbsenceDays)
	assert.Equal(t, 150.0, result.TotalAdvances)
	assert.Equal(t, 2.0, result.TotalBonusDays)
	assert.Equal(t, 1.0, result.TotalDiscountDays)
	assert.Equal(t, 3, result.TotalLeaveDays)
	assert.Equal(t, 2.0, result.TotalOvertimeDays)
}

func TestGetEmployeeSummary_UnknownEmployee(t *testing.T) {
	svc := newTestService(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		&fakeAttendanceRepo{},
		&fakeAdvanceRepo{},
		&fakeBonusRepo{},
		&fakeDiscountRepo{},
		&fakeOvertimeRepo{},
		&fakeLeaveRepo{},
	)

	_, err := svc.GetEmployeeSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeSummary_LedgerReadFailure(t *testing.T) {
	readErr := errors.New("connection reset")
	svc := newTestService(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": testEmployee()}},
		&fakeAttendanceRepo{err: readErr},
		&fakeAdvanceRepo{},
		&fakeBonusRepo{},
		&fakeDiscountRepo{},
		&fakeOvertimeRepo{},
		&fakeLeaveRepo{},
	)

	_, err := svc.GetEmployeeSummary(context.Background(), "emp-1")
	assert.ErrorIs(t, err, readErr)
}
