package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrledger/hr-backend-go/internal/domain/attendance"
	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	upserted   []attendance.Attendance
	upsertErr  error
	lastFilter attendance.Filter
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if f.upsertErr != nil {
		return attendance.Attendance{}, f.upsertErr
	}
	att.ID = fmt.Sprintf("att-%d", len(f.upserted)+1)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.upserted = append(f.upserted, att)
	return att, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.upserted {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	f.lastFilter = filter
	return f.upserted, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestRecordStatus(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)

	resp, err := svc.RecordStatus(context.Background(), attendance.RecordStatusRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-10",
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2024-05-10", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.Len(t, repo.upserted, 1)
}

func TestRecordStatus_ValidationFailure(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)

	_, err := svc.RecordStatus(context.Background(), attendance.RecordStatusRequest{
		EmployeeID: "emp-1",
		Date:       "10/05/2024",
		Status:     "late",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "status")
	assert.Empty(t, repo.upserted)
}

func TestRecordStatus_UnknownEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{
		upsertErr: fmt.Errorf("upsert attendance: %w", &pgconn.PgError{Code: "23503"}),
	}
	svc := NewAttendanceService(nil, repo)

	_, err := svc.RecordStatus(context.Background(), attendance.RecordStatusRequest{
		EmployeeID: "missing",
		Date:       "2024-05-10",
		Status:     attendance.StatusAbsent,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList_RejectsBadFilter(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)

	status := "vacation"
	_, err := svc.List(context.Background(), attendance.Filter{Status: &status})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)

	empID := "emp-1"
	start := "2024-05-01"
	_, err := svc.List(context.Background(), attendance.Filter{EmployeeID: &empID, StartDate: &start})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.EmployeeID)
	assert.Equal(t, "emp-1", *repo.lastFilter.EmployeeID)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, "2024-05-01", *repo.lastFilter.StartDate)
}
