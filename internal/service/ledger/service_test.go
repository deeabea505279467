package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type fakeAdvanceRepo struct {
	createErr error
	created   []advance.Advance
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	if f.createErr != nil {
		return advance.Advance{}, f.createErr
	}
	adv.ID = "adv-1"
	f.created = append(f.created, adv)
	return adv, nil
}

func (f *fakeAdvanceRepo) List(ctx context.Context) ([]advance.Advance, error) {
	return f.created, nil
}

func (f *fakeAdvanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	return f.created, nil
}

func (f *fakeAdvanceRepo) Update(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	return nil
}

func (f *fakeAdvanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeBonusRepo struct{}

func (f *fakeBonusRepo) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	b.ID = "bon-1"
	return b, nil
}

func (f *fakeBonusRepo) List(ctx context.Context) ([]bonus.Bonus, error) { return nil, nil }

func (f *fakeBonusRepo) ListByEmployee(ctx context.Context, employeeID string) ([]bonus.Bonus, error) {
	return nil, nil
}

func (f *fakeBonusRepo) Update(ctx context.Context, req bonus.UpdateBonusRequest) error { return nil }

func (f *fakeBonusRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDiscountRepo struct{}

func (f *fakeDiscountRepo) Create(ctx context.Context, d discount.Discount) (discount.Discount, error) {
	d.ID = "dis-1"
	return d, nil
}

func (f *fakeDiscountRepo) List(ctx context.Context) ([]discount.Discount, error) { return nil, nil }

func (f *fakeDiscountRepo) ListByEmployee(ctx context.Context, employeeID string) ([]discount.Discount, error) {
	return nil, nil
}

func (f *fakeDiscountRepo) Update(ctx context.Context, req discount.UpdateDiscountRequest) error {
	return nil
}

func (f *fakeDiscountRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeOvertimeRepo struct {
	created         []overtime.Entry
	lastUpdateDays  float64
	lastUpdateCalls int
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, e overtime.Entry) (overtime.Entry, error) {
	e.ID = "ovt-1"
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeOvertimeRepo) List(ctx context.Context) ([]overtime.Entry, error) {
	return f.created, nil
}

func (f *fakeOvertimeRepo) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Entry, error) {
	return f.created, nil
}

func (f *fakeOvertimeRepo) Update(ctx context.Context, req overtime.UpdateEntryRequest, calculatedDays float64) error {
	f.lastUpdateDays = calculatedDays
	f.lastUpdateCalls++
	return nil
}

func (f *fakeOvertimeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(advRepo *fakeAdvanceRepo, ovtRepo *fakeOvertimeRepo) *LedgerServiceImpl {
	return NewLedgerService(nil, advRepo, &fakeBonusRepo{}, &fakeDiscountRepo{}, ovtRepo).(*LedgerServiceImpl)
}

func TestCreateOvertime_DerivesDays(t *testing.T) {
	ovtRepo := &fakeOvertimeRepo{}
	svc := newTestService(&fakeAdvanceRepo{}, ovtRepo)

	resp, err := svc.CreateOvertime(context.Background(), overtime.CreateEntryRequest{
		EmployeeID: "emp-1",
		Hours:      12,
		Date:       "2024-04-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 12.0, resp.Hours)
	assert.Equal(t, 1.5, resp.CalculatedDays)
	require.Len(t, ovtRepo.created, 1)
	assert.Equal(t, 1.5, ovtRepo.created[0].CalculatedDays)
}

func TestUpdateOvertime_RederivesDays(t *testing.T) {
	ovtRepo := &fakeOvertimeRepo{}
	svc := newTestService(&fakeAdvanceRepo{}, ovtRepo)

	err := svc.UpdateOvertime(context.Background(), overtime.UpdateEntryRequest{
		ID:         "ovt-1",
		EmployeeID: "emp-1",
		Hours:      4,
		Date:       "2024-04-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ovtRepo.lastUpdateCalls)
	assert.Equal(t, 0.5, ovtRepo.lastUpdateDays)
}

func TestCreateAdvance_UnknownEmployee(t *testing.T) {
	advRepo := &fakeAdvanceRepo{
		createErr: fmt.Errorf("create advance: %w", &pgconn.PgError{Code: "23503"}),
	}
	svc := newTestService(advRepo, &fakeOvertimeRepo{})

	_, err := svc.CreateAdvance(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: "missing",
		Amount:     100,
		Date:       "2024-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateAdvance_RejectsNegativeAmount(t *testing.T) {
	advRepo := &fakeAdvanceRepo{}
	svc := newTestService(advRepo, &fakeOvertimeRepo{})

	_, err := svc.CreateAdvance(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: "emp-1",
		Amount:     -5,
		Date:       "2024-04-01",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "amount")
	assert.Empty(t, advRepo.created)
}
