package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

// LedgerServiceImpl serves the four adjustment ledgers. The ledgers share
// validation and error-mapping behavior, so they live behind one service
// rather than four.
type LedgerServiceImpl struct {
	db *database.DB
	advance.AdvanceRepository
	bonus.BonusRepository
	discount.DiscountRepository
	overtime.OvertimeRepository
}

func NewLedgerService(
	db *database.DB,
	advanceRepository advance.AdvanceRepository,
	bonusRepository bonus.BonusRepository,
	discountRepository discount.DiscountRepository,
	overtimeRepository overtime.OvertimeRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:                 db,
		AdvanceRepository:  advanceRepository,
		BonusRepository:    bonusRepository,
		DiscountRepository: discountRepository,
		OvertimeRepository: overtimeRepository,
	}
}

// mapReferentialError converts a foreign-key violation into the missing-
// employee sentinel. Ledger rows only reference employees, so 23503 can
// mean nothing else.
func mapReferentialError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return employee.ErrEmployeeNotFound
	}
	return err
}

// CreateAdvance implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.AdvanceRepository.Create(ctx, advance.Advance{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Date:       date,
	})
	if err != nil {
		return advance.AdvanceResponse{}, mapReferentialError(err)
	}

	return advance.ToResponse(created), nil
}

// ListAdvances implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListAdvances(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.AdvanceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, advance.ToResponse(adv))
	}
	return responses, nil
}

// UpdateAdvance implements ledger.LedgerService.
func (s *LedgerServiceImpl) UpdateAdvance(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.AdvanceRepository.Update(ctx, req); err != nil {
		return mapReferentialError(err)
	}
	return nil
}

// DeleteAdvance implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	return s.AdvanceRepository.Delete(ctx, id)
}

// CreateBonus implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateBonus(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.BonusResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.BonusRepository.Create(ctx, bonus.Bonus{
		EmployeeID: req.EmployeeID,
		Days:       req.Days,
		Reason:     req.Reason,
		Date:       date,
	})
	if err != nil {
		return bonus.BonusResponse{}, mapReferentialError(err)
	}

	return bonus.ToResponse(created), nil
}

// ListBonuses implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListBonuses(ctx context.Context) ([]bonus.BonusResponse, error) {
	bonuses, err := s.BonusRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]bonus.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		responses = append(responses, bonus.ToResponse(b))
	}
	return responses, nil
}

// UpdateBonus implements ledger.LedgerService.
func (s *LedgerServiceImpl) UpdateBonus(ctx context.Context, req bonus.UpdateBonusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.BonusRepository.Update(ctx, req); err != nil {
		return mapReferentialError(err)
	}
	return nil
}

// DeleteBonus implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteBonus(ctx context.Context, id string) error {
	return s.BonusRepository.Delete(ctx, id)
}

// CreateDiscount implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateDiscount(ctx context.Context, req discount.CreateDiscountRequest) (discount.DiscountResponse, error) {
	if err := req.Validate(); err != nil {
		return discount.DiscountResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.DiscountRepository.Create(ctx, discount.Discount{
		EmployeeID: req.EmployeeID,
		Days:       req.Days,
		Reason:     req.Reason,
		Date:       date,
	})
	if err != nil {
		return discount.DiscountResponse{}, mapReferentialError(err)
	}

	return discount.ToResponse(created), nil
}

// ListDiscounts implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListDiscounts(ctx context.Context) ([]discount.DiscountResponse, error) {
	discounts, err := s.DiscountRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]discount.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		responses = append(responses, discount.ToResponse(d))
	}
	return responses, nil
}

// UpdateDiscount implements ledger.LedgerService.
func (s *LedgerServiceImpl) UpdateDiscount(ctx context.Context, req discount.UpdateDiscountRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.DiscountRepository.Update(ctx, req); err != nil {
		return mapReferentialError(err)
	}
	return nil
}

// DeleteDiscount implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteDiscount(ctx context.Context, id string) error {
	return s.DiscountRepository.Delete(ctx, id)
}

// CreateOvertime implements ledger.LedgerService. The work-day credit is
// derived from hours here, never accepted from the caller.
func (s *LedgerServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateEntryRequest) (overtime.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.OvertimeRepository.Create(ctx, overtime.Entry{
		EmployeeID:     req.EmployeeID,
		Hours:          req.Hours,
		CalculatedDays: overtime.DaysForHours(req.Hours),
		Notes:          req.Notes,
		Date:           date,
	})
	if err != nil {
		return overtime.EntryResponse{}, mapReferentialError(err)
	}

	return overtime.ToResponse(created), nil
}

// ListOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListOvertime(ctx context.Context) ([]overtime.EntryResponse, error) {
	entries, err := s.OvertimeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]overtime.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, overtime.ToResponse(e))
	}
	return responses, nil
}

// UpdateOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) UpdateOvertime(ctx context.Context, req overtime.UpdateEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.OvertimeRepository.Update(ctx, req, overtime.DaysForHours(req.Hours)); err != nil {
		return mapReferentialError(err)
	}
	return nil
}

// DeleteOvertime implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	return s.OvertimeRepository.Delete(ctx, id)
}
