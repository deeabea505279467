// Package ledger groups the four per-employee adjustment ledgers behind
// one service surface: advances, bonuses, discounts and overtime.
package ledger

import (
	"context"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
)

type LedgerService interface {
	CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error)
	ListAdvances(ctx context.Context) ([]advance.AdvanceResponse, error)
	UpdateAdvance(ctx context.Context, req advance.UpdateAdvanceRequest) error
	DeleteAdvance(ctx context.Context, id string) error

	CreateBonus(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error)
	ListBonuses(ctx context.Context) ([]bonus.BonusResponse, error)
	UpdateBonus(ctx context.Context, req bonus.UpdateBonusRequest) error
	DeleteBonus(ctx context.Context, id string) error

	CreateDiscount(ctx context.Context, req discount.CreateDiscountRequest) (discount.DiscountResponse, error)
	ListDiscounts(ctx context.Context) ([]discount.DiscountResponse, error)
	UpdateDiscount(ctx context.Context, req discount.UpdateDiscountRequest) error
	DeleteDiscount(ctx context.Context, id string) error

	CreateOvertime(ctx context.Context, req overtime.CreateEntryRequest) (overtime.EntryResponse, error)
	ListOvertime(ctx context.Context) ([]overtime.EntryResponse, error)
	UpdateOvertime(ctx context.Context, req overtime.UpdateEntryRequest) error
	DeleteOvertime(ctx context.Context, id string) error
}
