package bonus

import "context"

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	List(ctx context.Context) ([]Bonus, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Bonus, error)
	Update(ctx context.Context, req UpdateBonusRequest) error
	Delete(ctx context.Context, id string) error
}
