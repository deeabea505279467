package discount

import "context"

type DiscountRepository interface {
	Create(ctx context.Context, d Discount) (Discount, error)
	List(ctx context.Context) ([]Discount, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Discount, error)
	Update(ctx context.Context, req UpdateDiscountRequest) error
	Delete(ctx context.Context, id string) error
}
