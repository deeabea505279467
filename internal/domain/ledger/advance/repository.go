package advance

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)

	// List returns all advances ordered by date descending, joined with
	// employee display fields.
	List(ctx context.Context) ([]Advance, error)

	// ListByEmployee returns all advances for one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]Advance, error)

	Update(ctx context.Context, req UpdateAdvanceRequest) error
	Delete(ctx context.Context, id string) error
}
