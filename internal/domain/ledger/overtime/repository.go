package overtime

import "context"

type OvertimeRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	Update(ctx context.Context, req UpdateEntryRequest, calculatedDays float64) error
	Delete(ctx context.Context, id string) error
}
