package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	Update(ctx context.Context, req UpdateLeaveRequest, calculatedDays int) error
	Delete(ctx context.Context, id string) error
}
