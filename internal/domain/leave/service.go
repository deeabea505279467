package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context) ([]LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Update(ctx context.Context, req UpdateLeaveRequest) error
	Delete(ctx context.Context, id string) error
}
