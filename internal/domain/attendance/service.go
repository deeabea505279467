package attendance

import "context"

type AttendanceService interface {
	// RecordStatus upserts the day's status for one employee; a repeated
	// write for the same (employee, date) replaces the status.
	RecordStatus(ctx context.Context, req RecordStatusRequest) (AttendanceResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	List(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
