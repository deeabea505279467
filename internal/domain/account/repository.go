package account

import "context"

type AccountRepository interface {
	Create(ctx context.Context, acc EmployeeAccount) (EmployeeAccount, error)
	GetByUserID(ctx context.Context, userID string) (EmployeeAccount, error)

	// List returns all employee accounts, newest first.
	List(ctx context.Context) ([]EmployeeAccount, error)

	SetActiveByUserID(ctx context.Context, userID string, active bool) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type AttendanceLogRepository interface {
	// Create inserts a check-in. The unique (user_id, date) constraint
	// rejects a second check-in on the same day.
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)

	// List returns check-ins newest first, optionally filtered by user and
	// date range.
	List(ctx context.Context, filter LogFilter) ([]AttendanceLog, error)

	// ListRecentByUser returns the user's latest check-ins, newest first,
	// capped at limit.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]AttendanceLog, error)
}
