package attendance

import "context"

type AttendanceRepository interface {
	// Upsert records the status for (employee, date). The pair is a declared
	// conflict key: a second write for the same pair replaces the status, it
	// never creates a duplicate row. Last write wins, no history kept.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// ListByEmployee returns the employee's records, most recent date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// List returns records across all employees with optional filters,
	// most recent date first, joined with employee display fields.
	List(ctx context.Context, filter Filter) ([]Attendance, error)

	Delete(ctx context.Context, id string) error
}
