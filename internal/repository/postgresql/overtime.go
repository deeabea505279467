package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, e overtime.Entry) (overtime.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (employee_id, hours, calculated_days, notes, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, e.EmployeeID, e.Hours, e.CalculatedDays, e.Notes, e.Date).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return overtime.Entry{}, fmt.Errorf("failed to create overtime entry: %w", err)
	}

	return e, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context) ([]overtime.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.hours, o.calculated_days, o.notes, o.date,
			   o.created_at, o.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		ORDER BY o.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime entries: %w", err)
	}
	defer rows.Close()

	return scanOvertimeEntries(rows)
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.hours, o.calculated_days, o.notes, o.date,
			   o.created_at, o.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE o.employee_id = $1
		ORDER BY o.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime entries: %w", err)
	}
	defer rows.Close()

	return scanOvertimeEntries(rows)
}

func scanOvertimeEntries(rows pgx.Rows) ([]overtime.Entry, error) {
	var entries []overtime.Entry
	for rows.Next() {
		var e overtime.Entry
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Hours, &e.CalculatedDays, &e.Notes, &e.Date,
			&e.CreatedAt, &e.UpdatedAt,
			&e.EmployeeNumber, &e.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Update implements overtime.OvertimeRepository. calculatedDays is derived
// by the service from the new hours value.
func (r *overtimeRepository) Update(ctx context.Context, req overtime.UpdateEntryRequest, calculatedDays float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_records
		SET employee_id = $1, hours = $2, calculated_days = $3, notes = $4, date = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.EmployeeID, req.Hours, calculatedDays, req.Notes, req.Date, req.ID).
		Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update overtime entry: %w", err)
	}

	return nil
}

// Delete implements overtime.OvertimeRepository.
func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return overtime.ErrEntryNotFound
	}

	return nil
}
