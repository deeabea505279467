package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (employee_id, amount, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, adv.EmployeeID, adv.Amount, adv.Date).
		Scan(&adv.ID, &adv.CreatedAt, &adv.UpdatedAt)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return adv, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepository) List(ctx context.Context) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.date, a.created_at, a.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM advances a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	return scanAdvances(rows)
}

// ListByEmployee implements advance.AdvanceRepository.
func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.date, a.created_at, a.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM advances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	return scanAdvances(rows)
}

func scanAdvances(rows pgx.Rows) ([]advance.Advance, error) {
	var advances []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		err := rows.Scan(
			&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Date, &adv.CreatedAt, &adv.UpdatedAt,
			&adv.EmployeeNumber, &adv.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}
	return advances, nil
}

// Update implements advance.AdvanceRepository.
func (r *advanceRepository) Update(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET employee_id = $1, amount = $2, date = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.EmployeeID, req.Amount, req.Date, req.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return advance.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to update advance: %w", err)
	}

	return nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}
