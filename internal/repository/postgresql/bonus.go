package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepository{db: db}
}

// Create implements bonus.BonusRepository.
func (r *bonusRepository) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (employee_id, days, reason, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, b.EmployeeID, b.Days, b.Reason, b.Date).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}

	return b, nil
}

// List implements bonus.BonusRepository.
func (r *bonusRepository) List(ctx context.Context) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.days, b.reason, b.date, b.created_at, b.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM bonuses b
		LEFT JOIN employees e ON e.id = b.employee_id
		ORDER BY b.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonuses: %w", err)
	}
	defer rows.Close()

	return scanBonuses(rows)
}

// ListByEmployee implements bonus.BonusRepository.
func (r *bonusRepository) ListByEmployee(ctx context.Context, employeeID string) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.days, b.reason, b.date, b.created_at, b.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM bonuses b
		LEFT JOIN employees e ON e.id = b.employee_id
		WHERE b.employee_id = $1
		ORDER BY b.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonuses: %w", err)
	}
	defer rows.Close()

	return scanBonuses(rows)
}

func scanBonuses(rows pgx.Rows) ([]bonus.Bonus, error) {
	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.Days, &b.Reason, &b.Date, &b.CreatedAt, &b.UpdatedAt,
			&b.EmployeeNumber, &b.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}
	return bonuses, nil
}

// Update implements bonus.BonusRepository.
func (r *bonusRepository) Update(ctx context.Context, req bonus.UpdateBonusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses
		SET employee_id = $1, days = $2, reason = $3, date = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.EmployeeID, req.Days, req.Reason, req.Date, req.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return bonus.ErrBonusNotFound
		}
		return fmt.Errorf("failed to update bonus: %w", err)
	}

	return nil
}

// Delete implements bonus.BonusRepository.
func (r *bonusRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}

	return nil
}
