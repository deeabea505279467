package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type discountRepository struct {
	db *database.DB
}

func NewDiscountRepository(db *database.DB) discount.DiscountRepository {
	return &discountRepository{db: db}
}

// Create implements discount.DiscountRepository.
func (r *discountRepository) Create(ctx context.Context, d discount.Discount) (discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO discounts (employee_id, days, reason, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.EmployeeID, d.Days, d.Reason, d.Date).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return discount.Discount{}, fmt.Errorf("failed to create discount: %w", err)
	}

	return d, nil
}

// List implements discount.DiscountRepository.
func (r *discountRepository) List(ctx context.Context) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.days, d.reason, d.date, d.created_at, d.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM discounts d
		LEFT JOIN employees e ON e.id = d.employee_id
		ORDER BY d.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

// ListByEmployee implements discount.DiscountRepository.
func (r *discountRepository) ListByEmployee(ctx context.Context, employeeID string) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.days, d.reason, d.date, d.created_at, d.updated_at,
			   e.employee_number, e.name AS employee_name
		FROM discounts d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.employee_id = $1
		ORDER BY d.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

func scanDiscounts(rows pgx.Rows) ([]discount.Discount, error) {
	var discounts []discount.Discount
	for rows.Next() {
		var d discount.Discount
		err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Days, &d.Reason, &d.Date, &d.CreatedAt, &d.UpdatedAt,
			&d.EmployeeNumber, &d.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}

// Update implements discount.DiscountRepository.
func (r *discountRepository) Update(ctx context.Context, req discount.UpdateDiscountRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET employee_id = $1, days = $2, reason = $3, date = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.EmployeeID, req.Days, req.Reason, req.Date, req.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return discount.ErrDiscountNotFound
		}
		return fmt.Errorf("failed to update discount: %w", err)
	}

	return nil
}

// Delete implements discount.DiscountRepository.
func (r *discountRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return discount.ErrDiscountNotFound
	}

	return nil
}
