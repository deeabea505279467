package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/account"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements account.AccountRepository.
func (a *accountRepository) Create(ctx context.Context, acc account.EmployeeAccount) (account.EmployeeAccount, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO employee_accounts (user_id, employee_number, full_name, email, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		acc.UserID, acc.EmployeeNumber, acc.FullName, acc.Email, acc.IsActive, acc.CreatedBy,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return account.EmployeeAccount{}, fmt.Errorf("failed to create employee account: %w", err)
	}

	return acc, nil
}

// GetByUserID implements account.AccountRepository.
func (a *accountRepository) GetByUserID(ctx context.Context, userID string) (account.EmployeeAccount, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, employee_number, full_name, email, is_active, created_by, created_at, updated_at
		FROM employee_accounts
		WHERE user_id = $1
	`

	var acc account.EmployeeAccount
	err := q.QueryRow(ctx, query, userID).Scan(
		&acc.ID, &acc.UserID, &acc.EmployeeNumber, &acc.FullName, &acc.Email,
		&acc.IsActive, &acc.CreatedBy, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.EmployeeAccount{}, account.ErrAccountNotFound
		}
		return account.EmployeeAccount{}, fmt.Errorf("failed to get employee account: %w", err)
	}

	return acc, nil
}

// List implements account.AccountRepository.
func (a *accountRepository) List(ctx context.Context) ([]account.EmployeeAccount, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, employee_number, full_name, email, is_active, created_by, created_at, updated_at
		FROM employee_accounts
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.EmployeeAccount
	for rows.Next() {
		var acc account.EmployeeAccount
		err := rows.Scan(
			&acc.ID, &acc.UserID, &acc.EmployeeNumber, &acc.FullName, &acc.Email,
			&acc.IsActive, &acc.CreatedBy, &acc.CreatedAt, &acc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

// SetActiveByUserID implements account.AccountRepository.
func (a *accountRepository) SetActiveByUserID(ctx context.Context, userID string, active bool) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE employee_accounts
		SET is_active = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, active, userID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to set employee account active flag: %w", err)
	}

	return nil
}

// DeleteByUserID implements account.AccountRepository.
func (a *accountRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_accounts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete employee account: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
