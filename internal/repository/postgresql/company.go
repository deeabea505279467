package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/company"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// Get implements company.CompanyRepository.
func (c *companyRepository) Get(ctx context.Context) (company.Info, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, place_name, manager_name, created_at, updated_at
		FROM company_info
		LIMIT 1
	`

	var info company.Info
	err := q.QueryRow(ctx, query).Scan(
		&info.ID, &info.PlaceName, &info.ManagerName, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Info{}, company.ErrCompanyInfoNotFound
		}
		return company.Info{}, fmt.Errorf("failed to get company info: %w", err)
	}

	return info, nil
}

// Save implements company.CompanyRepository. The singleton_guard column
// holds a constant, so the second and later saves hit the conflict path
// and replace the row's fields in place.
func (c *companyRepository) Save(ctx context.Context, info company.Info) (company.Info, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO company_info (singleton_guard, place_name, manager_name)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton_guard)
		DO UPDATE SET place_name = EXCLUDED.place_name,
					  manager_name = EXCLUDED.manager_name,
					  updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, info.PlaceName, info.ManagerName).
		Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return company.Info{}, fmt.Errorf("failed to save company info: %w", err)
	}

	return info, nil
}
