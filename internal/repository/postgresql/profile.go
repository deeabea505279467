package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrledger/hr-backend-go/internal/domain/profile"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// Create implements profile.ProfileRepository.
func (p *profileRepository) Create(ctx context.Context, prof profile.UserProfile) (profile.UserProfile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO user_profiles (email, password_hash, full_name, role, employee_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		prof.Email, prof.PasswordHash, prof.FullName, prof.Role, prof.EmployeeNumber, prof.IsActive,
	).Scan(&prof.ID, &prof.CreatedAt, &prof.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return profile.UserProfile{}, profile.ErrEmailExists
		}
		return profile.UserProfile{}, fmt.Errorf("failed to create user profile: %w", err)
	}

	return prof, nil
}

// GetByID implements profile.ProfileRepository.
func (p *profileRepository) GetByID(ctx context.Context, id string) (profile.UserProfile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, email, password_hash, full_name, role, employee_number, is_active, created_at, updated_at
		FROM user_profiles
		WHERE id = $1
	`

	var prof profile.UserProfile
	err := q.QueryRow(ctx, query, id).Scan(
		&prof.ID, &prof.Email, &prof.PasswordHash, &prof.FullName, &prof.Role,
		&prof.EmployeeNumber, &prof.IsActive, &prof.CreatedAt, &prof.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.UserProfile{}, profile.ErrProfileNotFound
		}
		return profile.UserProfile{}, fmt.Errorf("failed to get user profile by ID: %w", err)
	}

	return prof, nil
}

// GetByEmail implements profile.ProfileRepository.
func (p *profileRepository) GetByEmail(ctx context.Context, email string) (profile.UserProfile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, email, password_hash, full_name, role, employee_number, is_active, created_at, updated_at
		FROM user_profiles
		WHERE email = $1
	`

	var prof profile.UserProfile
	err := q.QueryRow(ctx, query, email).Scan(
		&prof.ID, &prof.Email, &prof.PasswordHash, &prof.FullName, &prof.Role,
		&prof.EmployeeNumber, &prof.IsActive, &prof.CreatedAt, &prof.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.UserProfile{}, profile.ErrProfileNotFound
		}
		return profile.UserProfile{}, fmt.Errorf("failed to get user profile by email: %w", err)
	}

	return prof, nil
}

// AdminExists implements profile.ProfileRepository.
func (p *profileRepository) AdminExists(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_profiles WHERE role = 'admin' AND is_active = TRUE
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}

	return exists, nil
}

// SetActive implements profile.ProfileRepository.
func (p *profileRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE user_profiles
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, active, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return profile.ErrProfileNotFound
		}
		return fmt.Errorf("failed to set user profile active flag: %w", err)
	}

	return nil
}

// UpdatePassword implements profile.ProfileRepository.
func (p *profileRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE user_profiles
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return profile.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update user profile password: %w", err)
	}

	return nil
}

// Delete implements profile.ProfileRepository.
func (p *profileRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user profile: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}
