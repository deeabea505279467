package account

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrledger/hr-backend-go/internal/domain/account"
	"github.com/hrledger/hr-backend-go/internal/domain/profile"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
	"github.com/hrledger/hr-backend-go/internal/repository/postgresql"
)

const recentCheckInLimit = 5

type AccountServiceImpl struct {
	db *database.DB
	profile.ProfileRepository
	account.AccountRepository
	account.AttendanceLogRepository
}

func NewAccountService(
	db *database.DB,
	profileRepository profile.ProfileRepository,
	accountRepository account.AccountRepository,
	attendanceLogRepository account.AttendanceLogRepository,
) account.AccountService {
	return &AccountServiceImpl{
		db:                      db,
		ProfileRepository:       profileRepository,
		AccountRepository:       accountRepository,
		AttendanceLogRepository: attendanceLogRepository,
	}
}

// currentUserID resolves the caller from the request-scoped token claims.
func currentUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateAccount implements account.AccountService. The profile and the
// account row are written in one transaction; a failure on either side
// leaves no partial identity behind.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, req account.CreateAccountRequest) (account.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	adminID, err := currentUserID(ctx)
	if err != nil {
		return account.AccountResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return account.AccountResponse{}, err
	}

	var created account.EmployeeAccount
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		prof, err := s.ProfileRepository.Create(txCtx, profile.UserProfile{
			Email:          req.Email,
			PasswordHash:   passwordHash,
			FullName:       req.FullName,
			Role:           profile.RoleEmployee,
			EmployeeNumber: &req.EmployeeNumber,
			IsActive:       true,
		})
		if err != nil {
			return err
		}

		created, err = s.AccountRepository.Create(txCtx, account.EmployeeAccount{
			UserID:         prof.ID,
			EmployeeNumber: req.EmployeeNumber,
			FullName:       req.FullName,
			Email:          req.Email,
			IsActive:       true,
			CreatedBy:      &adminID,
		})
		return err
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	return account.ToAccountResponse(created), nil
}

// ListAccounts implements account.AccountService.
func (s *AccountServiceImpl) ListAccounts(ctx context.Context) ([]account.AccountResponse, error) {
	accounts, err := s.AccountRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]account.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, account.ToAccountResponse(acc))
	}
	return responses, nil
}

// SetAccountActive implements account.AccountService. The flag is held on
// both the profile and the account row, so both flip together.
func (s *AccountServiceImpl) SetAccountActive(ctx context.Context, req account.SetActiveRequest) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AccountRepository.SetActiveByUserID(txCtx, req.UserID, req.IsActive); err != nil {
			return err
		}
		return s.ProfileRepository.SetActive(txCtx, req.UserID, req.IsActive)
	})
}

// ResetPassword implements account.AccountService.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, req account.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.ProfileRepository.UpdatePassword(ctx, req.UserID, passwordHash)
}

// DeleteAccount implements account.AccountService. The account row and
// the backing profile go together.
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AccountRepository.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}
		return s.ProfileRepository.Delete(txCtx, userID)
	})
}

// ListCheckIns implements account.AccountService.
func (s *AccountServiceImpl) ListCheckIns(ctx context.Context, filter account.LogFilter) ([]account.CheckInResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.AttendanceLogRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]account.CheckInResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, account.ToCheckInResponse(log))
	}
	return responses, nil
}

// GetOwnProfile implements account.AccountService.
func (s *AccountServiceImpl) GetOwnProfile(ctx context.Context) (profile.ProfileResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	prof, err := s.ProfileRepository.GetByID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return profile.ToResponse(prof), nil
}

// CheckIn implements account.AccountService. The one-per-day rule is the
// database's unique (user_id, date) constraint; a second same-day attempt
// surfaces as ErrAlreadyCheckedIn.
func (s *AccountServiceImpl) CheckIn(ctx context.Context, ipAddress string, userAgent string) (account.CheckInResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return account.CheckInResponse{}, err
	}

	acc, err := s.AccountRepository.GetByUserID(ctx, userID)
	if err != nil {
		return account.CheckInResponse{}, err
	}

	if !acc.IsActive {
		return account.CheckInResponse{}, profile.ErrAccountDisabled
	}

	now := time.Now().UTC()

	log := account.AttendanceLog{
		UserID:         userID,
		EmployeeNumber: acc.EmployeeNumber,
		FullName:       acc.FullName,
		CheckInTime:    now,
		Date:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if ipAddress != "" {
		log.IPAddress = &ipAddress
	}
	if userAgent != "" {
		log.UserAgent = &userAgent
	}

	created, err := s.AttendanceLogRepository.Create(ctx, log)
	if err != nil {
		return account.CheckInResponse{}, err
	}

	return account.ToCheckInResponse(created), nil
}

// ListOwnRecentCheckIns implements account.AccountService.
func (s *AccountServiceImpl) ListOwnRecentCheckIns(ctx context.Context) ([]account.CheckInResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.AttendanceLogRepository.ListRecentByUser(ctx, userID, recentCheckInLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]account.CheckInResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, account.ToCheckInResponse(log))
	}
	return responses, nil
}

// UpdateOwnPassword implements account.AccountService.
func (s *AccountServiceImpl) UpdateOwnPassword(ctx context.Context, req account.UpdateOwnPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.ProfileRepository.UpdatePassword(ctx, userID, passwordHash)
}
