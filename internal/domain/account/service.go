package account

import (
	"context"

	"github.com/hrledger/hr-backend-go/internal/domain/profile"
)

// AccountService covers both the admin-facing account register and the
// employee self-service surface. Admin operations take the target user
// ID explicitly; self-service operations resolve the caller from the
// request-scoped token claims.
type AccountService interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	ListAccounts(ctx context.Context) ([]AccountResponse, error)
	SetAccountActive(ctx context.Context, req SetActiveRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	DeleteAccount(ctx context.Context, userID string) error
	ListCheckIns(ctx context.Context, filter LogFilter) ([]CheckInResponse, error)

	GetOwnProfile(ctx context.Context) (profile.ProfileResponse, error)
	CheckIn(ctx context.Context, ipAddress string, userAgent string) (CheckInResponse, error)
	ListOwnRecentCheckIns(ctx context.Context) ([]CheckInResponse, error)
	UpdateOwnPassword(ctx context.Context, req UpdateOwnPasswordRequest) error
}
