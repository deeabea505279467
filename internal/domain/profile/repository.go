package profile

import "context"

type ProfileRepository interface {
	Create(ctx context.Context, p UserProfile) (UserProfile, error)
	GetByID(ctx context.Context, id string) (UserProfile, error)
	GetByEmail(ctx context.Context, email string) (UserProfile, error)

	// AdminExists reports whether any active admin-role profile exists.
	// Used only by the operator provisioning tool.
	AdminExists(ctx context.Context) (bool, error)

	SetActive(ctx context.Context, id string, active bool) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
