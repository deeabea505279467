package profile

import "errors"

var (
	ErrProfileNotFound        = errors.New("user profile not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAccountDisabled        = errors.New("account is disabled")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
