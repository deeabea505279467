package account

import "errors"

var (
	ErrAccountNotFound  = errors.New("employee account not found")
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
)
