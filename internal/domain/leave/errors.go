package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave not found")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)
