package overtime

import "errors"

var (
	ErrEntryNotFound = errors.New("overtime entry not found")
)
