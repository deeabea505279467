package company

import "time"

// Info is the single-tenant company record. At most one row exists; it is
// absent until first saved.
type Info struct {
	ID          string
	PlaceName   string
	ManagerName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
