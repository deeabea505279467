package company

import "context"

type CompanyRepository interface {
	// Get returns the singleton row, or ErrCompanyInfoNotFound before the
	// first save.
	Get(ctx context.Context) (Info, error)

	// Save inserts the row on first call and replaces its fields afterwards.
	Save(ctx context.Context, info Info) (Info, error)
}
