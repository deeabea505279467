package company

import "context"

type CompanyService interface {
	// Get returns the company record, or ErrCompanyInfoNotFound before the
	// first save.
	Get(ctx context.Context) (InfoResponse, error)

	// Save creates the record on first call and replaces it afterwards.
	Save(ctx context.Context, req SaveInfoRequest) (InfoResponse, error)
}
