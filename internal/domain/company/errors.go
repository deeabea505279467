package company

import "errors"

var (
	ErrCompanyInfoNotFound = errors.New("company info not set")
)
