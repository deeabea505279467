package discount

import "errors"

var (
	ErrDiscountNotFound = errors.New("discount not found")
)
