package utils

import "errors"

// Common application errors used across repositories and handlers.
var (
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
)
