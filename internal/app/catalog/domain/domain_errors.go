package domain

import "errors"

// Domain errors as sentinel values
var (
	// Query errors
	ErrInvalidFilter = errors.New("invalid catalog filter")

	// Lookup errors
	ErrProductNotFound = errors.New("product not found")
)
