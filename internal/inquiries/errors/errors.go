package errors

import "errors"

var (
	ErrNotFound = errors.New("inquiry not found")

	ErrInvalidID = errors.New("invalid inquiry ID format")
)
