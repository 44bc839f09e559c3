package errors

import "errors"

var (
	ErrNotFound = errors.New("gallery image not found")

	ErrInvalidID = errors.New("invalid gallery image ID format")

	ErrUnsupportedType = errors.New("unsupported image type")
)
