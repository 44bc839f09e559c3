package http

import (
	"net/http"
	"strconv"

	apperrors "tripora/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ExtractPageLimit reads the page/limit query parameters with the
// defaults the public API documents: page >= 1 default 1, limit
// default 10, capped at MaxLimit.
func ExtractPageLimit(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	page := DefaultPage
	if s := query.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid page parameter: " + s)
		}
		if v >= 1 {
			page = v
		}
	}

	limit := DefaultLimit
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		if v >= 1 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit, nil
}

// Offset converts a 1-based page into a document skip count.
func Offset(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}
