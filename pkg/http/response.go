package http

import (
	"encoding/json"
	"net/http"

	apperrors "tripora/pkg/errors"
)

// Response is the envelope every endpoint returns:
// {success, message, data?|errors?, pagination?}.
type Response struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message,omitempty"`
	Data       any                    `json:"data,omitempty"`
	Errors     []apperrors.FieldError `json:"errors,omitempty"`
	Pagination *Pagination            `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes pages = ceil(total/limit). A page beyond the
// available data is legal and simply pairs with an empty item list.
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, body Response) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// No recovery possible after WriteHeader, caller logs
		return err
	}
	return nil
}

func WriteSuccess(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteCreated(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WritePaginated(w http.ResponseWriter, data any, page, limit int, total int64) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), Response{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
