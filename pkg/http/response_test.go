package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	apperrors "tripora/pkg/errors"
)

func TestNewPagination_PagesIsCeilOfTotalOverLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"exact multiple", 1, 10, 100, 10},
		{"remainder adds a page", 1, 10, 101, 11},
		{"single partial page", 1, 10, 3, 1},
		{"empty collection", 1, 10, 0, 0},
		{"limit one", 5, 1, 7, 7},
		{"total below limit", 2, 50, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", p.Pages, tt.wantPages)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.Page != tt.page || p.Limit != tt.limit {
				t.Errorf("Page/Limit = %d/%d, want %d/%d", p.Page, p.Limit, tt.page, tt.limit)
			}
		})
	}
}

func TestWritePaginated_BeyondLastPageKeepsTotal(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WritePaginated(w, []string{}, 99, 10, 42); err != nil {
		t.Fatalf("WritePaginated: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Pagination == nil {
		t.Fatal("expected pagination envelope")
	}
	if resp.Pagination.Total != 42 {
		t.Errorf("Total = %d, want 42", resp.Pagination.Total)
	}
	if resp.Pagination.Pages != 5 {
		t.Errorf("Pages = %d, want 5", resp.Pagination.Pages)
	}
}

func TestWriteError_ValidationFieldsSerialized(t *testing.T) {
	w := httptest.NewRecorder()
	err := apperrors.ValidationFailed([]apperrors.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "price", Message: "price must be at least 0"},
	})
	if writeErr := WriteError(w, err); writeErr != nil {
		t.Fatalf("WriteError: %v", writeErr)
	}

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Field != "name" {
		t.Errorf("first offending field = %q, want %q", resp.Errors[0].Field, "name")
	}
}

func TestWriteError_UnknownErrorMapsToInternal(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteError(w, json.Unmarshal([]byte("{"), &struct{}{})); err != nil {
		t.Fatalf("WriteError: %v", err)
	}
	if w.Code != 500 {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
