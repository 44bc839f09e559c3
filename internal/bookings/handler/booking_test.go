package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/auth/token"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/logger"
	"tripora/pkg/middleware"
	"tripora/pkg/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubBookingService struct {
	createErr error
	booking   *model.Booking
}

func (s *stubBookingService) Create(_ context.Context, booking *model.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	booking.ID = "bk-1"
	booking.Status = model.BookingStatusPending
	return nil
}

func (s *stubBookingService) GetByID(_ context.Context, _ string) (*model.Booking, error) {
	if s.booking == nil {
		return nil, apperrors.NotFound("Booking")
	}
	return s.booking, nil
}

func (s *stubBookingService) GetAll(_ context.Context, _ int, _ int64) ([]*model.Booking, int64, error) {
	if s.booking == nil {
		return []*model.Booking{}, 0, nil
	}
	return []*model.Booking{s.booking}, 1, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, _ string, status string) (*model.Booking, error) {
	if !model.IsValidBookingStatus(status) {
		return nil, apperrors.InvalidStatus(status, model.BookingStatuses)
	}
	if s.booking == nil {
		return nil, apperrors.NotFound("Booking")
	}
	s.booking.Status = status
	return s.booking, nil
}

func testRouter(t *testing.T, svc *stubBookingService) (*httprouter.Router, *token.Service) {
	t.Helper()
	log := logger.New(logger.Config{Output: io.Discard})
	tokens := token.NewService(testSecret, time.Hour)
	auth := middleware.NewAuthenticator(tokens, log)

	router := httprouter.New()
	NewBookingHandler(svc, auth, log).RegisterRoutes(router)
	return router, tokens
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, _ := testRouter(t, &stubBookingService{})

	payload := `{
		"packageId": "0123456789abcdef01234567",
		"customerName": "Jordan Reyes",
		"email": "jordan@example.com",
		"phone": "+15550001111",
		"travelDate": "2030-06-01T00:00:00Z",
		"numberOfTravelers": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != model.BookingStatusPending {
		t.Errorf("data.status = %v, want pending", data["status"])
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	router, _ := testRouter(t, &stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	router, _ := testRouter(t, &stubBookingService{createErr: apperrors.NotFound("Package")})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"packageId":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Package not found" {
		t.Errorf("message = %v, want %q", body["message"], "Package not found")
	}
}

func TestListBookingsRequiresAuth(t *testing.T) {
	router, tokens := testRouter(t, &stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", rec.Code)
	}

	signed, err := tokens.Issue("u-1", "admin@tripora.test")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	pagination, _ := body["pagination"].(map[string]any)
	if pagination == nil {
		t.Fatal("expected a pagination block")
	}
	if pagination["page"] != float64(1) || pagination["limit"] != float64(10) {
		t.Errorf("pagination defaults = %v, want page 1 limit 10", pagination)
	}
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	svc := &stubBookingService{booking: &model.Booking{ID: "bk-1", Status: model.BookingStatusPending}}
	router, tokens := testRouter(t, svc)
	signed, err := tokens.Issue("u-1", "admin@tripora.test")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/bookings/bk-1", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/api/bookings/bk-1", strings.NewReader(`{"status":"finished"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid status = %d, want 400", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "pending") || !strings.Contains(msg, "confirmed") || !strings.Contains(msg, "cancelled") {
		t.Errorf("message %q should enumerate the legal statuses", msg)
	}
}
