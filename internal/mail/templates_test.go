package mail

import (
	"strings"
	"testing"
	"time"

	"tripora/pkg/model"
)

func testBooking() *model.Booking {
	return &model.Booking{
		ID:                "665f1e9cf4a3a9d1d4c2aa01",
		PackageID:         "665f1e9cf4a3a9d1d4c2aa02",
		CustomerName:      "Jane Traveler",
		Email:             "jane@example.com",
		Phone:             "+15550001234",
		TravelDate:        time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		NumberOfTravelers: 2,
		TotalPrice:        3000,
		Status:            model.BookingStatusPending,
	}
}

func testPackage() *model.Package {
	price := 1500.0
	return &model.Package{
		ID:          "665f1e9cf4a3a9d1d4c2aa02",
		Name:        "Bali Adventure",
		Destination: "Bali",
		Duration:    7,
		Price:       &price,
	}
}

func testInquiry() *model.Inquiry {
	return &model.Inquiry{
		Name:    "Jane Traveler",
		Email:   "jane@example.com",
		Message: "Do you offer family discounts on the Bali package?",
		Status:  model.InquiryStatusNew,
	}
}

func TestRender_BookingConfirmation(t *testing.T) {
	subject, body, err := Render(KindBookingConfirmation, Data{
		Booking: testBooking(),
		Package: testPackage(),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(subject, "Bali Adventure") {
		t.Errorf("subject missing package name: %q", subject)
	}
	for _, want := range []string{"Jane Traveler", "Bali Adventure", "October 14, 2026", "$3000.00", "pending"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("body should be a self-contained HTML document")
	}
}

func TestRender_BookingAlertFallsBackToPackageID(t *testing.T) {
	// Package resolution can fail after the booking was persisted
	subject, _, err := Render(KindBookingAlert, Data{Booking: testBooking()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(subject, "665f1e9cf4a3a9d1d4c2aa02") {
		t.Errorf("subject should fall back to package id: %q", subject)
	}
}

func TestRender_InquiryTemplates(t *testing.T) {
	_, ackBody, err := Render(KindInquiryAck, Data{Inquiry: testInquiry()})
	if err != nil {
		t.Fatalf("Render ack: %v", err)
	}
	if !strings.Contains(ackBody, "family discounts") {
		t.Error("ack body should quote the message")
	}

	alertSubject, alertBody, err := Render(KindInquiryAlert, Data{
		Inquiry: testInquiry(),
		Package: testPackage(),
	})
	if err != nil {
		t.Fatalf("Render alert: %v", err)
	}
	if !strings.Contains(alertSubject, "Jane Traveler") {
		t.Errorf("alert subject = %q", alertSubject)
	}
	if !strings.Contains(alertBody, "Bali Adventure") {
		t.Error("alert body should name the referenced package")
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	inquiry := testInquiry()
	inquiry.Name = `<script>alert("x")</script>`
	_, body, err := Render(KindInquiryAck, Data{Inquiry: inquiry})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("customer input must be escaped")
	}
}

func TestRender_MissingDataAndUnknownKind(t *testing.T) {
	if _, _, err := Render(KindBookingConfirmation, Data{}); err == nil {
		t.Error("expected error without booking data")
	}
	if _, _, err := Render(Kind("nope"), Data{Booking: testBooking()}); err == nil {
		t.Error("expected error for unknown kind")
	}
}
