package model

import (
	"slices"
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingStatuses is the fixed status set. Transitions are a flat
// membership check, any status may move to any other.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
}

func IsValidBookingStatus(status string) bool {
	return slices.Contains(BookingStatuses, status)
}

// Booking is a customer reservation against a package. TravelDate must be
// strictly in the future at creation time only; status updates do not
// re-validate it.
type Booking struct {
	ID                string    `json:"id,omitempty" bson:"_id,omitempty"`
	PackageID         string    `json:"packageId" bson:"package_id" validate:"required"`
	CustomerName      string    `json:"customerName" bson:"customer_name" validate:"required,min=2,max=100"`
	Email             string    `json:"email" bson:"email" validate:"required,email"`
	Phone             string    `json:"phone" bson:"phone" validate:"required,min=10,max=20"`
	TravelDate        time.Time `json:"travelDate" bson:"travel_date" validate:"required,future"`
	NumberOfTravelers int       `json:"numberOfTravelers" bson:"number_of_travelers" validate:"required,min=1,max=100"`
	TotalPrice        float64   `json:"totalPrice" bson:"total_price" validate:"gte=0"`
	Status            string    `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// BookingStatusUpdate is the dedicated status-transition payload; bookings
// have no generic field patch.
type BookingStatusUpdate struct {
	Status string `json:"status"`
}
