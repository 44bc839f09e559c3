package model

import (
	"slices"
	"time"
)

const (
	InquiryStatusNew       = "new"
	InquiryStatusRead      = "read"
	InquiryStatusResponded = "responded"
)

var InquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusRead,
	InquiryStatusResponded,
}

func IsValidInquiryStatus(status string) bool {
	return slices.Contains(InquiryStatuses, status)
}

// Inquiry is a contact-form message. Phone and PackageID are optional;
// when PackageID is present it must reference an existing package.
type Inquiry struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	PackageID string    `json:"packageId,omitempty" bson:"package_id,omitempty"`
	Message   string    `json:"message" bson:"message" validate:"required,min=10,max=5000"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,oneof=new read responded"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

type InquiryStatusUpdate struct {
	Status string `json:"status"`
}

// InquiryWithPackage embeds the referenced package summary when present.
type InquiryWithPackage struct {
	Inquiry
	Package *PackageSummary `json:"package,omitempty"`
}
