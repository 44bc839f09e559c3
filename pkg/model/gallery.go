package model

import "time"

// GalleryImage is a photo-gallery entry. The binary itself lives under
// the upload directory; URL is the served path.
type GalleryImage struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	URL         string    `json:"url" bson:"url" validate:"required"`
	Category    string    `json:"category" bson:"category" validate:"required,min=2,max=50"`
	Caption     string    `json:"caption,omitempty" bson:"caption,omitempty" validate:"omitempty,max=300"`
	Destination string    `json:"destination,omitempty" bson:"destination,omitempty" validate:"omitempty,max=100"`
	Order       int       `json:"order" bson:"order" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type GalleryImageUpdate struct {
	Category    *string `json:"category,omitempty" validate:"omitempty,min=2,max=50"`
	Caption     *string `json:"caption,omitempty" validate:"omitempty,max=300"`
	Destination *string `json:"destination,omitempty" validate:"omitempty,max=100"`
	Order       *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
}
