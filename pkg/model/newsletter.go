package model

import "time"

// NewsletterSubscriber has a unique email; subscribing twice is an
// idempotent success.
type NewsletterSubscriber struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
}
