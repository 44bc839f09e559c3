package model

import "time"

// User is an admin back-office account. The password hash is never
// serialized outward.
type User struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string    `json:"username" bson:"username" validate:"required,min=3,max=50"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `json:"-" bson:"password" validate:"required,min=6"`
	Role      string    `json:"role" bson:"role" validate:"omitempty,oneof=admin staff"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Identity is the verified caller attached to the request context by the
// authentication middleware.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
