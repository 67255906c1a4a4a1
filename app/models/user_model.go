package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id" db:"uid"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	UserRole       string    `json:"user_role"`
	SellerVerified bool      `json:"seller_verified"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Location       string    `json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertUserRequest is the PUT /users payload, keyed on email.
type UpsertUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username"`
	UserRole    string `json:"user_role,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty"`
}
