package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserEmail       string    `json:"user_email" db:"user_email"`
	ProductID       uuid.UUID `json:"product_id" db:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	Price           int64     `json:"price"`
	MeetingLocation string    `json:"meeting_location,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	IsSold          bool      `json:"is_sold"`
	Paid            bool      `json:"paid"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateBookingRequest struct {
	UserEmail       string `json:"user_email" validate:"required,email"`
	ProductID       string `json:"product_id" validate:"required"`
	ProductName     string `json:"product_name,omitempty"`
	Price           int64  `json:"price" validate:"required,gt=0"`
	MeetingLocation string `json:"meeting_location,omitempty"`
	Phone           string `json:"phone,omitempty"`
}
