package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only ledger entry; rows are never updated.
type Payment struct {
	ID             uuid.UUID `json:"id" db:"id"`
	BookingID      uuid.UUID `json:"booking_id" db:"booking_id"`
	ProductID      uuid.UUID `json:"product_id" db:"product_id"`
	Amount         int64     `json:"amount"`
	TransactionRef string    `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	BookingID      string `json:"booking_id" validate:"required"`
	ProductID      string `json:"product_id" validate:"required"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	TransactionRef string `json:"transaction_ref,omitempty"`
}

type CreatePaymentIntentRequest struct {
	Price int64 `json:"price" validate:"required,gt=0"`
}
