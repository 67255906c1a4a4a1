package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `json:"id" db:"id"`
	SellerEmail    string    `json:"seller_email" db:"seller_email"`
	CategoryID     uuid.UUID `json:"category_id" db:"category_id"`
	ProductName    string    `json:"product_name" db:"product_name"`
	Price          int64     `json:"price"`
	OriginalPrice  int64     `json:"original_price,omitempty"`
	Location       string    `json:"location,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	PostDate       time.Time `json:"post_date" db:"post_date"`
	IsSold         bool      `json:"is_sold" db:"is_sold"`
	SellerVerified bool      `json:"seller_verified" db:"seller_verified"`
}

// MyProduct is the projected shape returned by GET /myproducts.
type MyProduct struct {
	ProductName string    `json:"product_name"`
	Price       int64     `json:"price"`
	PostDate    time.Time `json:"post_date"`
	IsSold      bool      `json:"is_sold"`
}

type CreateProductRequest struct {
	SellerEmail   string `json:"seller_email" validate:"required,email"`
	CategoryID    string `json:"category_id" validate:"required"`
	ProductName   string `json:"product_name" validate:"required"`
	Price         int64  `json:"price" validate:"required,gt=0"`
	OriginalPrice int64  `json:"original_price,omitempty"`
	Location      string `json:"location,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
}
