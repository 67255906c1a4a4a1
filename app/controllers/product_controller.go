package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mobilemarket/mobile-market-backend/app/models"
	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
)

func CreateProduct(c *fiber.Ctx) error {
	payload := &models.CreateProductRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	categoryID, err := uuid.Parse(payload.CategoryID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category_id"})
	}

	// Snapshot the seller's verification flag; absent seller means unverified.
	sellerVerified := false
	uq := queries.UserQueries{DB: database.DB}
	if seller, err := uq.GetUserByEmail(payload.SellerEmail); err == nil {
		sellerVerified = seller.SellerVerified
	}

	product := &models.Product{
		ID:             uuid.New(),
		SellerEmail:    payload.SellerEmail,
		CategoryID:     categoryID,
		ProductName:    payload.ProductName,
		Price:          payload.Price,
		OriginalPrice:  payload.OriginalPrice,
		Location:       payload.Location,
		ImageURL:       payload.ImageURL,
		PostDate:       time.Now(),
		IsSold:         false,
		SellerVerified: sellerVerified,
	}

	q := queries.ProductQueries{DB: database.DB}
	if err := q.CreateProduct(product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": product.ID, "acknowledged": true})
}

func GetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	q := queries.ProductQueries{DB: database.DB}
	products, err := q.GetProductsByCategory(categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func GetMyProducts(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter is required"})
	}

	q := queries.ProductQueries{DB: database.DB}
	products, err := q.GetProductsBySeller(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
