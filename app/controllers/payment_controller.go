package controllers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mobilemarket/mobile-market-backend/app/models"
	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
	"github.com/mobilemarket/mobile-market-backend/pkg/utils"
)

func CreatePaymentIntent(c *fiber.Ctx) error {
	payload := &models.CreatePaymentIntentRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	clientSecret, err := utils.CreatePaymentIntent(payload.Price)
	if err != nil {
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to create payment intent"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"clientSecret": clientSecret})
}

func ConfirmPayment(c *fiber.Ctx) error {
	payload := &models.CreatePaymentRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid booking_id"})
	}
	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product_id"})
	}

	payment := &models.Payment{
		ID:             uuid.New(),
		BookingID:      bookingID,
		ProductID:      productID,
		Amount:         payload.Amount,
		TransactionRef: payload.TransactionRef,
		CreatedAt:      time.Now(),
	}

	q := queries.PaymentQueries{DB: database.DB}
	if err := q.ConfirmPayment(payment); err != nil {
		if err.Error() == "booking not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to confirm payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": payment.ID, "acknowledged": true})
}
