package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mobilemarket/mobile-market-backend/app/models"
	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
)

func CreateBooking(c *fiber.Ctx) error {
	payload := &models.CreateBookingRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product_id"})
	}

	booking := &models.Booking{
		ID:              uuid.New(),
		UserEmail:       payload.UserEmail,
		ProductID:       productID,
		ProductName:     payload.ProductName,
		Price:           payload.Price,
		MeetingLocation: payload.MeetingLocation,
		Phone:           payload.Phone,
		IsSold:          false,
		Paid:            false,
		CreatedAt:       time.Now(),
	}

	q := queries.BookingQueries{DB: database.DB}
	if err := q.CreateBooking(booking); err != nil {
		if errors.Is(err, queries.ErrAlreadyBooked) {
			// Still a 200; callers branch on the acknowledged flag.
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"acknowledged": false,
				"message":      "already booked",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": booking.ID, "acknowledged": true})
}

// GetBookings lists the caller's bookings. The email query must match the
// token's email claim.
func GetBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	claimEmail, _ := c.Locals("email").(string)
	if email == "" || email != claimEmail {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	q := queries.BookingQueries{DB: database.DB}
	bookings, err := q.GetBookingsByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get bookings"})
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

func GetBookingByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	q := queries.BookingQueries{DB: database.DB}
	booking, err := q.GetBookingByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}
