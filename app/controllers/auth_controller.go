package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
	"github.com/mobilemarket/mobile-market-backend/pkg/utils"
)

var validate = validator.New()

// GetToken issues a signed token for a known user. There is no password step;
// possession of a registered email is the whole bootstrap, so unknown emails
// get a hard 403.
func GetToken(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter is required"})
	}

	q := queries.UserQueries{DB: database.DB}
	if _, err := q.GetUserByEmail(email); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to sign token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
