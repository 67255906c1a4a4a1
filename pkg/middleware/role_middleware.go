package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
	"github.com/mobilemarket/mobile-market-backend/pkg/utils"
)

// requireRole re-reads the user behind the email claim set by JWTProtected
// and passes only when the stored role matches.
func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if email == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "forbidden access",
			})
		}

		q := queries.UserQueries{DB: database.DB}
		user, err := q.GetUserByEmail(email)
		if err != nil || user.UserRole != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "forbidden access",
			})
		}

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return requireRole(utils.RoleAdmin)
}

func SellerOnly() fiber.Handler {
	return requireRole(utils.RoleSeller)
}
