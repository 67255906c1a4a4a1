package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mobilemarket/mobile-market-backend/app/models"
	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
	"github.com/mobilemarket/mobile-market-backend/pkg/utils"
)

func GetAllUsers(c *fiber.Ctx) error {
	q := queries.UserQueries{DB: database.DB}
	users, err := q.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get users"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func GetAllBuyers(c *fiber.Ctx) error {
	q := queries.UserQueries{DB: database.DB}
	users, err := q.GetUsersByRole(utils.RoleUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get users"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func GetAllSellers(c *fiber.Ctx) error {
	q := queries.UserQueries{DB: database.DB}
	users, err := q.GetUsersByRole(utils.RoleSeller)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get users"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// checkRole answers the role-probe routes. A missing user is not an error,
// just a false flag.
func checkRole(c *fiber.Ctx, field, role string) error {
	email := c.Params("email")
	q := queries.UserQueries{DB: database.DB}
	user, err := q.GetUserByEmail(email)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{field: err == nil && user.UserRole == role})
}

func CheckAdmin(c *fiber.Ctx) error {
	return checkRole(c, "isAdmin", utils.RoleAdmin)
}

func CheckSeller(c *fiber.Ctx) error {
	return checkRole(c, "isSeller", utils.RoleSeller)
}

func CheckUser(c *fiber.Ctx) error {
	return checkRole(c, "isUser", utils.RoleUser)
}

func UpsertUser(c *fiber.Ctx) error {
	payload := &models.UpsertUserRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	role := payload.UserRole
	if role == "" {
		role = utils.RoleUser
	}

	valid := false
	for _, r := range utils.ValidRoles {
		if role == r {
			valid = true
			break
		}
	}
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user role"})
	}

	q := queries.UserQueries{DB: database.DB}
	uid, err := q.UpsertUser(payload, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upsert user"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": uid, "acknowledged": true})
}

func VerifySeller(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	q := queries.UserQueries{DB: database.DB}
	if err := q.VerifySeller(id); err != nil {
		if err.Error() == "user not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to verify seller"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id, "acknowledged": true})
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	q := queries.UserQueries{DB: database.DB}
	if err := q.DeleteUser(id); err != nil {
		if err.Error() == "no user deleted" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id, "acknowledged": true})
}
