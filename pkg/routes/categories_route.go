package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/controllers"
)

func RegisterCategoryRoutes(app *fiber.App) {
	app.Get("/categories", controllers.GetCategories)
}
