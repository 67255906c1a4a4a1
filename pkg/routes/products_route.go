package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/controllers"
	"github.com/mobilemarket/mobile-market-backend/pkg/middleware"
)

func RegisterProductRoutes(app *fiber.App) {
	app.Get("/products/:id", controllers.GetProductsByCategory)
	app.Get("/myproducts", controllers.GetMyProducts)
	app.Post("/products", middleware.JWTProtected(), middleware.SellerOnly(), controllers.CreateProduct)
}
