package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/controllers"
	"github.com/mobilemarket/mobile-market-backend/pkg/middleware"
)

func RegisterPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTProtected(), controllers.CreatePaymentIntent)
	app.Post("/payments", middleware.JWTProtected(), controllers.ConfirmPayment)
}
