package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/controllers"
	"github.com/mobilemarket/mobile-market-backend/pkg/middleware"
)

func RegisterBookingRoutes(app *fiber.App) {
	app.Get("/bookings", middleware.JWTProtected(), controllers.GetBookings)
	app.Get("/bookings/:id", controllers.GetBookingByID)
	app.Post("/bookings", middleware.JWTProtected(), controllers.CreateBooking)
}
