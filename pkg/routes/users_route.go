package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/mobilemarket/mobile-market-backend/app/controllers"
	"github.com/mobilemarket/mobile-market-backend/pkg/middleware"
)

func RegisterUserRoutes(app *fiber.App) {
	// Token issuance is the only credential exchange, keep it throttled.
	app.Get("/jwt", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), controllers.GetToken)

	app.Get("/users", controllers.GetAllUsers)
	app.Get("/users/admin/:email", controllers.CheckAdmin)
	app.Get("/users/seller/:email", controllers.CheckSeller)
	app.Get("/users/user/:email", controllers.CheckUser)
	app.Get("/allbuyer", controllers.GetAllBuyers)
	app.Get("/allseller", controllers.GetAllSellers)

	// Public upsert: first sign-in registers the profile before /jwt can issue.
	app.Put("/users", controllers.UpsertUser)

	app.Put("/verifySeller/:id", middleware.JWTProtected(), middleware.AdminOnly(), controllers.VerifySeller)
	app.Delete("/users/:id", middleware.JWTProtected(), middleware.AdminOnly(), controllers.DeleteUser)
}
