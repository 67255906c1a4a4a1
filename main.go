package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/mobilemarket/mobile-market-backend/pkg/cache"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
	"github.com/mobilemarket/mobile-market-backend/pkg/routes"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Mobile Market Server is Running.....")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	if _, err := database.InitDB(); err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if err := cache.InitRedis(); err != nil {
		log.Printf("[warn] redis unavailable, continuing without cache: %v", err)
	}

	routes.RegisterUserRoutes(app)
	routes.RegisterCategoryRoutes(app)
	routes.RegisterProductRoutes(app)
	routes.RegisterBookingRoutes(app)
	routes.RegisterPaymentRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Fatal(app.Listen(":" + port))
}
