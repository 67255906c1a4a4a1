package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mobilemarket/mobile-market-backend/app/queries"
	"github.com/mobilemarket/mobile-market-backend/pkg/cache"
	"github.com/mobilemarket/mobile-market-backend/pkg/database"
)

const categoriesCacheKey = "categories:all"
const categoriesCacheTTL = 10 * time.Minute

// GetCategories lists the fixed category set. The listing never changes at
// runtime, so it is the one read worth caching.
func GetCategories(c *fiber.Ctx) error {
	ctx := context.Background()

	if cache.Client != nil {
		if b, err := cache.Client.Get(ctx, categoriesCacheKey).Bytes(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.Send(b)
		}
	}

	q := queries.CategoryQueries{DB: database.DB}
	categories, err := q.GetAllCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to get categories"})
	}

	if cache.Client != nil {
		if b, err := json.Marshal(categories); err == nil {
			cache.Client.Set(ctx, categoriesCacheKey, b, categoriesCacheTTL)
		}
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}
