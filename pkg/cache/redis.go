package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is nil when REDIS_ADDR is unset; callers fall back to the database.
var Client *redis.Client

// InitRedis connects the optional category cache. A missing or unreachable
// Redis is not fatal, the API just serves every read from Postgres.
func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, category cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Successfully connected to Redis")
	Client = client
	return nil
}

func CloseRedis() {
	if Client != nil {
		Client.Close()
		Client = nil
		log.Println("Redis connection closed")
	}
}
