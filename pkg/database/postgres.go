package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_NAME")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, database)

	var err error
	DB, err = sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error open connecting: %w", err)
	}

	err = DB.Ping()
	if err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if err := ensureSchema(DB); err != nil {
		return nil, fmt.Errorf("error ensuring schema: %w", err)
	}
	if err := seedCategories(DB); err != nil {
		return nil, fmt.Errorf("error seeding categories: %w", err)
	}

	log.Println("Successfully connected to the database")
	return DB, nil
}

func CloseDB() error {
	if DB != nil {
		err := DB.Close()
		if err != nil {
			return fmt.Errorf("error closing database connection: %w", err)
		}
		log.Println("Database connection closed")
	}
	return nil
}

func ensureSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users(
  uid UUID PRIMARY KEY,
  username TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL UNIQUE,
  user_role TEXT NOT NULL DEFAULT 'user',
  seller_verified BOOLEAN NOT NULL DEFAULT FALSE,
  phone_number TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS categories(
  id UUID PRIMARY KEY,
  name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS products(
  id UUID PRIMARY KEY,
  seller_email TEXT NOT NULL,
  category_id UUID NOT NULL,
  product_name TEXT NOT NULL,
  price BIGINT NOT NULL,
  original_price BIGINT NOT NULL DEFAULT 0,
  location TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  post_date TIMESTAMPTZ NOT NULL,
  is_sold BOOLEAN NOT NULL DEFAULT FALSE,
  seller_verified BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller_email);

CREATE TABLE IF NOT EXISTS bookings(
  id UUID PRIMARY KEY,
  user_email TEXT NOT NULL,
  product_id UUID NOT NULL,
  product_name TEXT NOT NULL DEFAULT '',
  price BIGINT NOT NULL,
  meeting_location TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  is_sold BOOLEAN NOT NULL DEFAULT FALSE,
  paid BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL,
  UNIQUE(user_email, product_id)
);

CREATE TABLE IF NOT EXISTS payments(
  id UUID PRIMARY KEY,
  booking_id UUID NOT NULL,
  product_id UUID NOT NULL,
  amount BIGINT NOT NULL,
  transaction_ref TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedCategories inserts the fixed category set on an empty table. The API has
// no category write routes, so this is the only way rows get in.
func seedCategories(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default categories")

	names := []string{"iPhone", "Samsung", "Xiaomi", "Oppo", "Feature Phones"}
	for _, name := range names {
		if _, err := db.Exec(`INSERT INTO categories (id, name) VALUES ($1, $2)`, uuid.New(), name); err != nil {
			return err
		}
	}
	return nil
}
