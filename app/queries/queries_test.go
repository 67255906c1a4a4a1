package queries_test

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/mobilemarket/mobile-market-backend/app/models"
	"github.com/mobilemarket/mobile-market-backend/app/queries"
)

// The query layer speaks lib/pq placeholders. For SQLite they are rewritten
// to plain ?, which is safe because every query numbers them in order.
var placeholderRe = regexp.MustCompile(`\$\d+`)

type pqStyleDriver struct{ d driver.Driver }

func (p pqStyleDriver) Open(name string) (driver.Conn, error) {
	c, err := p.d.Open(name)
	if err != nil {
		return nil, err
	}
	return pqStyleConn{c}, nil
}

type pqStyleConn struct{ driver.Conn }

func (c pqStyleConn) Prepare(query string) (driver.Stmt, error) {
	return c.Conn.Prepare(placeholderRe.ReplaceAllString(query, "?"))
}

func init() {
	probe, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	base := probe.Driver()
	probe.Close()
	sql.Register("sqlite_pq", pqStyleDriver{base})
}

const testSchema = `
CREATE TABLE users(
  uid TEXT PRIMARY KEY,
  username TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL UNIQUE,
  user_role TEXT NOT NULL DEFAULT 'user',
  seller_verified INTEGER NOT NULL DEFAULT 0,
  phone_number TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP,
  updated_at TIMESTAMP
);
CREATE TABLE categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE
);
CREATE TABLE products(
  id TEXT PRIMARY KEY,
  seller_email TEXT NOT NULL,
  category_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  price INTEGER NOT NULL,
  original_price INTEGER NOT NULL DEFAULT 0,
  location TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  post_date TIMESTAMP,
  is_sold INTEGER NOT NULL DEFAULT 0,
  seller_verified INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE bookings(
  id TEXT PRIMARY KEY,
  user_email TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL DEFAULT '',
  price INTEGER NOT NULL,
  meeting_location TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  is_sold INTEGER NOT NULL DEFAULT 0,
  paid INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP,
  UNIQUE(user_email, product_id)
);
CREATE TABLE payments(
  id TEXT PRIMARY KEY,
  booking_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  amount INTEGER NOT NULL,
  transaction_ref TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP
);
`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite_pq", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range strings.Split(testSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *sql.DB, email, role string, sellerVerified bool) uuid.UUID {
	t.Helper()
	uid := uuid.New()
	now := time.Now()
	_, err := db.Exec(`INSERT INTO users (uid, username, email, user_role, seller_verified, phone_number, location, created_at, updated_at)
					   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uid, "tester", email, role, sellerVerified, "", "", now, now)
	if err != nil {
		t.Fatal(err)
	}
	return uid
}

func seedProduct(t *testing.T, db *sql.DB, sellerEmail string, categoryID uuid.UUID) uuid.UUID {
	t.Helper()
	p := &models.Product{
		ID:          uuid.New(),
		SellerEmail: sellerEmail,
		CategoryID:  categoryID,
		ProductName: "Galaxy S9",
		Price:       120,
		PostDate:    time.Now(),
	}
	q := queries.ProductQueries{DB: db}
	if err := q.CreateProduct(p); err != nil {
		t.Fatal(err)
	}
	return p.ID
}

func seedBooking(t *testing.T, db *sql.DB, email string, productID uuid.UUID) uuid.UUID {
	t.Helper()
	b := &models.Booking{
		ID:        uuid.New(),
		UserEmail: email,
		ProductID: productID,
		Price:     120,
		CreatedAt: time.Now(),
	}
	q := queries.BookingQueries{DB: db}
	if err := q.CreateBooking(b); err != nil {
		t.Fatal(err)
	}
	return b.ID
}
