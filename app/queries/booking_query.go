package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mobilemarket/mobile-market-backend/app/models"
)

// ErrAlreadyBooked is returned when a (user_email, product_id) pair already
// holds a booking. The unique index makes the conditional insert atomic, so
// concurrent identical requests cannot both succeed.
var ErrAlreadyBooked = errors.New("already booked")

type BookingQueries struct {
	DB *sql.DB
}

func (q *BookingQueries) CreateBooking(b *models.Booking) error {
	query := `INSERT INTO bookings (id, user_email, product_id, product_name, price, meeting_location, phone, is_sold, paid, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (user_email, product_id) DO NOTHING`

	res, err := q.DB.Exec(query,
		b.ID,
		b.UserEmail,
		b.ProductID,
		b.ProductName,
		b.Price,
		b.MeetingLocation,
		b.Phone,
		b.IsSold,
		b.Paid,
		b.CreatedAt,
	)
	if err != nil {
		return errors.New("unable to create booking, DB error")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlreadyBooked
	}

	return nil
}

func (q *BookingQueries) GetBookingByID(id uuid.UUID) (models.Booking, error) {
	b := models.Booking{}
	query := `SELECT id, user_email, product_id, product_name, price, meeting_location, phone, is_sold, paid, created_at
			  FROM bookings WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(
		&b.ID,
		&b.UserEmail,
		&b.ProductID,
		&b.ProductName,
		&b.Price,
		&b.MeetingLocation,
		&b.Phone,
		&b.IsSold,
		&b.Paid,
		&b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, errors.New("booking not found")
		}
		return b, errors.New("unable to get booking, DB error")
	}
	return b, nil
}

func (q *BookingQueries) GetBookingsByEmail(email string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := `SELECT id, user_email, product_id, product_name, price, meeting_location, phone, is_sold, paid, created_at
			  FROM bookings WHERE user_email = $1`
	rows, err := q.DB.Query(query, email)
	if err != nil {
		return bookings, errors.New("unable to get bookings, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserEmail,
			&b.ProductID,
			&b.ProductName,
			&b.Price,
			&b.MeetingLocation,
			&b.Phone,
			&b.IsSold,
			&b.Paid,
			&b.CreatedAt,
		); err != nil {
			return bookings, errors.New("error scanning booking row")
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return bookings, errors.New("error iterating booking rows")
	}

	return bookings, nil
}
