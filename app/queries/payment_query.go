package queries

import (
	"database/sql"
	"errors"

	"github.com/mobilemarket/mobile-market-backend/app/models"
)

type PaymentQueries struct {
	DB *sql.DB
}

// ConfirmPayment records the ledger entry and settles the booking and product
// state in a single transaction. Either everything applies or nothing does;
// a payment row never exists next to an unsold product.
func (q *PaymentQueries) ConfirmPayment(p *models.Payment) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	_, err = tx.Exec(`INSERT INTO payments (id, booking_id, product_id, amount, transaction_ref, created_at)
					  VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.BookingID, p.ProductID, p.Amount, p.TransactionRef, p.CreatedAt,
	)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to create payment, DB error")
	}

	res, err := tx.Exec(`UPDATE bookings SET is_sold = TRUE, paid = TRUE WHERE id = $1`, p.BookingID)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to update booking, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if rows == 0 {
		tx.Rollback()
		return errors.New("booking not found")
	}

	// Other bookings on the same product lose it as well.
	_, err = tx.Exec(`UPDATE bookings SET is_sold = TRUE WHERE product_id = $1`, p.ProductID)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to update bookings, DB error")
	}

	_, err = tx.Exec(`UPDATE products SET is_sold = TRUE WHERE id = $1`, p.ProductID)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to update product, DB error")
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}

	return nil
}
