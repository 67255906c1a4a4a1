package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mobilemarket/mobile-market-backend/app/models"
)

type UserQueries struct {
	DB *sql.DB
}

func (q *UserQueries) GetUserByEmail(email string) (models.User, error) {
	user := models.User{}

	query := `SELECT uid, username, email, user_role, seller_verified, phone_number, location, created_at, updated_at
			  FROM users WHERE email = $1`

	err := q.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.UserRole,
		&user.SellerVerified,
		&user.PhoneNumber,
		&user.Location,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}

	return user, nil
}

func (q *UserQueries) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT uid, username, email, user_role, seller_verified, phone_number, location, created_at, updated_at FROM users`
	rows, err := q.DB.Query(query)
	if err != nil {
		return users, errors.New("unable to get users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.UserRole,
			&user.SellerVerified,
			&user.PhoneNumber,
			&user.Location,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return users, errors.New("error scanning user row")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}

	return users, nil
}

func (q *UserQueries) GetUsersByRole(role string) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT uid, username, email, user_role, seller_verified, phone_number, location, created_at, updated_at FROM users WHERE user_role = $1`
	rows, err := q.DB.Query(query, role)
	if err != nil {
		return users, errors.New("unable to get users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.UserRole,
			&user.SellerVerified,
			&user.PhoneNumber,
			&user.Location,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return users, errors.New("error scanning user row")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}

	return users, nil
}

// UpsertUser inserts or updates a user keyed on email and returns the stable uid.
// seller_verified is intentionally left out of the update set; only the admin
// verification flow may change it.
func (q *UserQueries) UpsertUser(req *models.UpsertUserRequest, role string) (uuid.UUID, error) {
	now := time.Now()

	query := `INSERT INTO users (uid, username, email, user_role, seller_verified, phone_number, location, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7, $8)
			  ON CONFLICT (email) DO UPDATE SET
			    username = excluded.username,
			    user_role = excluded.user_role,
			    phone_number = excluded.phone_number,
			    location = excluded.location,
			    updated_at = excluded.updated_at
			  RETURNING uid`

	var uid uuid.UUID
	err := q.DB.QueryRow(query,
		uuid.New(),
		req.Username,
		req.Email,
		role,
		req.PhoneNumber,
		req.Location,
		now,
		now,
	).Scan(&uid)

	if err != nil {
		return uuid.Nil, errors.New("unable to upsert user, DB error")
	}

	return uid, nil
}

// VerifySeller marks the user verified and mirrors the flag onto every product
// listed under the user's email, in one transaction.
func (q *UserQueries) VerifySeller(id uuid.UUID) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	var email string
	err = tx.QueryRow(`UPDATE users SET seller_verified = TRUE, updated_at = $1 WHERE uid = $2 RETURNING email`,
		time.Now(), id,
	).Scan(&email)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return errors.New("user not found")
		}
		return errors.New("unable to verify seller, DB error")
	}

	_, err = tx.Exec(`UPDATE products SET seller_verified = TRUE WHERE seller_email = $1`, email)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to update seller products, DB error")
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}

	return nil
}

func (q *UserQueries) DeleteUser(id uuid.UUID) error {
	query := `DELETE FROM users WHERE uid = $1`

	res, err := q.DB.Exec(query, id)
	if err != nil {
		return errors.New("unable to delete user, DB error")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user deleted")
	}

	return nil
}
