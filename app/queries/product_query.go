package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mobilemarket/mobile-market-backend/app/models"
)

type ProductQueries struct {
	DB *sql.DB
}

func (q *ProductQueries) CreateProduct(p *models.Product) error {
	query := `INSERT INTO products (id, seller_email, category_id, product_name, price, original_price, location, image_url, post_date, is_sold, seller_verified)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := q.DB.Exec(query,
		p.ID,
		p.SellerEmail,
		p.CategoryID,
		p.ProductName,
		p.Price,
		p.OriginalPrice,
		p.Location,
		p.ImageURL,
		p.PostDate,
		p.IsSold,
		p.SellerVerified,
	)

	if err != nil {
		return errors.New("unable to create product, DB error")
	}

	return nil
}

// GetProductsByCategory returns the unsold products of one category.
func (q *ProductQueries) GetProductsByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT id, seller_email, category_id, product_name, price, original_price, location, image_url, post_date, is_sold, seller_verified
			  FROM products WHERE category_id = $1 AND is_sold = FALSE`
	rows, err := q.DB.Query(query, categoryID)
	if err != nil {
		return products, errors.New("unable to get products, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID,
			&p.SellerEmail,
			&p.CategoryID,
			&p.ProductName,
			&p.Price,
			&p.OriginalPrice,
			&p.Location,
			&p.ImageURL,
			&p.PostDate,
			&p.IsSold,
			&p.SellerVerified,
		); err != nil {
			return products, errors.New("error scanning product row")
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return products, errors.New("error iterating product rows")
	}

	return products, nil
}

// GetProductsBySeller projects the listing shape used by the seller dashboard.
func (q *ProductQueries) GetProductsBySeller(email string) ([]models.MyProduct, error) {
	products := []models.MyProduct{}
	query := `SELECT product_name, price, post_date, is_sold FROM products WHERE seller_email = $1`
	rows, err := q.DB.Query(query, email)
	if err != nil {
		return products, errors.New("unable to get products, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var p models.MyProduct
		if err := rows.Scan(&p.ProductName, &p.Price, &p.PostDate, &p.IsSold); err != nil {
			return products, errors.New("error scanning product row")
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return products, errors.New("error iterating product rows")
	}

	return products, nil
}
