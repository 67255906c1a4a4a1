package queries

import (
	"database/sql"
	"errors"

	"github.com/mobilemarket/mobile-market-backend/app/models"
)

type CategoryQueries struct {
	DB *sql.DB
}

func (q *CategoryQueries) GetAllCategories() ([]models.Category, error) {
	categories := []models.Category{}
	query := `SELECT id, name FROM categories ORDER BY name`
	rows, err := q.DB.Query(query)
	if err != nil {
		return categories, errors.New("unable to get categories, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return categories, errors.New("error scanning category row")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return categories, errors.New("error iterating category rows")
	}

	return categories, nil
}
