package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ainthinai/booking-api/internal/entity"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, image, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Image, now)
	if err != nil {
		return fmt.Errorf("failed to create category: %v", err)
	}

	category.CreatedAt = now
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $1, image = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.Image, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(image, ''), created_at
		FROM categories
		WHERE id = $1
	`

	var category entity.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Image,
		&category.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %v", err)
	}

	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(image, ''), created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %v", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Image, &category.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %v", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %v", err)
	}

	return categories, nil
}
