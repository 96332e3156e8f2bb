package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ainthinai/booking-api/internal/entity"
)

type tourRepository struct {
	db *sql.DB
}

func NewTourRepository(db *sql.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (
			id, category_id, title, place, state, district, description,
			location, adult_price, child_price, main_image, thumbnail,
			gallery_images, amenities, activities, food, things_to_know,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		tour.ID,
		tour.CategoryID,
		tour.Title,
		tour.Place,
		tour.State,
		tour.District,
		tour.Description,
		tour.Location,
		tour.AdultPrice,
		tour.ChildPrice,
		tour.MainImage,
		tour.Thumbnail,
		tour.Gallery,
		tour.Amenities,
		tour.Activities,
		tour.Food,
		tour.ThingsToKnow,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create tour: %v", err)
	}

	tour.CreatedAt = now
	tour.UpdatedAt = now
	return nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours SET
			category_id = $1, title = $2, place = $3, state = $4,
			district = $5, description = $6, location = $7,
			adult_price = $8, child_price = $9, main_image = $10,
			thumbnail = $11, gallery_images = $12, amenities = $13,
			activities = $14, food = $15, things_to_know = $16,
			updated_at = $17
		WHERE id = $18
	`

	result, err := r.db.ExecContext(ctx, query,
		tour.CategoryID,
		tour.Title,
		tour.Place,
		tour.State,
		tour.District,
		tour.Description,
		tour.Location,
		tour.AdultPrice,
		tour.ChildPrice,
		tour.MainImage,
		tour.Thumbnail,
		tour.Gallery,
		tour.Amenities,
		tour.Activities,
		tour.Food,
		tour.ThingsToKnow,
		time.Now(),
		tour.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tour: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTourNotFound
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTourNotFound
	}

	return nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*entity.Tour, error) {
	query := `
		SELECT
			t.id, COALESCE(t.category_id, ''), COALESCE(c.name, '') AS category_name,
			COALESCE(t.title, ''), COALESCE(t.place, ''), COALESCE(t.state, ''),
			COALESCE(t.district, ''), COALESCE(t.description, ''),
			COALESCE(t.location, ''), t.adult_price, t.child_price,
			COALESCE(t.main_image, ''), COALESCE(t.thumbnail, ''),
			t.gallery_images, t.amenities, t.activities, t.food,
			t.things_to_know, COALESCE(t.itinerary, '[]'),
			t.created_at, t.updated_at
		FROM tours t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1
	`

	var tour entity.Tour
	var itinerary []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tour.ID,
		&tour.CategoryID,
		&tour.CategoryName,
		&tour.Title,
		&tour.Place,
		&tour.State,
		&tour.District,
		&tour.Description,
		&tour.Location,
		&tour.AdultPrice,
		&tour.ChildPrice,
		&tour.MainImage,
		&tour.Thumbnail,
		&tour.Gallery,
		&tour.Amenities,
		&tour.Activities,
		&tour.Food,
		&tour.ThingsToKnow,
		&itinerary,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tour: %v", err)
	}

	tour.Itinerary = itinerary
	return &tour, nil
}

func (r *tourRepository) GetAll(ctx context.Context) ([]*entity.Tour, error) {
	query := `
		SELECT
			t.id, COALESCE(t.category_id, ''), COALESCE(c.name, '') AS category_name,
			COALESCE(t.title, ''), COALESCE(t.place, ''), COALESCE(t.state, ''),
			COALESCE(t.district, ''), COALESCE(t.description, ''),
			COALESCE(t.location, ''), t.adult_price, t.child_price,
			COALESCE(t.main_image, ''), COALESCE(t.thumbnail, ''),
			t.gallery_images, t.amenities, t.activities, t.food,
			t.things_to_know, t.created_at, t.updated_at
		FROM tours t
		LEFT JOIN categories c ON t.category_id = c.id
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %v", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		var tour entity.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.CategoryID,
			&tour.CategoryName,
			&tour.Title,
			&tour.Place,
			&tour.State,
			&tour.District,
			&tour.Description,
			&tour.Location,
			&tour.AdultPrice,
			&tour.ChildPrice,
			&tour.MainImage,
			&tour.Thumbnail,
			&tour.Gallery,
			&tour.Amenities,
			&tour.Activities,
			&tour.Food,
			&tour.ThingsToKnow,
			&tour.CreatedAt,
			&tour.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour: %v", err)
		}
		tours = append(tours, &tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tours: %v", err)
	}

	return tours, nil
}
