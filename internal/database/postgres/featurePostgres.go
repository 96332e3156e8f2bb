package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ainthinai/booking-api/internal/entity"
)

type featureRepository struct {
	db *sql.DB
}

func NewFeatureRepository(db *sql.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (r *featureRepository) Create(ctx context.Context, feature *entity.Feature) error {
	query := `
		INSERT INTO features (id, type, title, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		feature.ID,
		feature.Type,
		feature.Title,
		feature.Description,
		feature.Image,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create feature: %v", err)
	}

	feature.CreatedAt = now
	return nil
}

func (r *featureRepository) Update(ctx context.Context, feature *entity.Feature) error {
	query := `
		UPDATE features
		SET title = $1, description = $2, image = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		feature.Title,
		feature.Description,
		feature.Image,
		feature.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update feature: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrFeatureNotFound
	}

	return nil
}

func (r *featureRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feature: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrFeatureNotFound
	}

	return nil
}

func (r *featureRepository) GetByID(ctx context.Context, id string) (*entity.Feature, error) {
	query := `
		SELECT id, type, title, COALESCE(description, ''), COALESCE(image, ''), created_at
		FROM features
		WHERE id = $1
	`

	var feature entity.Feature
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&feature.ID,
		&feature.Type,
		&feature.Title,
		&feature.Description,
		&feature.Image,
		&feature.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrFeatureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feature: %v", err)
	}

	return &feature, nil
}

func (r *featureRepository) GetByType(ctx context.Context, featureType string) ([]*entity.Feature, error) {
	query := `
		SELECT id, type, title, COALESCE(description, ''), COALESCE(image, ''), created_at
		FROM features
		WHERE type = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, featureType)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %v", err)
	}
	defer rows.Close()

	var features []*entity.Feature
	for rows.Next() {
		var feature entity.Feature
		err := rows.Scan(
			&feature.ID,
			&feature.Type,
			&feature.Title,
			&feature.Description,
			&feature.Image,
			&feature.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feature: %v", err)
		}
		features = append(features, &feature)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating features: %v", err)
	}

	return features, nil
}

// GetByIDs resolves a list of feature ids to rows in one query. Unknown
// ids are simply absent from the result.
func (r *featureRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Feature, error) {
	if len(ids) == 0 {
		return []entity.Feature{}, nil
	}

	query := `
		SELECT id, type, title, COALESCE(description, ''), COALESCE(image, ''), created_at
		FROM features
		WHERE id IN (`
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			query += ","
		}
		query += fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	query += ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query features by ids: %v", err)
	}
	defer rows.Close()

	features := make([]entity.Feature, 0, len(ids))
	for rows.Next() {
		var feature entity.Feature
		err := rows.Scan(
			&feature.ID,
			&feature.Type,
			&feature.Title,
			&feature.Description,
			&feature.Image,
			&feature.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feature: %v", err)
		}
		features = append(features, feature)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating features: %v", err)
	}

	return features, nil
}
