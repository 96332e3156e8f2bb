package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ainthinai/booking-api/internal/entity"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (email, password, phone, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		admin.Email,
		admin.PasswordHash,
		admin.Phone,
		time.Now(),
	).Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create admin: %v", err)
	}

	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password, COALESCE(phone, ''), created_at
		FROM admins
		WHERE email = $1
	`

	var admin entity.Admin
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Phone,
		&admin.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %v", err)
	}

	return &admin, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*entity.Admin, error) {
	query := `
		SELECT id, email, password, COALESCE(phone, ''), created_at
		FROM admins
		WHERE id = $1
	`

	var admin entity.Admin
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Phone,
		&admin.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %v", err)
	}

	return &admin, nil
}
