package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ainthinai/booking-api/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			google_id TEXT,
			name TEXT,
			email TEXT NOT NULL,
			profile_pic TEXT,
			phone TEXT,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			phone TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			image TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS features (
			id TEXT PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			image TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS tours (
			id TEXT PRIMARY KEY,
			category_id TEXT,
			title TEXT,
			place TEXT,
			state TEXT,
			district TEXT,
			description TEXT,
			location TEXT,
			adult_price NUMERIC(12,2) DEFAULT 0,
			child_price NUMERIC(12,2) DEFAULT 0,
			main_image TEXT,
			thumbnail TEXT,
			gallery_images JSONB NOT NULL DEFAULT '[]',
			amenities JSONB NOT NULL DEFAULT '[]',
			activities JSONB NOT NULL DEFAULT '[]',
			food JSONB NOT NULL DEFAULT '[]',
			things_to_know JSONB NOT NULL DEFAULT '[]',
			itinerary JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id),
			tour_id TEXT NOT NULL,
			tour_title TEXT,
			adult_count INTEGER NOT NULL DEFAULT 0,
			child_count INTEGER NOT NULL DEFAULT 0,
			total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_type VARCHAR(50) NOT NULL,
			paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			check_in DATE NOT NULL,
			check_out DATE NOT NULL,
			booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS booking_travelers (
			id SERIAL PRIMARY KEY,
			booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
			type VARCHAR(10) NOT NULL,
			name TEXT,
			age INTEGER,
			id_number TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS itinerary_days (
			id TEXT PRIMARY KEY,
			tour_id TEXT NOT NULL REFERENCES tours(id) ON DELETE CASCADE,
			day_number INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS itinerary_activities (
			id TEXT PRIMARY KEY,
			day_id TEXT NOT NULL REFERENCES itinerary_days(id) ON DELETE CASCADE,
			period TEXT,
			time TEXT,
			title TEXT,
			description TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS itinerary_images (
			id TEXT PRIMARY KEY,
			activity_id TEXT NOT NULL REFERENCES itinerary_activities(id) ON DELETE CASCADE,
			image_url TEXT NOT NULL
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
		`CREATE INDEX IF NOT EXISTS idx_booking_travelers_booking_id ON booking_travelers(booking_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tours_category_id ON tours(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_features_type ON features(type)`,
		`CREATE INDEX IF NOT EXISTS idx_itinerary_days_tour_id ON itinerary_days(tour_id)`,
		`CREATE INDEX IF NOT EXISTS idx_itinerary_activities_day_id ON itinerary_activities(day_id)`,
		`CREATE INDEX IF NOT EXISTS idx_itinerary_images_activity_id ON itinerary_images(activity_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
