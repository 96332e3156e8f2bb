package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ainthinai/booking-api/internal/entity"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// CreateWithTravelers creates a booking and its traveler rows atomically.
// Any failure rolls the whole insert back; no partial booking survives.
func (r *bookingRepository) CreateWithTravelers(ctx context.Context, booking *entity.Booking, travelers []entity.Traveler) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (
			user_id, tour_id, tour_title, adult_count, child_count,
			total_amount, payment_type, paid_amount, status,
			check_in, check_out, booking_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	now := time.Now()
	err = tx.QueryRowContext(ctx, query,
		booking.UserID,
		booking.TourID,
		booking.TourTitle,
		booking.AdultCount,
		booking.ChildCount,
		booking.TotalAmount,
		booking.PaymentType,
		booking.PaidAmount,
		booking.Status,
		booking.CheckIn,
		booking.CheckOut,
		now,
		now,
		now,
	).Scan(&booking.ID)

	if err != nil {
		return fmt.Errorf("failed to create booking: %v", err)
	}

	for _, t := range travelers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO booking_travelers (booking_id, type, name, age, id_number)
			VALUES ($1, $2, $3, $4, $5)`,
			booking.ID,
			t.Type,
			t.Name,
			t.Age,
			t.IDNumber,
		)
		if err != nil {
			return fmt.Errorf("failed to create traveler: %v", err)
		}
	}

	booking.BookingDate = now
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// GetByUserID retrieves all bookings owned by a user, newest first.
func (r *bookingRepository) GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	query := `
		SELECT
			id, tour_id, COALESCE(tour_title, ''), adult_count, child_count,
			total_amount, payment_type, paid_amount, status,
			check_in, check_out, booking_date, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by user: %v", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.TourID,
			&booking.TourTitle,
			&booking.AdultCount,
			&booking.ChildCount,
			&booking.TotalAmount,
			&booking.PaymentType,
			&booking.PaidAmount,
			&booking.Status,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.BookingDate,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %v", err)
	}

	return bookings, nil
}

// GetAllWithUser retrieves every booking joined with the owner's name and
// email, newest first.
func (r *bookingRepository) GetAllWithUser(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT
			b.id, b.user_id, COALESCE(u.name, '') AS user_name,
			COALESCE(u.email, '') AS user_email,
			b.tour_id, COALESCE(b.tour_title, ''), b.adult_count, b.child_count,
			b.total_amount, b.payment_type, b.paid_amount, b.status,
			b.check_in, b.check_out, b.booking_date, b.created_at
		FROM bookings b
		LEFT JOIN users u ON b.user_id = u.id
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all bookings: %v", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.UserName,
			&booking.UserEmail,
			&booking.TourID,
			&booking.TourTitle,
			&booking.AdultCount,
			&booking.ChildCount,
			&booking.TotalAmount,
			&booking.PaymentType,
			&booking.PaidAmount,
			&booking.Status,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.BookingDate,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %v", err)
	}

	return bookings, nil
}

// GetByIDWithUser retrieves one booking with owner name/email joined.
func (r *bookingRepository) GetByIDWithUser(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT
			b.id, b.user_id, COALESCE(u.name, '') AS user_name,
			COALESCE(u.email, '') AS user_email,
			b.tour_id, COALESCE(b.tour_title, ''), b.adult_count, b.child_count,
			b.total_amount, b.payment_type, b.paid_amount, b.status,
			b.check_in, b.check_out, b.booking_date, b.created_at
		FROM bookings b
		LEFT JOIN users u ON b.user_id = u.id
		WHERE b.id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.TourID,
		&booking.TourTitle,
		&booking.AdultCount,
		&booking.ChildCount,
		&booking.TotalAmount,
		&booking.PaymentType,
		&booking.PaidAmount,
		&booking.Status,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.BookingDate,
		&booking.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}

	return &booking, nil
}

// UpdateStatus updates the status of a booking.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}

// GetStats aggregates booking counts per status and the revenue over all
// non-cancelled bookings in a single query. COALESCE guards the aggregates
// so an empty table yields zeros, not nulls.
func (r *bookingRepository) GetStats(ctx context.Context) (*entity.BookingStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled,
			COALESCE(SUM(CASE WHEN status != 'cancelled' THEN paid_amount ELSE 0 END), 0) AS total_revenue
		FROM bookings
	`

	var stats entity.BookingStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Confirmed,
		&stats.Completed,
		&stats.Cancelled,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %v", err)
	}

	return &stats, nil
}

// TravelersByBookingIDs fetches travelers for all given bookings in one
// query, building the IN placeholder list by hand.
func (r *bookingRepository) TravelersByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64][]entity.Traveler, error) {
	result := make(map[int64][]entity.Traveler)
	if len(bookingIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, booking_id, type, COALESCE(name, ''), age, COALESCE(id_number, '')
		FROM booking_travelers
		WHERE booking_id IN (`
	args := make([]interface{}, 0, len(bookingIDs))
	for i, id := range bookingIDs {
		if i > 0 {
			query += ","
		}
		query += fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	query += ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query travelers: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entity.Traveler
		if err := rows.Scan(&t.ID, &t.BookingID, &t.Type, &t.Name, &t.Age, &t.IDNumber); err != nil {
			return nil, fmt.Errorf("failed to scan traveler: %v", err)
		}
		result[t.BookingID] = append(result[t.BookingID], t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating travelers: %v", err)
	}

	return result, nil
}

// TravelersByBookingID fetches the travelers of a single booking.
func (r *bookingRepository) TravelersByBookingID(ctx context.Context, bookingID int64) ([]entity.Traveler, error) {
	query := `
		SELECT id, booking_id, type, COALESCE(name, ''), age, COALESCE(id_number, '')
		FROM booking_travelers
		WHERE booking_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query travelers: %v", err)
	}
	defer rows.Close()

	var travelers []entity.Traveler
	for rows.Next() {
		var t entity.Traveler
		if err := rows.Scan(&t.ID, &t.BookingID, &t.Type, &t.Name, &t.Age, &t.IDNumber); err != nil {
			return nil, fmt.Errorf("failed to scan traveler: %v", err)
		}
		travelers = append(travelers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating travelers: %v", err)
	}

	return travelers, nil
}
