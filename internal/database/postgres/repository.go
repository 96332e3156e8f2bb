package repository

import (
	"context"

	"github.com/ainthinai/booking-api/internal/entity"
)

type BookingRepository interface {
	// CreateWithTravelers inserts the booking and all traveler rows in one
	// transaction; either everything is committed or nothing is.
	CreateWithTravelers(ctx context.Context, booking *entity.Booking, travelers []entity.Traveler) error

	GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error)
	GetAllWithUser(ctx context.Context) ([]*entity.Booking, error)
	GetByIDWithUser(ctx context.Context, id int64) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error
	GetStats(ctx context.Context) (*entity.BookingStats, error)

	// TravelersByBookingIDs batch-fetches travelers for a set of bookings
	// in a single query, keyed by booking id.
	TravelersByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64][]entity.Traveler, error)
	TravelersByBookingID(ctx context.Context, bookingID int64) ([]entity.Traveler, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email, phone string) error
	GetAll(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetByID(ctx context.Context, id int64) (*entity.Admin, error)
}

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Tour, error)
	GetAll(ctx context.Context) ([]*entity.Tour, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetAll(ctx context.Context) ([]*entity.Category, error)
}

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Feature, error)
	GetByType(ctx context.Context, featureType string) ([]*entity.Feature, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Feature, error)
}

type ItineraryRepository interface {
	// Replace swaps a tour's whole day/activity/image tree in one
	// transaction and mirrors the given snapshot into tours.itinerary.
	Replace(ctx context.Context, tourID string, days []entity.ItineraryDay, snapshot []byte) error
	GetByTourID(ctx context.Context, tourID string) ([]entity.ItineraryDay, error)
}
