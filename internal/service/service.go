package service

import (
	"context"

	"github.com/ainthinai/booking-api/internal/entity"
)

// FileUpload is an in-memory uploaded file, already read off the multipart
// stream by the transport layer.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, req *CreateBookingRequest) (*entity.Booking, error)
	GetMyBookings(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// GetBooking enforces ownership: only the booking owner or an admin
	// may read it.
	GetBooking(ctx context.Context, bookingID, requesterID int64, requesterRole string) (*entity.Booking, error)

	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, rawStatus string) (entity.BookingStatus, error)
	GetBookingStats(ctx context.Context) (*entity.BookingStats, error)
}

type TourService interface {
	CreateTour(ctx context.Context, req *SaveTourRequest) (*entity.Tour, error)
	UpdateTour(ctx context.Context, id string, req *SaveTourRequest) error
	DeleteTour(ctx context.Context, id string) error
	GetTour(ctx context.Context, id string) (*entity.TourDetail, error)
	GetAllTours(ctx context.Context) ([]*entity.Tour, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, name string, image *FileUpload) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id, name string, image *FileUpload) error
	DeleteCategory(ctx context.Context, id string) error
	GetAllCategories(ctx context.Context) ([]*entity.Category, error)
}

type FeatureService interface {
	CreateFeature(ctx context.Context, req *CreateFeatureRequest) (*entity.Feature, error)
	UpdateFeature(ctx context.Context, id string, req *UpdateFeatureRequest) error
	DeleteFeature(ctx context.Context, id string) error
	GetFeature(ctx context.Context, id string) (*entity.Feature, error)
	GetFeaturesByType(ctx context.Context, featureType string) ([]*entity.Feature, error)
}

type ItineraryService interface {
	SaveItinerary(ctx context.Context, req *SaveItineraryRequest) ([]entity.ItineraryDay, error)
	GetItinerary(ctx context.Context, tourID string) ([]entity.ItineraryDay, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) error
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	AddUser(ctx context.Context, name, email string) (*entity.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type AuthService interface {
	// GoogleLogin verifies a Google ID token, upserts the user by email
	// and issues an application token.
	GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error)

	RegisterAdmin(ctx context.Context, req *AdminCredentialsRequest) (*entity.Admin, error)
	LoginAdmin(ctx context.Context, req *AdminCredentialsRequest) (*LoginResult, error)
	GetAdminProfile(ctx context.Context, adminID int64) (*entity.Admin, error)
}

// LoginResult is what every login flow hands back to transport.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
