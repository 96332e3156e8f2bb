package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
)

// TravelerInput mirrors the traveler payload the frontend sends.
type TravelerInput struct {
	Name    string `json:"name"`
	Age     *int   `json:"age"`
	Aadhaar string `json:"aadhaar"`
}

// TravelerGroupInput carries travelers already partitioned by type.
type TravelerGroupInput struct {
	Adults   []TravelerInput `json:"adults"`
	Children []TravelerInput `json:"children"`
}

// CreateBookingRequest uses the field names the booking form submits,
// including the snake_case date keys.
type CreateBookingRequest struct {
	TourID      string              `json:"tourId"`
	TourTitle   string              `json:"tourTitle"`
	Travelers   *TravelerGroupInput `json:"travelers"`
	PaymentType string              `json:"paymentType"`
	PaidAmount  float64             `json:"paidAmount"`
	TotalAmount float64             `json:"totalAmount"`
	AdultCount  int                 `json:"adultCount"`
	ChildCount  int                 `json:"childCount"`
	CheckIn     entity.DateOnly     `json:"check_in_date"`
	CheckOut    entity.DateOnly     `json:"check_out_date"`
}

type bookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

// CreateBooking validates the request, forces the initial status to pending
// and persists the booking together with its travelers atomically.
func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *CreateBookingRequest) (*entity.Booking, error) {
	tourID := strings.TrimSpace(req.TourID)
	if tourID == "" || req.PaymentType == "" || req.PaidAmount == 0 {
		return nil, fmt.Errorf("%w: tourId, paymentType and paidAmount are required", entity.ErrValidation)
	}
	if req.Travelers == nil {
		return nil, fmt.Errorf("%w: travelers data is required", entity.ErrValidation)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", entity.ErrValidation)
	}

	booking := &entity.Booking{
		UserID:      userID,
		TourID:      tourID,
		TourTitle:   req.TourTitle,
		AdultCount:  req.AdultCount,
		ChildCount:  req.ChildCount,
		TotalAmount: req.TotalAmount,
		PaymentType: req.PaymentType,
		PaidAmount:  req.PaidAmount,
		Status:      entity.BookingStatusPending,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
	}

	travelers := make([]entity.Traveler, 0,
		len(req.Travelers.Adults)+len(req.Travelers.Children))
	for _, t := range req.Travelers.Adults {
		travelers = append(travelers, entity.Traveler{
			Type:     entity.TravelerTypeAdult,
			Name:     t.Name,
			Age:      t.Age,
			IDNumber: t.Aadhaar,
		})
	}
	for _, t := range req.Travelers.Children {
		travelers = append(travelers, entity.Traveler{
			Type:     entity.TravelerTypeChild,
			Name:     t.Name,
			Age:      t.Age,
			IDNumber: t.Aadhaar,
		})
	}

	if err := s.bookingRepo.CreateWithTravelers(ctx, booking, travelers); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetMyBookings returns the caller's bookings newest first, with travelers
// attached via a single batch query.
func (s *bookingService) GetMyBookings(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []*entity.Booking{}, nil
	}

	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	travelersByBooking, err := s.bookingRepo.TravelersByBookingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		b.Travelers = entity.GroupTravelers(travelersByBooking[b.ID])
	}

	return bookings, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, requesterID int64, requesterRole string) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByIDWithUser(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, entity.ErrForbidden
	}

	travelers, err := s.bookingRepo.TravelersByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Travelers = entity.GroupTravelers(travelers)

	return booking, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAllWithUser(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		travelers, err := s.bookingRepo.TravelersByBookingID(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		b.Travelers = entity.GroupTravelers(travelers)
	}

	if bookings == nil {
		bookings = []*entity.Booking{}
	}
	return bookings, nil
}

// UpdateBookingStatus normalizes and whitelists the status, then applies
// it. Transitions are unrestricted: any status may move to any other.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID int64, rawStatus string) (entity.BookingStatus, error) {
	status, err := entity.ParseBookingStatus(rawStatus)
	if err != nil {
		return "", err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return "", err
	}

	return status, nil
}

func (s *bookingService) GetBookingStats(ctx context.Context) (*entity.BookingStats, error) {
	return s.bookingRepo.GetStats(ctx)
}
