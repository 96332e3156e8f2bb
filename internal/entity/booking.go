package entity

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus normalizes raw status input (trims whitespace, lowers
// case) and checks it against the allowed set.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidBookingStatus
	}
}

type TravelerType string

const (
	TravelerTypeAdult TravelerType = "adult"
	TravelerTypeChild TravelerType = "child"
)

type Booking struct {
	ID          int64         `json:"id" db:"id"`
	UserID      int64         `json:"user_id,omitempty" db:"user_id"`
	TourID      string        `json:"tour_id" db:"tour_id"`
	TourTitle   string        `json:"tour_title" db:"tour_title"`
	AdultCount  int           `json:"adult_count" db:"adult_count"`
	ChildCount  int           `json:"child_count" db:"child_count"`
	TotalAmount float64       `json:"total_amount" db:"total_amount"`
	PaymentType string        `json:"payment_type" db:"payment_type"`
	PaidAmount  float64       `json:"paid_amount" db:"paid_amount"`
	Status      BookingStatus `json:"status" db:"status"`
	CheckIn     DateOnly      `json:"check_in" db:"check_in"`
	CheckOut    DateOnly      `json:"check_out" db:"check_out"`
	BookingDate time.Time     `json:"booking_date" db:"booking_date"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"-" db:"updated_at"`

	// Joined owner columns, present only on admin and by-id views.
	UserName  string `json:"user_name,omitempty" db:"user_name"`
	UserEmail string `json:"user_email,omitempty" db:"user_email"`

	Travelers *TravelerGroup `json:"travelers,omitempty"`
}

type Traveler struct {
	ID        int64        `json:"id,omitempty" db:"id"`
	BookingID int64        `json:"-" db:"booking_id"`
	Type      TravelerType `json:"type" db:"type"`
	Name      string       `json:"name" db:"name"`
	Age       *int         `json:"age" db:"age"`
	IDNumber  string       `json:"aadhaar" db:"id_number"`
}

// TravelerGroup partitions a booking's travelers by type for responses.
type TravelerGroup struct {
	Adults   []Traveler `json:"adults"`
	Children []Traveler `json:"children"`
}

// GroupTravelers splits rows into adults and children. Both slices are
// non-nil so empty partitions serialize as [] rather than null.
func GroupTravelers(rows []Traveler) *TravelerGroup {
	group := &TravelerGroup{
		Adults:   make([]Traveler, 0, len(rows)),
		Children: make([]Traveler, 0),
	}
	for _, t := range rows {
		if t.Type == TravelerTypeChild {
			group.Children = append(group.Children, t)
		} else {
			group.Adults = append(group.Adults, t)
		}
	}
	return group
}

type BookingStats struct {
	Total        int64   `json:"total"`
	Pending      int64   `json:"pending"`
	Confirmed    int64   `json:"confirmed"`
	Completed    int64   `json:"completed"`
	Cancelled    int64   `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}
