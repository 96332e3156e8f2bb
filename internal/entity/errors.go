package entity

import "errors"

var (
	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrAdminNotFound = errors.New("admin not found")

	// Catalog errors
	ErrTourNotFound     = errors.New("tour not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrFeatureNotFound  = errors.New("feature not found")

	// General errors
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden operation")
)
