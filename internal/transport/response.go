package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ainthinai/booking-api/internal/entity"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard failure envelope. Internal error details
// never travel in it; they are logged server-side instead.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// respondServiceError maps service-layer sentinels onto HTTP codes. Unknown
// errors become an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrInvalidBookingStatus):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, entity.ErrForbidden):
		respondError(c, http.StatusForbidden, "access denied")
	case errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrAdminNotFound),
		errors.Is(err, entity.ErrTourNotFound),
		errors.Is(err, entity.ErrCategoryNotFound),
		errors.Is(err, entity.ErrFeatureNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		respondError(c, http.StatusInternalServerError, "server error")
	}
}
