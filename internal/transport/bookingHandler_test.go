package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/internal/service"
	"github.com/ainthinai/booking-api/internal/transport/middleware"
	"github.com/ainthinai/booking-api/pkg/auth"
)

type stubBookingService struct {
	createFn func(ctx context.Context, userID int64, req *service.CreateBookingRequest) (*entity.Booking, error)
	myFn     func(ctx context.Context, userID int64) ([]*entity.Booking, error)
	getFn    func(ctx context.Context, bookingID, requesterID int64, role string) (*entity.Booking, error)
	allFn    func(ctx context.Context) ([]*entity.Booking, error)
	statusFn func(ctx context.Context, bookingID int64, raw string) (entity.BookingStatus, error)
	statsFn  func(ctx context.Context) (*entity.BookingStats, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID int64, req *service.CreateBookingRequest) (*entity.Booking, error) {
	return s.createFn(ctx, userID, req)
}

func (s *stubBookingService) GetMyBookings(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	return s.myFn(ctx, userID)
}

func (s *stubBookingService) GetBooking(ctx context.Context, bookingID, requesterID int64, role string) (*entity.Booking, error) {
	return s.getFn(ctx, bookingID, requesterID, role)
}

func (s *stubBookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	return s.allFn(ctx)
}

func (s *stubBookingService) UpdateBookingStatus(ctx context.Context, bookingID int64, raw string) (entity.BookingStatus, error) {
	return s.statusFn(ctx, bookingID, raw)
}

func (s *stubBookingService) GetBookingStats(ctx context.Context) (*entity.BookingStats, error) {
	return s.statsFn(ctx)
}

func newBookingTestRouter(svc service.BookingService) (*gin.Engine, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	handler := NewBookingHandler(svc)

	router := gin.New()
	bookings := router.Group("/api/bookings", middleware.Authenticate(tokens))
	{
		bookings.POST("", handler.CreateBooking)
		bookings.GET("/my-bookings", handler.GetMyBookings)
		bookings.GET("/:id", handler.GetBooking)

		admin := bookings.Group("/admin", middleware.RequireRole(entity.RoleAdmin))
		{
			admin.GET("/all", handler.GetAllBookings)
			admin.GET("/stats", handler.GetBookingStats)
			admin.PUT("/:id/status", handler.UpdateBookingStatus)
		}
	}

	return router, tokens
}

func bearer(t *testing.T, tokens *auth.TokenManager, userID int64, role string) string {
	t.Helper()
	token, err := tokens.Sign(userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestCreateBookingEndpoint(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(_ context.Context, userID int64, req *service.CreateBookingRequest) (*entity.Booking, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "tour-1", req.TourID)
			return &entity.Booking{ID: 55, UserID: userID, Status: entity.BookingStatusPending}, nil
		},
	}
	router, tokens := newBookingTestRouter(svc)

	body := `{
		"tourId": "tour-1",
		"paymentType": "full",
		"paidAmount": 4500,
		"travelers": {"adults": [{"name": "Anu", "age": 30}], "children": []},
		"check_in_date": "2026-09-10",
		"check_out_date": "2026-09-12"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 7, entity.RoleUser))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(55), resp["bookingId"])
}

func TestCreateBookingRequiresToken(t *testing.T) {
	router, _ := newBookingTestRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingRejectsGarbageToken(t *testing.T) {
	router, _ := newBookingTestRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMyBookingsEmptyList(t *testing.T) {
	svc := &stubBookingService{
		myFn: func(_ context.Context, _ int64) ([]*entity.Booking, error) {
			return []*entity.Booking{}, nil
		},
	}
	router, tokens := newBookingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my-bookings", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 3, entity.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "bookings": []}`, w.Body.String())
}

func TestGetBookingNotFoundEndpoint(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(_ context.Context, _, _ int64, _ string) (*entity.Booking, error) {
			return nil, entity.ErrBookingNotFound
		},
	}
	router, tokens := newBookingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingForbiddenForStranger(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(_ context.Context, _, _ int64, _ string) (*entity.Booking, error) {
			return nil, entity.ErrForbidden
		},
	}
	router, tokens := newBookingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/5", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 2, entity.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetBookingInvalidID(t *testing.T) {
	router, tokens := newBookingTestRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	router, tokens := newBookingTestRouter(&stubBookingService{})

	paths := []string{"/api/bookings/admin/all", "/api/bookings/admin/stats"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestAdminStatsEndpoint(t *testing.T) {
	svc := &stubBookingService{
		statsFn: func(_ context.Context) (*entity.BookingStats, error) {
			return &entity.BookingStats{Total: 4, Pending: 1, Confirmed: 2, Cancelled: 1, TotalRevenue: 9000}, nil
		},
	}
	router, tokens := newBookingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/admin/stats", nil)
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(4), data["total"])
	assert.Equal(t, float64(9000), data["totalRevenue"])
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	svc := &stubBookingService{
		statusFn: func(_ context.Context, bookingID int64, raw string) (entity.BookingStatus, error) {
			assert.Equal(t, int64(12), bookingID)
			return entity.ParseBookingStatus(raw)
		},
	}
	router, tokens := newBookingTestRouter(svc)

	body := `{"status": " Confirmed "}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/admin/12/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "confirmed", data["status"])
}

func TestUpdateBookingStatusRejectsUnknownValue(t *testing.T) {
	svc := &stubBookingService{
		statusFn: func(_ context.Context, _ int64, raw string) (entity.BookingStatus, error) {
			return entity.ParseBookingStatus(raw)
		},
	}
	router, tokens := newBookingTestRouter(svc)

	body := `{"status": "shipped"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/admin/12/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatusMissingBooking(t *testing.T) {
	svc := &stubBookingService{
		statusFn: func(_ context.Context, _ int64, _ string) (entity.BookingStatus, error) {
			return "", entity.ErrBookingNotFound
		},
	}
	router, tokens := newBookingTestRouter(svc)

	body := `{"status": "confirmed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/admin/404/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, tokens, 1, entity.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
