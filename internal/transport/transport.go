package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/internal/transport/middleware"
	"github.com/ainthinai/booking-api/pkg/auth"
)

// Handlers bundles everything InitRoutes needs to build the router.
type Handlers struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Tour      *TourHandler
	Category  *CategoryHandler
	Feature   *FeatureHandler
	Itinerary *ItineraryHandler
	User      *UserHandler
}

func InitRoutes(h *Handlers, tokens *auth.TokenManager) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30 * time.Second))

	authRequired := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Backend Running Successfully",
		})
	})

	// Google OAuth login
	router.POST("/auth/google", h.Auth.GoogleLogin)

	api := router.Group("/api")
	{
		// Admin auth and dashboards
		admin := api.Group("/admin")
		{
			admin.POST("/register", h.Auth.RegisterAdmin)
			admin.POST("/create", h.Auth.RegisterAdmin)
			admin.POST("/login", h.Auth.LoginAdmin)

			secured := admin.Group("", authRequired, adminOnly)
			{
				secured.GET("/dashboard", h.Auth.GetDashboard)
				secured.GET("/users", h.User.GetUsers)
				secured.GET("/profile", h.Auth.GetAdminProfile)
			}
		}

		// Bookings
		bookings := api.Group("/bookings", authRequired)
		{
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("/my-bookings", h.Booking.GetMyBookings)
			bookings.GET("/:id", h.Booking.GetBooking)

			adminBookings := bookings.Group("/admin", adminOnly)
			{
				adminBookings.GET("/all", h.Booking.GetAllBookings)
				adminBookings.GET("/stats", h.Booking.GetBookingStats)
				adminBookings.PUT("/:id/status", h.Booking.UpdateBookingStatus)
			}
		}

		// Tours
		tours := api.Group("/tours")
		{
			tours.GET("", h.Tour.GetAllTours)
			tours.GET("/:id", h.Tour.GetTour)

			secured := tours.Group("", authRequired, adminOnly)
			{
				secured.POST("/create", h.Tour.CreateTour)
				secured.PUT("/:id", h.Tour.UpdateTour)
				secured.DELETE("/:id", h.Tour.DeleteTour)
			}
		}

		// Categories
		categories := api.Group("/categories")
		{
			categories.GET("", h.Category.GetCategories)

			secured := categories.Group("", authRequired, adminOnly)
			{
				secured.POST("", h.Category.CreateCategory)
				secured.PUT("/:id", h.Category.UpdateCategory)
				secured.DELETE("/:id", h.Category.DeleteCategory)
			}
		}

		// Features
		features := api.Group("/features")
		{
			features.GET("/:type", h.Feature.GetFeaturesByType)
			features.GET("/id/:id", h.Feature.GetFeature)

			secured := features.Group("", authRequired, adminOnly)
			{
				secured.POST("/create", h.Feature.CreateFeature)
				secured.PUT("/:id", h.Feature.UpdateFeature)
				secured.DELETE("/:id", h.Feature.DeleteFeature)
			}
		}

		// Itinerary
		itinerary := api.Group("/itinerary")
		{
			itinerary.GET("/:tourId", h.Itinerary.GetItinerary)
			itinerary.POST("/save", authRequired, adminOnly, h.Itinerary.SaveItinerary)
		}

		// Users
		users := api.Group("/users")
		{
			users.GET("/profile", authRequired, h.User.GetProfile)
			users.PUT("/profile", authRequired, h.User.UpdateProfile)

			users.GET("", authRequired, adminOnly, h.User.GetUsers)
			users.POST("", authRequired, adminOnly, h.User.AddUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router
}
