package appServer

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ainthinai/booking-api/config"
	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/service"
	"github.com/ainthinai/booking-api/internal/transport"
	"github.com/ainthinai/booking-api/pkg/auth"
	"github.com/ainthinai/booking-api/pkg/objectstore"
	"github.com/ainthinai/booking-api/pkg/postgres"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logger := logrus.StandardLogger()

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Object storage
	store := objectstore.NewSupabaseStore(&cfg.Storage)

	// Token managers
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	googleVerifier, err := auth.NewGoogleVerifier(ctx, cfg.Google.ClientID)
	if err != nil {
		logrus.Fatalf("Failed to initialize Google verifier: %v", err)
	}
	defer googleVerifier.Close()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	tourRepo := repository.NewTourRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	// Initialize services
	bookingService := service.NewBookingService(bookingRepo)
	tourService := service.NewTourService(tourRepo, featureRepo, itineraryRepo, store, cfg.Upload, logger)
	categoryService := service.NewCategoryService(categoryRepo, store, logger)
	featureService := service.NewFeatureService(featureRepo, store, logger)
	itineraryService := service.NewItineraryService(itineraryRepo, store)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, adminRepo, tokens, googleVerifier)

	// Initialize handlers
	handlers := &transport.Handlers{
		Auth:      transport.NewAuthHandler(authService, userService),
		Booking:   transport.NewBookingHandler(bookingService),
		Tour:      transport.NewTourHandler(tourService, cfg.Upload.MaxImageBytes),
		Category:  transport.NewCategoryHandler(categoryService, cfg.Upload.MaxImageBytes),
		Feature:   transport.NewFeatureHandler(featureService),
		Itinerary: transport.NewItineraryHandler(itineraryService, cfg.Upload.MaxImageBytes),
		User:      transport.NewUserHandler(userService),
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handlers, tokens)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
