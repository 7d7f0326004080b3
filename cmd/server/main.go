package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"edufleet-backend/internal/api/rest"
	"edufleet-backend/internal/config"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/repository/postgres"
	"edufleet-backend/internal/security"
	"edufleet-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EduFleet Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	studentSvc := service.NewStudentService(store.StudentRepository)
	examSvc := service.NewExamService(
		store.ExamRepository,
		store.SeatPlanRepository,
		store.StudentRepository,
		store.UserRepository,
		emailSvc,
		store.NotificationRepository,
	)
	carSvc := service.NewCarService(store.CarRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CarRepository,
		store.WalletRepository,
		store.UserRepository,
		emailSvc,
		store.NotificationRepository,
	)
	walletSvc := service.NewWalletService(store.WalletRepository, store.UserRepository, emailSvc)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP router
	router := rest.NewRouter(rest.Services{
		Auth:         authSvc,
		Student:      studentSvc,
		Exam:         examSvc,
		Car:          carSvc,
		Booking:      bookingSvc,
		Wallet:       walletSvc,
		Notification: noteSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
