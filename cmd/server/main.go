package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "volunteerhub-backend/internal/api/http"
	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository/postgres"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"

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
	logger.Info("Starting VolunteerHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	volSvc := service.NewVolunteerService(store.VolunteerRepository)
	charitySvc := service.NewCharityService(store.CharityRepository)
	oppSvc := service.NewOpportunityService(
		store.OpportunityRepository,
		store.ApplicationRepository,
		store.CharityRepository,
		store.VolunteerRepository,
		store.UserRepository,
		emailSvc,
		store.NotificationRepository,
	)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.OpportunityRepository,
		store.VolunteerRepository,
		store.CharityRepository,
		store.UserRepository,
		emailSvc,
		store.NotificationRepository,
	)
	matchSvc := service.NewMatchingService(
		store.OpportunityRepository,
		store.VolunteerRepository,
		store.ApplicationRepository,
		store.CharityRepository,
		service.MatchOptions{MinScore: cfg.Matching.DefaultMinScore, Limit: cfg.Matching.DefaultLimit},
	)
	attSvc := service.NewAttendanceService(
		store.AttendanceRepository,
		store.ApplicationRepository,
		store.OpportunityRepository,
		store.VolunteerRepository,
		store.CharityRepository,
		store.NotificationRepository,
	)
	modSvc := service.NewModerationService(
		store.CharityRepository,
		store.VolunteerRepository,
		store.UserRepository,
		store.ReportRepository,
		emailSvc,
		store.NotificationRepository,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Build HTTP API
	handlers := httpapi.NewHandlers(authSvc, volSvc, charitySvc, oppSvc, appSvc, matchSvc, attSvc, modSvc, noteSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
