package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/create_booking"
	createGameHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/create_game"
	deleteGameHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/delete_game"
	getAvailableSlotsHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_booking"
	getGameHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_game"
	getRevenueHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_revenue"
	getSettingsHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_settings"
	getUserBookingsHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/list_bookings"
	listGamesHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/list_games"
	updateBookingStatusHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/update_booking_status"
	updateGameHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/update_game"
	updateSettingsHandler "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers/update_settings"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/config"
	bookingRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/booking"
	gameRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/game"
	settingsRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/settings"
	userServiceClient "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/integrations/userservice"
	bookingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/bookings"
	gamesService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/games"
	settingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/settings"
	createBookingUC "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/get_available_slots"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/logger"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/metrics"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BoundaryBox-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Metrics collectors are always registered; the endpoint and HTTP
	// middleware are only wired when enabled.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("UserService client initialized (url=%s, timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Repositories and transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	gameRepository := gameRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	settingsSvc := settingsService.NewService(settingsRepository, log)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		&bookingsService.RealTimeProvider{},
		log,
	)
	gamesSvc := gamesService.NewService(gameRepository, bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		gameRepository,
		settingsRepository,
		userClient,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(
		bookingRepository,
		gameRepository,
		settingsRepository,
		txMgr,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listGames := listGamesHandler.NewHandler(gamesSvc, log)
	getGame := getGameHandler.NewHandler(gamesSvc, log)
	createGame := createGameHandler.NewHandler(gamesSvc, log)
	updateGame := updateGameHandler.NewHandler(gamesSvc, log)
	deleteGame := deleteGameHandler.NewHandler(gamesSvc, log)
	getRevenue := getRevenueHandler.NewHandler(gamesSvc, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Game catalog
	api.HandleFunc("/games", listGames.Handle).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameId}", getGame.Handle).Methods(http.MethodGet)

	// Available slots for a game on a date
	api.HandleFunc("/games/{gameId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Operating settings
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Administration ---
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/games", createGame.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/games/{gameId}", updateGame.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/games/{gameId}", deleteGame.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/analytics/revenue", getRevenue.Handle).Methods(http.MethodGet)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
