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
	_ "time/tzdata"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	createBookingHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/create_booking"
	findAvailablePlacesHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/find_available_places"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_booking"
	getPlaceHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_place"
	getPlaceBookingsHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_place_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_user_bookings"
	getUserStatsHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/get_user_stats"
	listPlacesHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/list_places"
	updateBookingStatusHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/update_booking_status"
	updatePlaceHandler "github.com/m04kA/SMC-PlaceBooking/internal/api/handlers/update_place"
	"github.com/m04kA/SMC-PlaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PlaceBooking/internal/config"
	"github.com/m04kA/SMC-PlaceBooking/internal/infra/migrator"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
	"github.com/m04kA/SMC-PlaceBooking/internal/integrations/auditlog"
	bookingsService "github.com/m04kA/SMC-PlaceBooking/internal/service/bookings"
	placesService "github.com/m04kA/SMC-PlaceBooking/internal/service/places"
	createBookingUC "github.com/m04kA/SMC-PlaceBooking/internal/usecase/create_booking"
	expireBookingsUC "github.com/m04kA/SMC-PlaceBooking/internal/usecase/expire_bookings"
	findAvailablePlacesUC "github.com/m04kA/SMC-PlaceBooking/internal/usecase/find_available_places"
	getAvailableSlotsUC "github.com/m04kA/SMC-PlaceBooking/internal/usecase/get_available_slots"
	updateBookingStatusUC "github.com/m04kA/SMC-PlaceBooking/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-PlaceBooking/internal/worker/sweeper"
	"github.com/m04kA/SMC-PlaceBooking/migrations"
	"github.com/m04kA/SMC-PlaceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PlaceBooking/pkg/keylock"
	"github.com/m04kA/SMC-PlaceBooking/pkg/logger"
	"github.com/m04kA/SMC-PlaceBooking/pkg/metrics"
	"github.com/m04kA/SMC-PlaceBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("PLACEBOOKING_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-PlaceBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (nil - выключены, все вызовы становятся no-op)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории и инфраструктура
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	placeRepository := placeRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	locks := keylock.New()

	// Журнал аудита
	var (
		publisher       auditlog.Publisher
		rabbitPublisher *auditlog.RabbitPublisher
	)
	if cfg.Audit.Enabled {
		rabbitPublisher, err = auditlog.NewRabbitPublisher(cfg.Audit.URL, cfg.Audit.Exchange)
		if err != nil {
			log.Fatal("Failed to connect audit publisher: %v", err)
		}
		publisher = rabbitPublisher
		log.Info("Audit log publishing to exchange %s", cfg.Audit.Exchange)
	}
	auditSink := auditlog.NewSink(publisher, time.Duration(cfg.Audit.PublishTimeout)*time.Second, log)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, placeRepository, location, log)
	placeSvc := placesService.NewService(placeRepository, txMgr, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		placeRepository,
		txMgr,
		locks,
		auditSink,
		metricsCollector,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		placeRepository,
		txMgr,
		locks,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, placeRepository, log)
	findAvailablePlacesUseCase := findAvailablePlacesUC.NewUseCase(bookingRepository, placeRepository, log)
	expireBookingsUseCase := expireBookingsUC.NewUseCase(bookingRepository, location, metricsCollector, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getUserStats := getUserStatsHandler.NewHandler(bookingSvc, log)
	getPlaceBookings := getPlaceBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	findAvailablePlaces := findAvailablePlacesHandler.NewHandler(findAvailablePlacesUseCase, log)
	listPlaces := listPlacesHandler.NewHandler(placeSvc, log)
	getPlace := getPlaceHandler.NewHandler(placeSvc, log)
	updatePlace := updatePlaceHandler.NewHandler(placeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log), middleware.MetricsMiddleware(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/places", listPlaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/available", findAvailablePlaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/{placeId:[0-9]+}", getPlace.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/{placeId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/{action:cancel|confirm|complete}",
		updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Текущий пользователь ---
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/stats", getUserStats.Handle).Methods(http.MethodGet)

	// --- Управление объектом (для менеджеров) ---
	protected.HandleFunc("/places/{placeId:[0-9]+}/bookings", getPlaceBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/places/{placeId:[0-9]+}", updatePlace.Handle).Methods(http.MethodPatch)

	handler := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(zap.NewStdLog(log.Zap())),
	)(r)
	if len(cfg.Server.CORSOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.Server.CORSOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.HeaderRequestID}),
		)(handler)
	}

	// Автозавершение прошедших бронирований
	var sw *sweeper.Sweeper
	if cfg.Sweeper.Enabled {
		sw = sweeper.New(
			cfg.Sweeper.Schedule,
			time.Duration(cfg.Sweeper.Timeout)*time.Second,
			location,
			expireBookingsUseCase,
			metricsCollector,
			log,
		)
		if err := sw.Start(); err != nil {
			log.Fatal("Failed to start sweeper: %v", err)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if sw != nil {
		sw.Stop(shutdownCtx)
	}

	auditSink.Wait()
	if rabbitPublisher != nil {
		if err := rabbitPublisher.Close(); err != nil {
			log.Error("Failed to close audit publisher: %v", err)
		}
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
