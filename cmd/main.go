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

	cancelBookingHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/create_booking"
	getAvailableShiftsHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/get_available_shifts"
	getBookingHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/get_booking"
	getChefBookingsHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/get_chef_bookings"
	getChefScheduleHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/get_chef_schedule"
	getClientBookingsHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/get_client_bookings"
	updateBookingHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/update_booking"
	updateChefScheduleHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/update_chef_schedule"
	updateStatusHandler "github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers/update_status"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/middleware"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/config"
	bookingRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	profileServiceClient "github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
	bookingsService "github.com/chefnasuacasa/CNSC-BookingService/internal/service/bookings"
	scheduleService "github.com/chefnasuacasa/CNSC-BookingService/internal/service/schedule"
	createBookingUC "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/create_booking"
	getAvailableShiftsUC "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/get_available_shifts"
	updateBookingUC "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/update_booking"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/dbmetrics"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/logger"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/metrics"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/simpletxmanager"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CNSC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		profileClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		profileClient,
		txMgr,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	getAvailableShiftsUseCase := getAvailableShiftsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		profileClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getAvailableShifts := getAvailableShiftsHandler.NewHandler(getAvailableShiftsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getChefBookings := getChefBookingsHandler.NewHandler(bookingSvc, log)
	getChefSchedule := getChefScheduleHandler.NewHandler(scheduleSvc, log)
	updateChefSchedule := updateChefScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность смен шефа на дату
	api.HandleFunc("/chefs/{chefId}/available-shifts",
		getAvailableShifts.Handle).Methods(http.MethodGet)

	// Недельное расписание шефа
	api.HandleFunc("/chefs/{chefId}/schedule",
		getChefSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования на другую дату/время
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса (подтверждение/завершение шефом)
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет шефа ---
	// Список бронирований шефа
	protected.HandleFunc("/chefs/{chefId}/bookings", getChefBookings.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания
	protected.HandleFunc("/chefs/{chefId}/schedule", updateChefSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
