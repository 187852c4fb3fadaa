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

	completeRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/complete_rental"
	createCustomerHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_customer"
	createRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_rental"
	createVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_vehicle"
	getRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_rental"
	listCustomersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_customers"
	listRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_rentals"
	listVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_vehicles"
	searchVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/search_vehicles"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	customerRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customer"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	customersService "github.com/m04kA/SMC-RentalService/internal/service/customers"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
	completeRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
	createRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		customerRepository *customerRepo.Repository
		vehicleRepository  *vehicleRepo.Repository
		rentalRepository   *rentalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		customerRepository = customerRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		customerRepository = customerRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		rentalRepository = rentalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	customersSvc := customersService.NewService(customerRepository, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	rentalsSvc := rentalsService.NewService(rentalRepository, log)

	// Инициализируем use cases
	// Если метрики выключены, передаем nil - use case подставит заглушку.
	// Типизированный nil (*metrics.Metrics)(nil) в интерфейсе не равен nil,
	// поэтому присваиваем коллектор только когда он есть
	var createMetricsRecorder createRentalUC.MetricsRecorder
	var completeMetricsRecorder completeRentalUC.MetricsRecorder
	if metricsCollector != nil {
		createMetricsRecorder = metricsCollector
		completeMetricsRecorder = metricsCollector
	}

	createRentalUseCase := createRentalUC.NewUseCase(
		customerRepository,
		vehicleRepository,
		rentalRepository,
		txMgr,
		createMetricsRecorder,
		log,
	)

	completeRentalUseCase := completeRentalUC.NewUseCase(
		rentalRepository,
		vehicleRepository,
		txMgr,
		completeMetricsRecorder,
		log,
	)

	// Инициализируем handlers
	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	completeRental := completeRentalHandler.NewHandler(completeRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalsSvc, log)
	listRentals := listRentalsHandler.NewHandler(rentalsSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehiclesSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehiclesSvc, log)
	searchVehicles := searchVehiclesHandler.NewHandler(vehiclesSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customersSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Логируем все входящие запросы
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	api.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)

	// --- Автопарк ---
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/search", searchVehicles.Handle).Methods(http.MethodGet)

	// --- Аренды ---
	api.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals", listRentals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{rentalId}/complete", completeRental.Handle).Methods(http.MethodPatch)

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
