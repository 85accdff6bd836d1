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

	bookingsSummaryHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/bookings_summary"
	createEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_event"
	deleteEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_event"
	getAvailableTimesHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_times"
	listEventsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/list_events"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	eventsService "github.com/m04kA/SMC-CalendarService/internal/service/events"
	createEventUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
	getAvailableTimesUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Сетка слотов рабочего дня
	schedule := domain.Schedule{
		OpenTime:            types.TimeString(cfg.Schedule.OpenTime),
		CloseTime:           types.TimeString(cfg.Schedule.CloseTime),
		SlotDurationMinutes: cfg.Schedule.SlotDurationMinutes,
		IncludeClosingSlot:  cfg.Schedule.IncludeClosingSlot,
	}
	log.Info("Slot grid configured: %s to %s, step %d min, %d slots",
		schedule.OpenTime, schedule.CloseTime, schedule.SlotDurationMinutes,
		len(domain.GenerateSlotGrid(schedule)))

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		eventRepository *eventRepo.Repository
		txMgr           createEventUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventsSvc := eventsService.NewService(eventRepository, log)

	// Инициализируем use cases
	createEventUseCase := createEventUC.NewUseCase(
		eventRepository,
		txMgr,
		schedule,
		log,
	)

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		eventRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	listEvents := listEventsHandler.NewHandler(eventsSvc, log)
	bookingsSummary := bookingsSummaryHandler.NewHandler(eventsSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Список событий на дату
	r.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	r.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Создание события
	r.HandleFunc("/add-event", createEvent.Handle).Methods(http.MethodPost)

	// Количество событий по датам диапазона
	r.HandleFunc("/bookings-summary", bookingsSummary.Handle).Methods(http.MethodGet)

	// Удаление события
	r.HandleFunc("/delete-event", deleteEvent.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
