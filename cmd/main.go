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

	cancelWizardHandler "github.com/estadia/BookingWizardService/internal/api/handlers/cancel_wizard"
	getAvailableSlotsHandler "github.com/estadia/BookingWizardService/internal/api/handlers/get_available_slots"
	getWizardHandler "github.com/estadia/BookingWizardService/internal/api/handlers/get_wizard"
	listCourtsHandler "github.com/estadia/BookingWizardService/internal/api/handlers/list_courts"
	listSubmissionsHandler "github.com/estadia/BookingWizardService/internal/api/handlers/list_submissions"
	resolveClientHandler "github.com/estadia/BookingWizardService/internal/api/handlers/resolve_client"
	selectServicesHandler "github.com/estadia/BookingWizardService/internal/api/handlers/select_services"
	selectSlotHandler "github.com/estadia/BookingWizardService/internal/api/handlers/select_slot"
	setClientHandler "github.com/estadia/BookingWizardService/internal/api/handlers/set_client"
	startWizardHandler "github.com/estadia/BookingWizardService/internal/api/handlers/start_wizard"
	submitWizardHandler "github.com/estadia/BookingWizardService/internal/api/handlers/submit_wizard"
	wizardBackHandler "github.com/estadia/BookingWizardService/internal/api/handlers/wizard_back"
	"github.com/estadia/BookingWizardService/internal/api/middleware"
	"github.com/estadia/BookingWizardService/internal/config"
	submissionLogRepo "github.com/estadia/BookingWizardService/internal/infra/storage/submissionlog"
	clientServiceClient "github.com/estadia/BookingWizardService/internal/integrations/clientservice"
	courtServiceClient "github.com/estadia/BookingWizardService/internal/integrations/courtservice"
	mailServiceClient "github.com/estadia/BookingWizardService/internal/integrations/mailservice"
	paymentServiceClient "github.com/estadia/BookingWizardService/internal/integrations/paymentservice"
	reservationServiceClient "github.com/estadia/BookingWizardService/internal/integrations/reservationservice"
	getAvailableSlotsUC "github.com/estadia/BookingWizardService/internal/usecase/get_available_slots"
	resolveClientUC "github.com/estadia/BookingWizardService/internal/usecase/resolve_client"
	submitBookingUC "github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
	"github.com/estadia/BookingWizardService/internal/wizard"
	"github.com/estadia/BookingWizardService/pkg/dbmetrics"
	"github.com/estadia/BookingWizardService/pkg/logger"
	"github.com/estadia/BookingWizardService/pkg/metrics"
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

	log.Info("Starting BookingWizardService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал отправок)
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

	// Инициализируем интеграционных клиентов
	courtClient := courtServiceClient.NewClient(
		cfg.CourtService.URL,
		time.Duration(cfg.CourtService.Timeout)*time.Second,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	reservationClient := reservationServiceClient.NewClient(
		cfg.ReservationService.URL,
		time.Duration(cfg.ReservationService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CourtService=%s, ClientService=%s, ReservationService=%s, PaymentService=%s, MailService=%s)",
		cfg.CourtService.URL, cfg.ClientService.URL, cfg.ReservationService.URL, cfg.PaymentService.URL, cfg.MailService.URL)

	// Инициализируем репозиторий журнала отправок (с метриками или без)
	var submissionLogRepository *submissionLogRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		submissionLogRepository = submissionLogRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		submissionLogRepository = submissionLogRepo.NewRepository(db)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(courtClient, log)
	resolveClientUseCase := resolveClientUC.NewUseCase(clientClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		clientClient,
		reservationClient,
		paymentClient,
		mailClient,
		submissionLogRepository,
		time.Duration(cfg.Gateway.ConfirmationDelaySeconds)*time.Second,
		log,
	)

	// Инициализируем мастер бронирования
	sessionStore := wizard.NewStore(time.Duration(cfg.Wizard.SessionTTLMinutes)*time.Minute, log)
	go sessionStore.RunSweeper(stopCh)

	wizardController := wizard.NewController(
		sessionStore,
		getAvailableSlotsUseCase,
		resolveClientUseCase,
		submitBookingUseCase,
		log,
	)

	// Инициализируем handlers
	listCourts := listCourtsHandler.NewHandler(courtClient, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startWizard := startWizardHandler.NewHandler(wizardController, log)
	getWizard := getWizardHandler.NewHandler(wizardController, log)
	selectSlot := selectSlotHandler.NewHandler(wizardController, log)
	selectServices := selectServicesHandler.NewHandler(wizardController, log)
	resolveClient := resolveClientHandler.NewHandler(wizardController, log)
	setClient := setClientHandler.NewHandler(wizardController, log)
	wizardBack := wizardBackHandler.NewHandler(wizardController, log)
	submitWizard := submitWizardHandler.NewHandler(wizardController, log)
	cancelWizard := cancelWizardHandler.NewHandler(wizardController, log)
	listSubmissions := listSubmissionsHandler.NewHandler(submissionLogRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог площадок
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)

	// Доступные слоты площадки
	api.HandleFunc("/courts/{courtId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	// Создание сессии мастера
	protected.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	protected.HandleFunc("/wizard/{sessionId}", getWizard.Handle).Methods(http.MethodGet)

	// Шаг 1: выбор площадки и слота
	protected.HandleFunc("/wizard/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)

	// Шаг 2: выбор дополнительных услуг
	protected.HandleFunc("/wizard/{sessionId}/services", selectServices.Handle).Methods(http.MethodPost)

	// Шаг 3: поиск клиента по DNI и фиксация клиента
	protected.HandleFunc("/wizard/{sessionId}/client/resolve", resolveClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/client", setClient.Handle).Methods(http.MethodPost)

	// Обратный переход
	protected.HandleFunc("/wizard/{sessionId}/back", wizardBack.Handle).Methods(http.MethodPost)

	// Шаг 4: подтверждение и отправка
	protected.HandleFunc("/wizard/{sessionId}/submit", submitWizard.Handle).Methods(http.MethodPost)

	// Отмена сессии
	protected.HandleFunc("/wizard/{sessionId}", cancelWizard.Handle).Methods(http.MethodDelete)

	// --- Журнал отправок ---
	// Последние отправки для ручной сверки после частичных сбоев
	protected.HandleFunc("/submissions", listSubmissions.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи: очистку сессий и сбор метрик пула
	close(stopCh)

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
