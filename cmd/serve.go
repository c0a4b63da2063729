package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addTimeRangeHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/add_time_range"
	deleteStudyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_study"
	getAdminStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_admin_status"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getCurrentUserHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_current_user"
	getScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_schedule"
	listStudiesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_studies"
	listUsersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_users"
	removeTimeRangeHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/remove_time_range"
	toggleWorkDayHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/toggle_work_day"
	updateCurrentUserHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_current_user"
	updateScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_schedule"
	updateTimeRangeHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_time_range"
	uploadStudyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/upload_study"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	minioBlob "github.com/m04kA/SMC-AvailabilityService/internal/infra/blob/minio"
	scheduleCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/schedule"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/events"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/firebaseauth"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/jwtauth"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	studiesService "github.com/m04kA/SMC-AvailabilityService/internal/service/studies"
	usersService "github.com/m04kA/SMC-AvailabilityService/internal/service/users"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/firebaseapp"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// domainMetrics счетчики, которые нужны сервисам и use case
type domainMetrics interface {
	ScheduleLoaded(source string)
	ScheduleSaved(status string)
	SlotsQueried(workDay bool)
}

func runServer(configPath string) error {
	// Загружаем конфигурацию и логгер
	cfg, log, err := loadRuntime(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		svcMetrics       domainMetrics = metrics.Nop{}
		dbRecorder       dbmetrics.Recorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		svcMetrics = metricsCollector
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу документов
	store, closeStore, err := openStore(ctx, cfg, log, dbRecorder)
	if err != nil {
		return err
	}
	defer closeStore()

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(store)
	usersRepository := usersRepo.NewRepository(store)

	// Кэш расписания (опционально)
	var cache scheduleService.ScheduleCache
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		cache = scheduleCache.NewCache(rdb, time.Duration(cfg.Cache.TTL)*time.Second)
		log.Info("Schedule cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Публикация событий (опционально)
	var publisher scheduleService.EventPublisher
	if cfg.Events.Enabled {
		conn, ch, err := events.Connect(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			return err
		}
		defer conn.Close()

		p := events.NewPublisher(ch, cfg.Events.Exchange, cfg.Events.RoutingKey)
		defer p.Close()

		publisher = p
		log.Info("Schedule events enabled (exchange=%s, routing_key=%s)", cfg.Events.Exchange, cfg.Events.RoutingKey)
	}

	// Идентификация пользователя по auth.mode
	identify, err := identityMiddleware(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Инициализируем сервисы
	clock := &scheduleService.RealTimeProvider{}
	policy := access.NewPolicy(usersRepository, log)

	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		cache,
		middleware.IdentityProvider{},
		policy,
		publisher,
		svcMetrics,
		clock,
		log,
	)
	usersSvc := usersService.NewService(usersRepository, policy, clock, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(scheduleSvc, svcMetrics, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	toggleWorkDay := toggleWorkDayHandler.NewHandler(scheduleSvc, log)
	addTimeRange := addTimeRangeHandler.NewHandler(scheduleSvc, log)
	updateTimeRange := updateTimeRangeHandler.NewHandler(scheduleSvc, log)
	removeTimeRange := removeTimeRangeHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAdminStatus := getAdminStatusHandler.NewHandler(scheduleSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(usersSvc, log)
	updateCurrentUser := updateCurrentUserHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Ограничение частоты запросов по IP
	if cfg.RateLimit.Enabled {
		r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
		log.Info("Rate limit enabled: %d req/min per IP", cfg.RateLimit.RequestsPerMinute)
	}

	// API prefix; идентичность определяется для всех маршрутов API
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(identify)

	// ============================================================
	// PUBLIC ROUTES (идентичность не обязательна)
	// ============================================================

	// Недельное расписание
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка прав администратора
	api.HandleFunc("/admin/status", getAdminStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют идентичность)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Редактирование расписания (права администратора проверяет сервис) ---
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/days/{dayIndex}/toggle", toggleWorkDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/days/{dayIndex}/ranges", addTimeRange.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/days/{dayIndex}/ranges/{rangeId}", updateTimeRange.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedule/days/{dayIndex}/ranges/{rangeId}", removeTimeRange.Handle).Methods(http.MethodDelete)

	// --- Пользователи ---
	protected.HandleFunc("/admin/users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", getCurrentUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", updateCurrentUser.Handle).Methods(http.MethodPut)

	// --- Исследования (если включено хранилище файлов) ---
	if cfg.Studies.Enabled {
		studiesSvc, err := newStudiesService(ctx, cfg, log)
		if err != nil {
			return err
		}

		protected.HandleFunc("/users/me/studies", listStudiesHandler.NewHandler(studiesSvc, log).Handle).Methods(http.MethodGet)
		protected.HandleFunc("/users/me/studies", uploadStudyHandler.NewHandler(studiesSvc, log, cfg.Studies.MaxFileSize).Handle).Methods(http.MethodPost)
		protected.HandleFunc("/users/me/studies/{fileName}", deleteStudyHandler.NewHandler(studiesSvc, log).Handle).Methods(http.MethodDelete)
	}

	// CORS оборачивает весь роутер, чтобы preflight не упирался в Methods
	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.UserIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// identityMiddleware выбирает способ идентификации по auth.mode
func identityMiddleware(ctx context.Context, cfg *config.Config, log *logger.Logger) (mux.MiddlewareFunc, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeHeader:
		log.Info("Identity from %s header", middleware.UserIDHeader)
		return middleware.HeaderIdentity, nil

	case config.AuthModeJWT:
		log.Info("Identity from HS256 bearer tokens")
		return middleware.BearerIdentity(jwtauth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), log), nil

	case config.AuthModeFirebase:
		app, err := firebaseapp.New(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, err
		}
		client, err := app.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
		}

		log.Info("Identity from Firebase ID tokens (project=%s)", cfg.Firebase.ProjectID)
		return middleware.BearerIdentity(firebaseauth.NewVerifier(client), log), nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

// newStudiesService подключается к MinIO и создает сервис исследований
func newStudiesService(ctx context.Context, cfg *config.Config, log *logger.Logger) (*studiesService.Service, error) {
	client, err := minioBlob.NewClient(cfg.Studies.Endpoint, cfg.Studies.AccessKey, cfg.Studies.SecretKey, cfg.Studies.UseSSL)
	if err != nil {
		return nil, err
	}

	blobs := minioBlob.NewStore(client, cfg.Studies.Bucket)
	if err := blobs.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("Studies storage enabled (endpoint=%s, bucket=%s)", cfg.Studies.Endpoint, cfg.Studies.Bucket)
	return studiesService.NewService(
		blobs,
		cfg.Studies.MaxFileSize,
		time.Duration(cfg.Studies.URLExpiry)*time.Second,
		log,
	), nil
}
