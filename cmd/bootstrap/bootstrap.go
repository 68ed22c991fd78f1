package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook/config"
	deliveryHttp "carebook/internal/delivery/http"
	"carebook/internal/delivery/http/handler"
	"carebook/internal/delivery/http/middleware"
	"carebook/internal/infrastructure/cache"
	"carebook/internal/infrastructure/database"
	"carebook/internal/metrics"
	"carebook/internal/repository"
	"carebook/internal/service"
	"carebook/internal/usecase"
	"carebook/pkg/jwt"
	"carebook/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates an App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB.URL()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database schema is up to date")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewService(cfg.JWT)
	customValidator := validator.NewValidator()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	userRepo := repository.NewUserRepository(db)
	patientProfileRepo := repository.NewPatientProfileRepository(db)
	clinicianProfileRepo := repository.NewClinicianProfileRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	careServiceRepo := repository.NewCareServiceRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	loginThrottle := service.NewLoginThrottle(redisClient, log, cfg.Throttle)
	auditRecorder := service.NewAuditRecorder(log, auditLogRepo)

	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, loginThrottle, auditRecorder)
	bookingUsecase := usecase.NewBookingUsecase(log, patientProfileRepo, bookingRepo, clinicianProfileRepo, auditRecorder)
	careServiceUsecase := usecase.NewCareServiceUsecase(careServiceRepo)
	clinicianUsecase := usecase.NewClinicianUsecase(clinicianProfileRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(auditLogRepo)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	careServiceHandler := handler.NewCareServiceHandler(careServiceUsecase)
	clinicianHandler := handler.NewClinicianHandler(clinicianUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware("")
	metricsMiddleware := middleware.NewMetricsMiddleware(collector)

	router := deliveryHttp.NewRouter(
		authHandler,
		bookingHandler,
		careServiceHandler,
		clinicianHandler,
		auditLogHandler,
		metrics.Handler(registry),
		authMiddleware,
		corsMiddleware,
		metricsMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database and Redis connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
