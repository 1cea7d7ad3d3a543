package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-registry/config"
	deliveryHttp "hospital-registry/internal/delivery/http"
	"hospital-registry/internal/delivery/http/handler"
	"hospital-registry/internal/delivery/http/middleware"
	"hospital-registry/internal/infrastructure/cache"
	"hospital-registry/internal/infrastructure/database"
	"hospital-registry/internal/infrastructure/metrics"
	"hospital-registry/internal/service"
	"hospital-registry/internal/usecase"
	"hospital-registry/pkg/jwt"
	"hospital-registry/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Metrics     *prometheus.Registry
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg, Log: SetupLogger(cfg.App)}

	// Initialize metrics registry
	app.Metrics = prometheus.NewRegistry()
	app.Metrics.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(app.Metrics)

	// Initialize database for the postgres store
	if cfg.Store.Driver == config.DriverPostgres {
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db

		if err := database.Migrate(db, 0); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	if redisClient == nil {
		app.Log.Info("Redis disabled, notices are only logged")
	}

	repos, err := openStores(cfg, app.Log, app.DB, storeMetrics)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Log.Infof("Record store %q ready", cfg.Store.Driver)

	app.Server = initializeServer(app, repos, storeMetrics)
	return app, nil
}

// SetupLogger configures the standard logrus logger from config
func SetupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(app *App, repos *stores, storeMetrics *metrics.StoreMetrics) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize services
	notices := service.NewNoticeService(log, app.RedisClient, storeMetrics)
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenService := service.NewTokenService(log, jwtService, app.RedisClient)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, repos.patients, notices)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctors, notices)
	departmentUsecase := usecase.NewDepartmentUsecase(log, repos.departments, notices)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.appointments, repos.doctors, notices)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, repos.medicalRecords, notices)
	resolver := usecase.NewReferenceResolver(patientUsecase, doctorUsecase, departmentUsecase)
	dashboardUsecase := usecase.NewDashboardUsecase(patientUsecase, doctorUsecase, departmentUsecase, appointmentUsecase)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:          handler.NewAuthHandler(tokenService),
		Patient:       handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:        handler.NewDoctorHandler(doctorUsecase, resolver, customValidator),
		Department:    handler.NewDepartmentHandler(departmentUsecase, customValidator),
		Appointment:   handler.NewAppointmentHandler(appointmentUsecase, resolver, customValidator),
		MedicalRecord: handler.NewMedicalRecordHandler(medicalRecordUsecase, resolver, customValidator),
		Dashboard:     handler.NewDashboardHandler(dashboardUsecase),
	}

	// Initialize middleware
	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.Secret != "" {
		authMiddleware = middleware.NewAuthMiddleware(jwtService, tokenService)
	} else {
		log.Warn("JWT_SECRET is not set, the API is served without authentication")
	}
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	metricsHandler := promhttp.HandlerFor(app.Metrics, promhttp.HandlerOpts{})

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, metricsHandler)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
