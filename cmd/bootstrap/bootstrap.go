package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-dispatch/config"
	deliveryHttp "clinic-dispatch/internal/delivery/http"
	"clinic-dispatch/internal/delivery/http/handler"
	"clinic-dispatch/internal/delivery/http/middleware"
	"clinic-dispatch/internal/infrastructure/cache"
	"clinic-dispatch/internal/infrastructure/database"
	"clinic-dispatch/internal/notification"
	"clinic-dispatch/internal/repository"
	"clinic-dispatch/internal/service"
	"clinic-dispatch/internal/usecase"
	"clinic-dispatch/pkg/clock"
	"clinic-dispatch/pkg/jwt"
	"clinic-dispatch/pkg/ratelimit"
	"clinic-dispatch/pkg/validator"

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
	Batcher     *notification.Batcher
	Notifier    *service.RedisNotifier
	Intake      usecase.TicketIntakeUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := app.initializeServer(cfg, db, redisClient)
	app.Server = server

	// Rebuild the dispatch queue from open tickets before accepting traffic
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Intake.RebuildQueue(ctx); err != nil {
		return nil, fmt.Errorf("failed to rebuild dispatch queue: %w", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger and clock
	log := logrus.StandardLogger()
	clk := clock.New()

	// Initialize repositories
	ticketRepo := repository.NewTicketRepository()
	doctorRepo := repository.NewDoctorRepository()

	// Initialize services
	queueSvc := service.NewQueueService(log)
	queueSync := service.NewQueueSyncService(redisClient, log)
	notifier := service.NewRedisNotifier(redisClient, log)
	app.Notifier = notifier

	// Initialize notification batcher
	batcher := notification.NewBatcher(
		cfg.Dispatch.BatchSize,
		cfg.Dispatch.FlushInterval,
		notification.NewScheduler(),
		notifier,
	)
	app.Batcher = batcher

	// Initialize the intake admission bucket
	intakeBucket := ratelimit.NewTokenBucket(cfg.Dispatch.IntakeBucketSize, cfg.Dispatch.IntakeRefillPerSec, clk)

	// Initialize usecases
	intakeUsecase := usecase.NewTicketIntakeUsecase(db, log, ticketRepo, queueSvc, queueSync, batcher, intakeBucket, clk)
	dispatchUsecase := usecase.NewDispatchUsecase(db, log, ticketRepo, doctorRepo, queueSvc, queueSync, batcher, cfg.Dispatch.Strategy)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	analyticsUsecase := usecase.NewAnalyticsUsecase(db, log, ticketRepo, doctorRepo, clk, cfg.Dispatch.ActiveWindow, cfg.Dispatch.StatsCacheSize)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log)
	app.Intake = intakeUsecase

	// Initialize handlers
	ticketHandler := handler.NewTicketHandler(intakeUsecase, customValidator)
	dispatchHandler := handler.NewDispatchHandler(dispatchUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase, availabilityUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(ticketHandler, dispatchHandler, doctorHandler, analyticsHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Drain pending notifications before closing connections
	if batch := app.Batcher.Flush(); len(batch) > 0 {
		app.Notifier.Deliver(batch)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
