package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homecare-scheduler/config"
	deliveryHttp "homecare-scheduler/internal/delivery/http"
	"homecare-scheduler/internal/delivery/http/handler"
	"homecare-scheduler/internal/delivery/http/middleware"
	"homecare-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Session *Session
	Server  *http.Server
}

// SeedOptions controls the demo records loaded at startup. Zero counts
// leave the session empty.
type SeedOptions struct {
	Patients int
	Doctors  int
	Seed     uint64
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, seed SeedOptions) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	if err := SetupLogger(cfg.App); err != nil {
		return nil, err
	}
	log := logrus.StandardLogger()

	// Open the session
	session, err := NewSession(cfg, log)
	if err != nil {
		return nil, err
	}
	app.Session = session

	if seed.Patients > 0 || seed.Doctors > 0 {
		if err := session.Seed(context.Background(), seed); err != nil {
			session.Close()
			return nil, fmt.Errorf("failed to seed session: %w", err)
		}
	}

	app.Server = initializeServer(cfg, session, log)

	return app, nil
}

// SetupLogger configures the standard logrus logger
func SetupLogger(cfg config.AppConfig) error {
	if cfg.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, session *Session, log *logrus.Logger) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(session.Patients, customValidator)
	doctorHandler := handler.NewDoctorHandler(session.Doctors, customValidator)
	scheduleHandler := handler.NewScheduleHandler(session.Schedule, customValidator)
	exportHandler := handler.NewExportHandler(session.Exports)
	auditLogHandler := handler.NewAuditLogHandler(session.AuditLogs)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		scheduleHandler,
		exportHandler,
		auditLogHandler,
		corsMiddleware,
		requestLoggerMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	// The session is discarded here
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the session database
func (app *App) Close() {
	if app.Session != nil {
		app.Session.Close()
	}
}
