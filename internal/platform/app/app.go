package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/openintel/mdip/internal/platform/http"
	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/internal/platform/store/sqlite"
	"github.com/openintel/mdip/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the record-keeping service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	authService      *service.AuthService
	incidentService  *service.IncidentService
	datasetService   *service.DatasetService
	ticketService    *service.TicketService
	reportService    *service.ReportService
	assistantService *service.AssistantService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "mdip",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("service stopped")
	return nil
}

// initDatabase opens the record store and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db := sqlite.NewStore(dsn)
	if err := db.Connect(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.incidentService = &service.IncidentService{Store: app.db}
	app.datasetService = &service.DatasetService{Store: app.db}
	app.ticketService = &service.TicketService{Store: app.db}
	app.reportService = &service.ReportService{Store: app.db}

	app.assistantService = &service.AssistantService{
		Store: app.db,
		Client: service.NewAssistantClient(
			app.cfg.AssistantEndpoint,
			app.cfg.AssistantAPIKey,
			app.cfg.AssistantModel,
		),
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	sessions := &httpapi.Sessions{
		Secret: []byte(app.cfg.SessionSecret),
		TTL:    app.cfg.SessionTTL,
	}

	router := httpapi.NewRouter(sessions, app.db, app.logger)
	router.AuthService = app.authService
	router.IncidentService = app.incidentService
	router.DatasetService = app.datasetService
	router.TicketService = app.ticketService
	router.ReportService = app.reportService
	router.AssistantService = app.assistantService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
