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

	httpapi "github.com/wanderstay/wanderstay/internal/api/http"
	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/internal/api/store/drivers/sqlite"
	"github.com/wanderstay/wanderstay/pkg/jwtx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API server with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db store.Store

	accessSigner    jwtx.Signer
	accessVerifier  jwtx.Verifier
	refreshSigner   jwtx.Signer
	refreshVerifier jwtx.Verifier

	// Services
	authService      *service.AuthService
	userService      *service.UserService
	propertyService  *service.PropertyService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "wanderstay-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initTokens(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	// Dev convenience only; production databases are never seeded.
	if cfg.Env == "dev" {
		if err := app.bootstrapService.Seed(context.Background()); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api server starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down api server...")

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

	app.logger.Info("api server stopped")
	return nil
}

// initTokens builds the HMAC signers and verifiers. The refresh secret is
// optional and shares the access secret when unset.
func (app *Application) initTokens() error {
	accessSecret := []byte(app.cfg.AccessSecret)

	signer, err := jwtx.NewSignerHS256(accessSecret)
	if err != nil {
		return fmt.Errorf("AUTH_SECRET_KEY: %w", err)
	}
	app.accessSigner = signer
	app.accessVerifier = jwtx.NewVerifierHS256(accessSecret, app.cfg.Issuer)

	refreshSecret := accessSecret
	if app.cfg.RefreshSecret != "" {
		refreshSecret = []byte(app.cfg.RefreshSecret)
	}

	refreshSigner, err := jwtx.NewSignerHS256(refreshSecret)
	if err != nil {
		return fmt.Errorf("REFRESH_TOKEN_SECRET: %w", err)
	}
	app.refreshSigner = refreshSigner
	app.refreshVerifier = jwtx.NewVerifierHS256(refreshSecret, app.cfg.Issuer)

	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
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
	app.authService = &service.AuthService{
		Store:           app.db,
		AccessSigner:    app.accessSigner,
		RefreshSigner:   app.refreshSigner,
		RefreshVerifier: app.refreshVerifier,
		Issuer:          app.cfg.Issuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}

	app.userService = &service.UserService{Store: app.db}
	app.propertyService = &service.PropertyService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store:  app.db,
		Logger: app.logger,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.accessVerifier,
		BuildVersion,
		app.cfg.Env == "prod",
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.PropertyService = app.propertyService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
