// Package main implements the entry point for the advertisement board API
// server: user signup and CRUD, advertisement CRUD with header-credential
// authentication and ownership checks.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/mzhelnin/adboard-api/internal/config"
	"github.com/mzhelnin/adboard-api/internal/platform/logger"
	"github.com/mzhelnin/adboard-api/internal/platform/postgres"
	"github.com/mzhelnin/adboard-api/internal/service/auth"
)

// application holds the initialized dependencies shared by the router and
// the HTTP server. Everything is constructed once at startup and injected;
// there is no process-wide mutable state.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	db            *sql.DB
	authenticator *auth.Authenticator
	hasher        auth.PasswordHasher
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and constructs application dependencies:
// logging, the database pool (with migrations applied) and the auth service.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"password_scheme", cfg.Auth.PasswordScheme)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	hasher, err := auth.NewPasswordHasher(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to configure password hasher: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	authenticator := auth.NewAuthenticator(userStore, hasher, appLogger)

	return &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		authenticator: authenticator,
		hasher:        hasher,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
