package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/allandeluna/brainstash/internal/auth"
	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/content"
	"github.com/allandeluna/brainstash/internal/platform/email"
	"github.com/allandeluna/brainstash/internal/platform/hash"
	"github.com/allandeluna/brainstash/internal/platform/jwt"
	"github.com/allandeluna/brainstash/internal/platform/router"
	"github.com/allandeluna/brainstash/internal/platform/validation"
	"github.com/allandeluna/brainstash/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	envConfig       *config.Env
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	mailer          email.Mailer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
}

func New(cfg *config.Config, envCfg *config.Env, dbConn *sql.DB, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		server:          server,
		config:          cfg,
		envConfig:       envCfg,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
		db:              dbConn,
		signer:          provider.Signer,
		mailer:          provider.Mailer,
		validator:       provider.Validator,
		hasher:          provider.Hasher,
		router:          provider.Router,
	}
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	userRepo := user.NewRepository(a.db)
	authProviders := &auth.Providers{
		Hasher: a.hasher,
		Mailer: a.mailer,
	}
	authService := auth.NewService(userRepo, authProviders, a.config, a.envConfig.ClientURL)
	authHandler := auth.NewHandler(authService, a.signer, a.config, a.envConfig.IsProduction())
	mountAuthRoutes(a.router, authHandler, a.validator, a.signer, a.config)

	contentRepo := content.NewRepository(a.db)
	contentHandler := content.NewHandler(contentRepo)
	mountContentRoutes(a.router, contentHandler, a.validator, a.signer, a.config)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
